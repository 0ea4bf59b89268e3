// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/configuration"
	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/repository"
	"github.com/GitCircles/GitCircles-Github/storage"
	"github.com/GitCircles/GitCircles-Github/util"
	"github.com/GitCircles/GitCircles-Github/wallet"
)

type metadata struct {
	file        string // configuration file actually read, empty for built in defaults
	config      *configuration.Configuration
	pidFile     string // remove on exit when not empty
	initialised bool   // stores are running and need finalising
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "gitcircles-github"
	app.Usage = "track merged pull requests and contributor wallets"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "init",
			Usage:  "create the data directory, configuration and database",
			Action: runInit,
		},
		{
			Name:      "collect",
			Usage:     "fetch and record merged pull requests of a repository",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "repo, r",
					Value: "",
					Usage: "*repository to collect from `OWNER/NAME`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " GitHub access `TOKEN` [$GITHUB_TOKEN or stored credentials]",
				},
				cli.StringFlag{
					Name:  "base-branch, b",
					Value: "",
					Usage: " branch merges are tracked against `BRANCH` [configured default]",
				},
				cli.IntFlag{
					Name:  "days, d",
					Value: 0,
					Usage: " only record merges of the last `DAYS` [0 = all]",
				},
				cli.StringFlag{
					Name:  "project-id, p",
					Value: "",
					Usage: " assign the repository to project `ID`",
				},
			},
			Action: runCollect,
		},
		{
			Name:      "status",
			Usage:     "display tracked repositories and recent merges",
			ArgsUsage: "\n",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "project-id, p",
					Value: "",
					Usage: " restrict to repositories of project `ID`",
				},
				cli.StringFlag{
					Name:  "repo, r",
					Value: "",
					Usage: " show merged pull requests of `OWNER/NAME`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum pull requests to output `COUNT`",
				},
			},
			Action: runStatus,
		},
		{
			Name:  "project",
			Usage: "manage projects grouping tracked repositories",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "create a new project",
					ArgsUsage: "NAME",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "description, d",
							Value: "",
							Usage: " project description `STRING`",
						},
						cli.StringFlag{
							Name:  "id, i",
							Value: "",
							Usage: " project `ID` [generated from the name]",
						},
					},
					Action: runProjectCreate,
				},
				{
					Name:   "list",
					Usage:  "list all projects",
					Action: runProjectList,
				},
				{
					Name:      "show",
					Usage:     "show one project with its repositories and owners",
					ArgsUsage: "PROJECT-ID",
					Action:    runProjectShow,
				},
				{
					Name:      "delete",
					Usage:     "delete a project and its owner records",
					ArgsUsage: "PROJECT-ID",
					Action:    runProjectDelete,
				},
				{
					Name:      "add-owner",
					Usage:     "add a GitHub user to a project",
					ArgsUsage: "PROJECT-ID USERNAME",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "role, r",
							Value: "member",
							Usage: " owner role `ROLE` [owner|admin|member]",
						},
					},
					Action: runProjectAddOwner,
				},
				{
					Name:      "remove-owner",
					Usage:     "remove a GitHub user from a project",
					ArgsUsage: "PROJECT-ID USERNAME",
					Action:    runProjectRemoveOwner,
				},
			},
		},
		{
			Name:  "wallet",
			Usage: "track wallet addresses published by GitHub users",
			Subcommands: []cli.Command{
				{
					Name:      "sync",
					Usage:     "fetch the published wallet address of a user",
					ArgsUsage: "LOGIN",
					Action:    runWalletSync,
				},
				{
					Name:      "show",
					Usage:     "show the current wallet address of a user",
					ArgsUsage: "LOGIN",
					Action:    runWalletShow,
				},
				{
					Name:      "history",
					Usage:     "show all recorded wallet addresses of a user",
					ArgsUsage: "LOGIN",
					Action:    runWalletHistory,
				},
				{
					Name:      "logins",
					Usage:     "show every login that ever published a wallet address",
					ArgsUsage: "ADDRESS",
					Action:    runWalletLogins,
				},
			},
		},
		{
			Name:      "auth",
			Usage:     "store the GitHub access token encrypted under a password",
			ArgsUsage: "\n",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " GitHub access `TOKEN` [$GITHUB_TOKEN or prompted]",
				},
			},
			Action: runAuth,
		},
		{
			Name:  "version",
			Usage: "display gitcircles-github version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open configuration, logging and the store
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// pick up a local .env file before any environment lookups
		godotenv.Load()

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config")

		// init runs before a configuration exists
		if "init" == command {
			c.App.Metadata["config"] = &metadata{
				file:    file,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		// fall back to defaults when the standard file is absent
		if "" == file {
			defaultFile, err := configuration.DefaultFile()
			if nil != err {
				return err
			}
			if util.EnsureFileExists(defaultFile) {
				file = defaultFile
			}
		}

		if verbose {
			fmt.Fprintf(e, "configuration: %q\n", file)
		}

		options, err := configuration.Load(file)
		if nil != err {
			return err
		}

		if verbose {
			options.Logging.Console = true
			options.Logging.Levels[logger.DefaultTag] = "info"
		}

		err = logger.Initialise(options.Logging)
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  options,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// optional lock file to stop a second instance
		if "" != options.PidFile {
			lockFile, err := os.OpenFile(options.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
			if nil != err {
				if os.IsExist(err) {
					return fmt.Errorf("another instance is already running: %q", options.PidFile)
				}
				return err
			}
			fmt.Fprintf(lockFile, "%d\n", os.Getpid())
			lockFile.Close()
			m.pidFile = options.PidFile
		}

		err = storage.Initialise(options.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}

		err = repository.Initialise()
		if nil != err {
			return err
		}

		err = project.Initialise()
		if nil != err {
			return err
		}

		err = wallet.Initialise()
		if nil != err {
			return err
		}

		m.initialised = true
		return nil
	}

	// shut down in reverse order
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.initialised {
			wallet.Finalise()
			project.Finalise()
			repository.Finalise()
			storage.Finalise()
			logger.Finalise()
		}
		if "" != m.pidFile {
			os.Remove(m.pidFile)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
