// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/configuration"
	"github.com/GitCircles/GitCircles-Github/storage"
	"github.com/GitCircles/GitCircles-Github/templates"
	"github.com/GitCircles/GitCircles-Github/util"
)

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file := m.file
	if "" == file {
		var err error
		file, err = configuration.DefaultFile()
		if nil != err {
			return err
		}
	}

	// the directory holding the configuration file
	err := os.MkdirAll(filepath.Dir(file), 0700)
	if nil != err {
		return err
	}

	// an existing configuration is never overwritten
	created := false
	if !util.EnsureFileExists(file) {
		err = os.WriteFile(file, []byte(templates.ConfigurationTemplate), 0600)
		if nil != err {
			return err
		}
		created = true
	}

	options, err := configuration.Load(file)
	if nil != err {
		return err
	}

	if m.verbose {
		options.Logging.Console = true
		options.Logging.Levels[logger.DefaultTag] = "info"
	}

	err = logger.Initialise(options.Logging)
	if nil != err {
		return err
	}
	defer logger.Finalise()

	// create the database
	err = storage.Initialise(options.Database.Name, storage.ReadWrite)
	if nil != err {
		return err
	}
	defer storage.Finalise()

	if created {
		fmt.Fprintf(m.w, "configuration: %s (created)\n", file)
	} else {
		fmt.Fprintf(m.w, "configuration: %s (kept)\n", file)
	}
	fmt.Fprintf(m.w, "data directory: %s\n", options.DataDirectory)
	fmt.Fprintf(m.w, "database: %s.leveldb\n", options.Database.Name)
	fmt.Fprintf(m.w, "log directory: %s\n", options.Logging.Directory)
	fmt.Fprintf(m.w, "credentials: %s\n", options.CredentialsFile)

	return nil
}
