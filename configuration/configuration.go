// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataSubdirectory = ".gitcircles-github" // under $HOME when no data_directory is set

	defaultFileName = "gitcircles-github.conf"

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "gitcircles" // storage adds the .leveldb extension

	defaultCredentialsFile = "credentials.json"

	defaultBaseBranch = "main"

	defaultLogDirectory = "log"
	defaultLogFile      = "gitcircles-github.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultLogLevel = "critical"
)

// DatabaseType - where the key-value store lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - all configuration file data
type Configuration struct {
	DataDirectory     string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile           string               `gluamapper:"pidfile" json:"pidfile"`
	DefaultBaseBranch string               `gluamapper:"default_base_branch" json:"default_base_branch"`
	CredentialsFile   string               `gluamapper:"credentials_file" json:"credentials_file"`
	Database          DatabaseType         `gluamapper:"database" json:"database"`
	Logging           logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DefaultFile - where the optional configuration file normally lives
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if nil != err {
		return "", err
	}
	return filepath.Join(home, defaultDataSubdirectory, defaultFileName), nil
}

// Load - read and validate a configuration file
//
// an empty file name skips the file and yields the built in defaults
// with the data directory placed under the user home directory
func Load(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory:     "", // resolved below
		PidFile:           "", // no PidFile by default
		DefaultBaseBranch: defaultBaseBranch,
		CredentialsFile:   defaultCredentialsFile,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			// a fresh map every call, the decoder merges into it
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	// absolute path to the directory holding the configuration file
	configurationDirectory := ""

	if "" != configurationFileName {
		var err error
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationDirectory, _ = filepath.Split(configurationFileName)

		err = ParseConfigurationFile(configurationFileName, options)
		if nil != err {
			return nil, err
		}
	}

	// ensure absolute data directory
	// "." means the same directory as the configuration file
	switch options.DataDirectory {
	case "~":
		return nil, fmt.Errorf("data_directory: %q is not a valid directory", options.DataDirectory)
	case "":
		home, err := os.UserHomeDir()
		if nil != err {
			return nil, err
		}
		options.DataDirectory = filepath.Join(home, defaultDataSubdirectory)
	case ".":
		options.DataDirectory = configurationDirectory
	default:
		if "" != configurationDirectory {
			options.DataDirectory = util.EnsureAbsolute(configurationDirectory, options.DataDirectory)
		} else {
			options.DataDirectory = filepath.Clean(options.DataDirectory)
		}
	}

	// an explicitly blanked value falls back to its default
	if "" == options.DefaultBaseBranch {
		options.DefaultBaseBranch = defaultBaseBranch
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.CredentialsFile,
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not a plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.DataDirectory,
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		err := os.MkdirAll(*d, 0700)
		if nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
