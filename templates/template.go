// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - sample configuration written by the init command
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- gitcircles-github.conf  -*- mode: lua -*-

local M = {}

-- directory holding the database, logs and credentials
-- "." means the directory containing this configuration file
M.data_directory = "."

-- optional lock file to stop concurrent runs
-- M.pidfile = "gitcircles-github.pid"

-- branch used by collect when --base-branch is not given
M.default_base_branch = "main"

-- encrypted GitHub token written by the auth command
M.credentials_file = "credentials.json"

M.database = {
    directory = "data",
    name = "gitcircles"
}

M.logging = {
    directory = "log",
    file = "gitcircles-github.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical"
    }
}

return M
`
)
