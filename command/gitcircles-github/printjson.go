// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// output an indented JSON rendering of any result structure
func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return fmt.Errorf("json marshal error: %s", err)
	}
	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
