// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"strings"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// PlatformGitHub - the only platform currently collected
const PlatformGitHub = "github"

// GitHub limits account names to 39 characters
const maximumLoginLength = 39

// ParseRepositoryName - split a canonical "owner/name" string
//
// exactly two non-empty segments are required and neither may contain
// the key separator character, so every stored key keeps an
// unambiguous prefix structure
func ParseRepositoryName(fullName string) (string, string, error) {
	parts := strings.Split(fullName, "/")
	if 2 != len(parts) || "" == parts[0] || "" == parts[1] {
		return "", "", fault.InvalidRepositoryName
	}
	if strings.ContainsRune(parts[0], ':') || strings.ContainsRune(parts[1], ':') {
		return "", "", fault.InvalidRepositoryName
	}
	return parts[0], parts[1], nil
}

// ValidLogin - restrict logins to the GitHub account charset
//
// letters, digits and hyphen only; this also guarantees a login can
// never contain a key separator
func ValidLogin(login string) bool {
	if "" == login || len(login) > maximumLoginLength {
		return false
	}
	for _, r := range login {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case '-' == r:
		default:
			return false
		}
	}
	return true
}
