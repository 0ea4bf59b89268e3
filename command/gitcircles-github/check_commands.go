// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/p2pk"
	"github.com/GitCircles/GitCircles-Github/records"
)

var (
	ErrRequiredAddress     = fault.InvalidError("wallet address is required")
	ErrRequiredLogin       = fault.InvalidError("login is required")
	ErrRequiredProjectId   = fault.InvalidError("project id is required")
	ErrRequiredProjectName = fault.InvalidError("project name is required")
	ErrRequiredRepository  = fault.InvalidError("repository is required")
	ErrRequiredToken       = fault.InvalidError("token is required")
)

// repository is required as "owner/name"
func checkRepositoryName(repo string) (string, string, error) {
	if "" == repo {
		return "", "", ErrRequiredRepository
	}

	return records.ParseRepositoryName(repo)
}

// project id is required
func checkProjectId(projectId string) (string, error) {
	if "" == projectId {
		return "", ErrRequiredProjectId
	}

	return projectId, nil
}

// project name is required
func checkProjectName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredProjectName
	}

	return name, nil
}

// login is required and restricted to the GitHub charset
func checkLogin(login string) (string, error) {
	if "" == login {
		return "", ErrRequiredLogin
	}
	if !records.ValidLogin(login) {
		return "", fault.InvalidLogin
	}

	return login, nil
}

// wallet address is required and must decode
func checkWalletAddress(address string) (p2pk.Address, error) {
	if "" == address {
		return p2pk.Address{}, ErrRequiredAddress
	}

	return p2pk.AddressFromBase58(address)
}

// owner role must be one of the known roles
func checkOwnerRole(role string) (string, error) {
	switch role {
	case records.RoleOwner, records.RoleAdmin, records.RoleMember:
		return role, nil
	default:
		return "", fault.InvalidOwnerRole
	}
}

// days may not be negative
func checkDays(days int) (int, error) {
	if days < 0 {
		return 0, fault.InvalidCount
	}

	return days, nil
}

// count must be positive
func checkCount(count int) (int, error) {
	if count <= 0 {
		return 0, fault.InvalidCount
	}

	return count, nil
}
