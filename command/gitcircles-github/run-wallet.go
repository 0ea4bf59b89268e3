// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/github"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/wallet"
)

func runWalletSync(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	login, err := checkLogin(c.Args().Get(0))
	if nil != err {
		return err
	}

	// the wallet file is public, no token is needed
	client := github.NewClient("")

	result, err := wallet.Sync(context.Background(), client, records.PlatformGitHub, login)
	if nil != err {
		return err
	}

	switch {
	case nil == result.Current:
		fmt.Fprintf(m.w, "no wallet address published by: %s\n", login)
		if nil != result.Previous {
			fmt.Fprintf(m.w, "keeping recorded address: %s\n", *result.Previous)
		}
	case result.Changed && nil == result.Previous:
		fmt.Fprintf(m.w, "recorded wallet address: %s\n", *result.Current)
	case result.Changed:
		fmt.Fprintf(m.w, "wallet address changed: %s to %s\n", *result.Previous, *result.Current)
	default:
		fmt.Fprintf(m.w, "wallet address unchanged: %s\n", *result.Current)
	}

	if m.verbose {
		printJson(m.w, result)
	}

	return nil
}

func runWalletShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	login, err := checkLogin(c.Args().Get(0))
	if nil != err {
		return err
	}

	userWallet, err := wallet.Get(records.PlatformGitHub, login)
	if nil != err {
		return err
	}
	if nil == userWallet {
		fmt.Fprintf(m.w, "no wallet address recorded for: %s\n", login)
		return nil
	}

	fmt.Fprintf(m.w, "login: %s\n", userWallet.Login)
	fmt.Fprintf(m.w, "address: %s\n", userWallet.Address)
	fmt.Fprintf(m.w, "branch: %s\n", userWallet.Source.Branch)
	fmt.Fprintf(m.w, "synced: %s\n", formatTimestamp(userWallet.SyncedAt))

	if m.verbose {
		printJson(m.w, userWallet)
	}

	return nil
}

func runWalletHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	login, err := checkLogin(c.Args().Get(0))
	if nil != err {
		return err
	}

	history, err := wallet.History(records.PlatformGitHub, login)
	if nil != err {
		return err
	}

	if 0 == len(history) {
		fmt.Fprintf(m.w, "no wallet history for: %s\n", login)
		return nil
	}

	printWalletHistoryTable(m.w, history)

	if m.verbose {
		printJson(m.w, history)
	}

	return nil
}

func runWalletLogins(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkWalletAddress(c.Args().Get(0))
	if nil != err {
		return err
	}

	links, err := wallet.LoginsForWallet(address)
	if nil != err {
		return err
	}

	if 0 == len(links) {
		fmt.Fprintf(m.w, "no logins recorded for: %s\n", address)
		return nil
	}

	printLoginLinkTable(m.w, links)

	if m.verbose {
		printJson(m.w, links)
	}

	return nil
}
