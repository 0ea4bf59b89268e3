// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/GitCircles/GitCircles-Github/records"
)

// display formats
const (
	timestampFormat = "2006-01-02 15:04 UTC"
	dateFormat      = "2006-01-02"
)

// maximum title width in pull request tables
const maximumTitleLength = 50

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// shorten over long text keeping a marker
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

// the displayable part of a merge commit hash
func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

// repositories overview
func printRepositoryTable(w io.Writer, repositories []records.Repository) {
	table := newTable(w, "Repository", "Base Branch", "Last Sync", "Total PRs", "First Tracked")
	for _, r := range repositories {
		lastSync := "Never"
		if nil != r.LastSync {
			lastSync = formatTimestamp(*r.LastSync)
		}
		table.Append([]string{
			r.FullName(),
			r.CurrentBaseBranch,
			lastSync,
			strconv.FormatUint(r.TotalPRs, 10),
			formatDate(r.FirstSync),
		})
	}
	table.Render()
}

// merged pull requests in the order given by the caller
func printPullRequestTable(w io.Writer, pullRequests []records.MergedPullRequest) {
	table := newTable(w, "PR#", "Title", "Author", "Merged Date", "Base Branch", "Commit SHA")
	for _, pr := range pullRequests {
		table.Append([]string{
			strconv.FormatUint(pr.Number, 10),
			truncate(pr.Title, maximumTitleLength),
			pr.Author,
			formatTimestamp(pr.MergedAt),
			pr.BaseBranch,
			shortSHA(pr.MergeCommitSHA),
		})
	}
	table.Render()
}

// all projects
func printProjectTable(w io.Writer, projects []records.Project) {
	table := newTable(w, "Project ID", "Name", "Description", "Created", "Updated")
	for _, p := range projects {
		description := p.Description
		if "" == description {
			description = "-"
		}
		table.Append([]string{
			p.ID,
			p.Name,
			description,
			formatDate(p.CreatedAt),
			formatDate(p.UpdatedAt),
		})
	}
	table.Render()
}

// owners of one project
func printOwnerTable(w io.Writer, owners []records.ProjectOwner) {
	table := newTable(w, "Username", "Role", "Added")
	for _, o := range owners {
		table.Append([]string{
			o.GitHubUsername,
			o.Role,
			formatDate(o.AddedAt),
		})
	}
	table.Render()
}

// recorded wallet addresses of one login
func printWalletHistoryTable(w io.Writer, entries []records.WalletHistoryEntry) {
	table := newTable(w, "Address", "Branch", "Recorded")
	for _, entry := range entries {
		table.Append([]string{
			entry.Address.String(),
			entry.Source.Branch,
			formatTimestamp(entry.RecordedAt),
		})
	}
	table.Render()
}

// logins that published one wallet address
func printLoginLinkTable(w io.Writer, links []records.WalletLoginLink) {
	table := newTable(w, "Login", "Platform", "Linked")
	for _, link := range links {
		table.Append([]string{
			link.Login,
			link.Platform,
			formatDate(link.LinkedAt),
		})
	}
	table.Render()
}
