// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package records - the persisted record structures
//
// Every record stored by the pools is one of these structures in its
// JSON encoded form, so each field carries an explicit tag to keep the
// stored encoding stable across releases.
package records

import (
	"time"

	"github.com/GitCircles/GitCircles-Github/p2pk"
)

// Repository - the tracked state of one GitHub repository
type Repository struct {
	Owner             string     `json:"owner"`                // GitHub account
	Name              string     `json:"name"`                 // repository short name
	CurrentBaseBranch string     `json:"current_base_branch"`  // branch merges are tracked against
	LastSync          *time.Time `json:"last_sync,omitempty"`  // nil until the first collect completes
	TotalPRs          uint64     `json:"total_prs"`            // merged pull requests recorded
	FirstSync         time.Time  `json:"first_sync"`           // when tracking started
	ProjectID         string     `json:"project_id,omitempty"` // empty when unassigned
}

// FullName - the canonical "owner/name" form
func (repository Repository) FullName() string {
	return repository.Owner + "/" + repository.Name
}

// MergedPullRequest - one merged pull request
type MergedPullRequest struct {
	Number         uint64    `json:"number"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	MergedAt       time.Time `json:"merged_at"`
	BaseBranch     string    `json:"base_branch"`
	MergeCommitSHA string    `json:"merge_commit_sha"`
	Repository     string    `json:"repository"` // "owner/name"
}

// BaseBranchChange - one change of a repository's base branch
type BaseBranchChange struct {
	Repository string    `json:"repository"` // "owner/name"
	OldBranch  string    `json:"old_branch"`
	NewBranch  string    `json:"new_branch"`
	ChangedAt  time.Time `json:"changed_at"`
}

// Project - a named grouping of repositories
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectOwner - membership of one GitHub user in a project
type ProjectOwner struct {
	ProjectID      string    `json:"project_id"`
	GitHubUsername string    `json:"github_username"`
	Role           string    `json:"role"` // owner, admin or member
	AddedAt        time.Time `json:"added_at"`
}

// owner roles
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// source type tags
const (
	SourceGitHubProfileRepo = "github_profile_repo"
)

// WalletSource - provenance of a synchronised wallet address
type WalletSource struct {
	Type   string `json:"type"`   // one of the source type tags above
	Login  string `json:"login"`  // account the wallet file belongs to
	Branch string `json:"branch"` // branch the wallet file was read from
}

// UserWallet - the current wallet address of one platform login
type UserWallet struct {
	Login    string       `json:"login"`
	Platform string       `json:"platform"` // currently always PlatformGitHub
	Address  p2pk.Address `json:"address"`
	Source   WalletSource `json:"source"`
	SyncedAt time.Time    `json:"synced_at"`
}

// WalletHistoryEntry - one recorded wallet address change
//
// entries are append only, one per detected change including the
// very first synchronisation
type WalletHistoryEntry struct {
	Login      string       `json:"login"`
	Platform   string       `json:"platform"`
	Address    p2pk.Address `json:"address"`
	Source     WalletSource `json:"source"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// WalletLoginLink - reverse index entry from wallet address to login
//
// links are never removed: a wallet keeps every login that ever
// published it
type WalletLoginLink struct {
	Wallet   p2pk.Address `json:"wallet"`
	Platform string       `json:"platform"`
	Login    string       `json:"login"`
	LinkedAt time.Time    `json:"linked_at"`
}
