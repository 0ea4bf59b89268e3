// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package credentials - encrypted storage for the GitHub access token
//
// the token is sealed with a key derived from a password, only the
// ciphertext and the salt ever reach the disk
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// Token - one encrypted access token
type Token struct {
	Cipher string `json:"cipher"`
	Salt   string `json:"salt"`
}

// Credentials - credentials file data format
type Credentials struct {
	GitHub Token `json:"github"`
}

// Load - read the credentials file
func Load(fileName string) (*Credentials, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Credentials{}
	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// Save - write the credentials file, keeping one backup
func Save(fileName string, credentials *Credentials) error {

	tempFile := fileName + ".new"
	previousFile := fileName + ".bk"

	os.Remove(tempFile)

	b, err := json.MarshalIndent(credentials, "", "  ")
	if nil != err {
		return err
	}

	err = os.WriteFile(tempFile, b, 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(fileName, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, fileName)
}

// SetToken - encrypt a token under a password and store it
func (credentials *Credentials) SetToken(token string, password string) error {

	salt, key, err := hashPassword(password)
	if nil != err {
		return err
	}

	cipher, err := encryptData(token, key)
	if nil != err {
		return err
	}

	credentials.GitHub = Token{
		Cipher: cipher,
		Salt:   salt.String(),
	}
	return nil
}

// Token - decrypt the stored token with a password
func (credentials *Credentials) Token(password string) (string, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(credentials.GitHub.Salt))
	if nil != err || "" == credentials.GitHub.Cipher {
		return "", fault.MissingAccessToken
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return "", err
	}

	token, err := decryptData(credentials.GitHub.Cipher, key)
	if nil != err {
		return "", fault.WrongPassword
	}

	return token, nil
}
