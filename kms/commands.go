// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kms

import (
	"encoding/base64"
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud KMS.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateKeyRing,
		cmdCreateKey,
		cmdEncrypt,
		cmdDecrypt,
		cmdListKeys,
	}
}

// keyRingRun is the base for subcommands addressing one key ring.
type keyRingRun struct {
	samplecli.Base
	location string
	keyRing  string
}

func (r *keyRingRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "global", "Location of the key ring.")
	r.Flags.StringVar(&r.keyRing, "keyring", "", "ID of the key ring.")
}

func (r *keyRingRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("keyring", r.keyRing)
}

func (r *keyRingRun) keyRingName() string {
	return fmt.Sprintf("projects/%s/locations/%s/keyRings/%s", r.ProjectID, r.location, r.keyRing)
}

var cmdCreateKeyRing = &subcommands.Command{
	UsageLine: "kms-create-key-ring -keyring ID [-location L] [-project ID]",
	ShortDesc: "creates a key ring",
	CommandRun: func() subcommands.CommandRun {
		r := &createKeyRingRun{}
		r.init()
		return r
	},
}

type createKeyRingRun struct{ keyRingRun }

func (r *createKeyRingRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	parent := fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
	return r.Done(ctx, a, createKeyRing(a.GetOut(), parent, r.keyRing))
}

var cmdCreateKey = &subcommands.Command{
	UsageLine: "kms-create-key -keyring ID -key ID [-location L] [-project ID]",
	ShortDesc: "creates a symmetric encrypt/decrypt key",
	CommandRun: func() subcommands.CommandRun {
		r := &createKeyRun{}
		r.init()
		r.Flags.StringVar(&r.key, "key", "", "ID of the key to create.")
		return r
	},
}

type createKeyRun struct {
	keyRingRun
	key string
}

func (r *createKeyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("key", r.key); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createKeySymmetricEncryptDecrypt(a.GetOut(), r.keyRingName(), r.key))
}

// keyRun is the base for subcommands addressing one crypto key.
type keyRun struct {
	keyRingRun
	key string
}

func (r *keyRun) initKey() {
	r.init()
	r.Flags.StringVar(&r.key, "key", "", "ID of the key within the key ring.")
}

func (r *keyRun) checkKey() error {
	if err := r.check(); err != nil {
		return err
	}
	return samplecli.RequireFlag("key", r.key)
}

func (r *keyRun) keyName() string {
	return fmt.Sprintf("%s/cryptoKeys/%s", r.keyRingName(), r.key)
}

var cmdEncrypt = &subcommands.Command{
	UsageLine: "kms-encrypt -keyring ID -key ID -message TEXT [-location L] [-project ID]",
	ShortDesc: "encrypts a message with a symmetric key",
	CommandRun: func() subcommands.CommandRun {
		r := &encryptRun{}
		r.initKey()
		r.Flags.StringVar(&r.message, "message", "", "Message to encrypt.")
		return r
	},
}

type encryptRun struct {
	keyRun
	message string
}

func (r *encryptRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkKey(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("message", r.message); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, encryptSymmetric(a.GetOut(), r.keyName(), r.message))
}

var cmdDecrypt = &subcommands.Command{
	UsageLine: "kms-decrypt -keyring ID -key ID -ciphertext BASE64 [-location L] [-project ID]",
	ShortDesc: "decrypts base64-encoded ciphertext with a symmetric key",
	CommandRun: func() subcommands.CommandRun {
		r := &decryptRun{}
		r.initKey()
		r.Flags.StringVar(&r.ciphertext, "ciphertext", "", "Base64-encoded ciphertext to decrypt.")
		return r
	},
}

type decryptRun struct {
	keyRun
	ciphertext string
}

func (r *decryptRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkKey(); err != nil {
		return r.Done(ctx, a, err)
	}
	raw, err := base64.StdEncoding.DecodeString(r.ciphertext)
	if err != nil {
		return r.Done(ctx, a, errors.Fmt("decoding -ciphertext: %w", err))
	}
	return r.Done(ctx, a, decryptSymmetric(a.GetOut(), r.keyName(), raw))
}

var cmdListKeys = &subcommands.Command{
	UsageLine: "kms-list-keys -keyring ID [-location L] [-project ID]",
	ShortDesc: "prints every key on a key ring",
	CommandRun: func() subcommands.CommandRun {
		r := &listKeysRun{}
		r.init()
		return r
	},
}

type listKeysRun struct{ keyRingRun }

func (r *listKeysRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listCryptoKeys(a.GetOut(), r.keyRingName()))
}
