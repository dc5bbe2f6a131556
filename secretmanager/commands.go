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

package secretmanager

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Secret Manager.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateSecret,
		cmdGetSecret,
		cmdUpdateSecret,
		cmdDeleteSecret,
		cmdListSecrets,
		cmdAddSecretVersion,
		cmdAccessSecretVersion,
		cmdDestroySecretVersion,
		cmdIAMGrantAccess,
	}
}

// secretRun is the base for subcommands addressing one secret by ID.
type secretRun struct {
	samplecli.Base
	secretID string
}

func (r *secretRun) init() {
	r.Init()
	r.Flags.StringVar(&r.secretID, "secret-id", "", "ID of the secret within the project.")
}

func (r *secretRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("secret-id", r.secretID)
}

func (r *secretRun) secretName() string {
	return fmt.Sprintf("projects/%s/secrets/%s", r.ProjectID, r.secretID)
}

var cmdCreateSecret = &subcommands.Command{
	UsageLine: "secretmanager-create-secret -secret-id ID [-project ID]",
	ShortDesc: "creates a secret with automatic replication",
	CommandRun: func() subcommands.CommandRun {
		r := &createSecretRun{}
		r.init()
		return r
	},
}

type createSecretRun struct{ secretRun }

func (r *createSecretRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createSecret(a.GetOut(), "projects/"+r.ProjectID, r.secretID))
}

var cmdGetSecret = &subcommands.Command{
	UsageLine: "secretmanager-get-secret -secret-id ID [-project ID]",
	ShortDesc: "fetches a secret's metadata",
	CommandRun: func() subcommands.CommandRun {
		r := &getSecretRun{}
		r.init()
		return r
	},
}

type getSecretRun struct{ secretRun }

func (r *getSecretRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getSecret(a.GetOut(), r.secretName()))
}

var cmdUpdateSecret = &subcommands.Command{
	UsageLine: "secretmanager-update-secret -secret-id ID [-project ID]",
	ShortDesc: "updates the labels on a secret",
	CommandRun: func() subcommands.CommandRun {
		r := &updateSecretRun{}
		r.init()
		return r
	},
}

type updateSecretRun struct{ secretRun }

func (r *updateSecretRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, updateSecret(a.GetOut(), r.secretName()))
}

var cmdDeleteSecret = &subcommands.Command{
	UsageLine: "secretmanager-delete-secret -secret-id ID [-project ID]",
	ShortDesc: "deletes a secret and all of its versions",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteSecretRun{}
		r.init()
		return r
	},
}

type deleteSecretRun struct{ secretRun }

func (r *deleteSecretRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteSecret(a.GetOut(), r.secretName()))
}

var cmdListSecrets = &subcommands.Command{
	UsageLine: "secretmanager-list-secrets [-project ID]",
	ShortDesc: "prints every secret in the project",
	CommandRun: func() subcommands.CommandRun {
		r := &listSecretsRun{}
		r.Init()
		return r
	},
}

type listSecretsRun struct {
	samplecli.Base
}

func (r *listSecretsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listSecrets(a.GetOut(), "projects/"+r.ProjectID))
}

var cmdAddSecretVersion = &subcommands.Command{
	UsageLine: "secretmanager-add-secret-version -secret-id ID -data PAYLOAD [-project ID]",
	ShortDesc: "adds a new version holding the given payload",
	CommandRun: func() subcommands.CommandRun {
		r := &addSecretVersionRun{}
		r.init()
		r.Flags.StringVar(&r.data, "data", "", "Payload to store in the new version.")
		return r
	},
}

type addSecretVersionRun struct {
	secretRun
	data string
}

func (r *addSecretVersionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("data", r.data); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, addSecretVersion(a.GetOut(), r.secretName(), []byte(r.data)))
}

// versionRun is the base for subcommands addressing one secret version.
type versionRun struct {
	secretRun
	version string
}

func (r *versionRun) initVersion(def string) {
	r.init()
	r.Flags.StringVar(&r.version, "version", def, "Version of the secret to address.")
}

func (r *versionRun) versionName() string {
	return fmt.Sprintf("%s/versions/%s", r.secretName(), r.version)
}

var cmdAccessSecretVersion = &subcommands.Command{
	UsageLine: "secretmanager-access-secret-version -secret-id ID [-version V] [-project ID]",
	ShortDesc: "prints the payload of a secret version",
	CommandRun: func() subcommands.CommandRun {
		r := &accessSecretVersionRun{}
		r.initVersion("latest")
		return r
	},
}

type accessSecretVersionRun struct{ versionRun }

func (r *accessSecretVersionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, accessSecretVersion(a.GetOut(), r.versionName()))
}

var cmdDestroySecretVersion = &subcommands.Command{
	UsageLine: "secretmanager-destroy-secret-version -secret-id ID -version V [-project ID]",
	ShortDesc: "destroys a secret version, wiping its payload",
	CommandRun: func() subcommands.CommandRun {
		r := &destroySecretVersionRun{}
		r.initVersion("")
		return r
	},
}

type destroySecretVersionRun struct{ versionRun }

func (r *destroySecretVersionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("version", r.version); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, destroySecretVersion(a.GetOut(), r.versionName()))
}

var cmdIAMGrantAccess = &subcommands.Command{
	UsageLine: "secretmanager-iam-grant-access -secret-id ID -member MEMBER [-project ID]",
	ShortDesc: "grants a member access to a secret's versions",
	CommandRun: func() subcommands.CommandRun {
		r := &iamGrantAccessRun{}
		r.init()
		r.Flags.StringVar(&r.member, "member", "", "Member to grant access, e.g. user:foo@example.com.")
		return r
	},
}

type iamGrantAccessRun struct {
	secretRun
	member string
}

func (r *iamGrantAccessRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("member", r.member); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, iamGrantAccess(a.GetOut(), r.secretName(), r.member))
}
