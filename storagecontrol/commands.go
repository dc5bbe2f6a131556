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

package storagecontrol

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for the Storage Control API.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateFolder,
		cmdGetFolder,
		cmdListFolders,
		cmdDeleteFolder,
		cmdGetStorageLayout,
		cmdCreateManagedFolder,
	}
}

// bucketRun is the base for subcommands addressing one bucket. Storage
// Control bucket resources use the "projects/_" parent.
type bucketRun struct {
	samplecli.Base
	bucket   string
	folderID string
}

func (r *bucketRun) init() {
	r.Init()
	r.Flags.StringVar(&r.bucket, "bucket", "", "Name of the bucket.")
	r.Flags.StringVar(&r.folderID, "folder-id", "", "ID of the folder.")
}

func (r *bucketRun) bucketName() string {
	return "projects/_/buckets/" + r.bucket
}

func (r *bucketRun) folderName() string {
	return r.bucketName() + "/folders/" + r.folderID
}

func (r *bucketRun) check() error {
	return samplecli.RequireFlag("bucket", r.bucket)
}

func (r *bucketRun) checkFolder() error {
	if err := r.check(); err != nil {
		return err
	}
	return samplecli.RequireFlag("folder-id", r.folderID)
}

var cmdCreateFolder = &subcommands.Command{
	UsageLine: "storage-control-create-folder -bucket B -folder-id ID",
	ShortDesc: "creates a folder",
	CommandRun: func() subcommands.CommandRun {
		r := &createFolderRun{}
		r.init()
		return r
	},
}

type createFolderRun struct{ bucketRun }

func (r *createFolderRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkFolder(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createFolder(a.GetOut(), r.bucketName(), r.folderID))
}

var cmdGetFolder = &subcommands.Command{
	UsageLine: "storage-control-get-folder -bucket B -folder-id ID",
	ShortDesc: "prints folder metadata",
	CommandRun: func() subcommands.CommandRun {
		r := &getFolderRun{}
		r.init()
		return r
	},
}

type getFolderRun struct{ bucketRun }

func (r *getFolderRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkFolder(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getFolder(a.GetOut(), r.folderName()))
}

var cmdListFolders = &subcommands.Command{
	UsageLine: "storage-control-list-folders -bucket B",
	ShortDesc: "prints every folder in a bucket",
	CommandRun: func() subcommands.CommandRun {
		r := &listFoldersRun{}
		r.init()
		return r
	},
}

type listFoldersRun struct{ bucketRun }

func (r *listFoldersRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listFolders(a.GetOut(), r.bucketName()))
}

var cmdDeleteFolder = &subcommands.Command{
	UsageLine: "storage-control-delete-folder -bucket B -folder-id ID",
	ShortDesc: "deletes an empty folder",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteFolderRun{}
		r.init()
		return r
	},
}

type deleteFolderRun struct{ bucketRun }

func (r *deleteFolderRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkFolder(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteFolder(a.GetOut(), r.folderName()))
}

var cmdGetStorageLayout = &subcommands.Command{
	UsageLine: "storage-control-get-storage-layout -bucket B",
	ShortDesc: "prints a bucket's storage layout",
	CommandRun: func() subcommands.CommandRun {
		r := &getStorageLayoutRun{}
		r.init()
		return r
	},
}

type getStorageLayoutRun struct{ bucketRun }

func (r *getStorageLayoutRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getStorageLayout(a.GetOut(), r.bucketName()))
}

var cmdCreateManagedFolder = &subcommands.Command{
	UsageLine: "storage-control-create-managed-folder -bucket B -folder-id ID",
	ShortDesc: "creates a managed folder",
	CommandRun: func() subcommands.CommandRun {
		r := &createManagedFolderRun{}
		r.init()
		return r
	},
}

type createManagedFolderRun struct{ bucketRun }

func (r *createManagedFolderRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.checkFolder(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createManagedFolder(a.GetOut(), r.bucketName(), r.folderID))
}
