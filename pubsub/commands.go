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

package pubsub

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Pub/Sub.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateTopic,
		cmdCreateSubscription,
		cmdPublish,
		cmdListTopics,
	}
}

// topicRun is the base for subcommands addressing one topic.
type topicRun struct {
	samplecli.Base
	topicID string
}

func (r *topicRun) init() {
	r.Init()
	r.Flags.StringVar(&r.topicID, "topic-id", "", "ID of the topic.")
}

func (r *topicRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("topic-id", r.topicID)
}

var cmdCreateTopic = &subcommands.Command{
	UsageLine: "pubsub-create-topic -topic-id ID [-project ID]",
	ShortDesc: "creates a topic",
	CommandRun: func() subcommands.CommandRun {
		r := &createTopicRun{}
		r.init()
		return r
	},
}

type createTopicRun struct{ topicRun }

func (r *createTopicRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createTopic(a.GetOut(), r.ProjectID, r.topicID))
}

var cmdCreateSubscription = &subcommands.Command{
	UsageLine: "pubsub-create-subscription -topic-id ID -sub-id ID [-project ID]",
	ShortDesc: "creates a pull subscription",
	CommandRun: func() subcommands.CommandRun {
		r := &createSubscriptionRun{}
		r.init()
		r.Flags.StringVar(&r.subID, "sub-id", "", "ID of the subscription.")
		return r
	},
}

type createSubscriptionRun struct {
	topicRun
	subID string
}

func (r *createSubscriptionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("sub-id", r.subID); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createSubscription(a.GetOut(), r.ProjectID, r.subID, r.topicID))
}

var cmdPublish = &subcommands.Command{
	UsageLine: "pubsub-publish -topic-id ID [-message M] [-project ID]",
	ShortDesc: "publishes one message",
	CommandRun: func() subcommands.CommandRun {
		r := &publishRun{}
		r.init()
		r.Flags.StringVar(&r.message, "message", "hello", "Message payload.")
		return r
	},
}

type publishRun struct {
	topicRun
	message string
}

func (r *publishRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, publish(a.GetOut(), r.ProjectID, r.topicID, r.message))
}

var cmdListTopics = &subcommands.Command{
	UsageLine: "pubsub-list-topics [-project ID]",
	ShortDesc: "prints every topic in the project",
	CommandRun: func() subcommands.CommandRun {
		r := &listTopicsRun{}
		r.Init()
		return r
	},
}

type listTopicsRun struct{ samplecli.Base }

func (r *listTopicsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listTopics(a.GetOut(), r.ProjectID))
}
