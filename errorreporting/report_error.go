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

package errorreporting

// [START error_reporting_report_error]
import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/errorreporting"
	"google.golang.org/api/option"
)

// reportError reports one error event and blocks until it is delivered.
func reportError(w io.Writer, projectID, service string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// service := "my-service"
	ctx := context.Background()
	client, err := errorreporting.NewClient(ctx, projectID, errorreporting.Config{
		ServiceName: service,
	}, opts...)
	if err != nil {
		return fmt.Errorf("failed to create error reporting client: %w", err)
	}
	defer client.Close()

	client.Report(errorreporting.Entry{
		Error: errors.New("something went wrong"),
		User:  "sample-user",
	})
	client.Flush()
	fmt.Fprintf(w, "Reported an error event for %s\n", service)
	return nil
}

// [END error_reporting_report_error]
