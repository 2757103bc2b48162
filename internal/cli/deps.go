// Package cli implements the tajmahalctl command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/ericfisherdev/tajmahal/internal/client"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// API is the subset of the tajmahal client the commands use.
type API interface {
	Restaurant(ctx context.Context) (client.Restaurant, error)
	Reviews(ctx context.Context) ([]client.Review, error)
	AddReview(ctx context.Context, r client.Review) (client.Review, error)
	Summary(ctx context.Context) (client.Summary, error)
}

// Dependencies wires runtime services. NewAPI is called once per command
// with the resolved --server value.
type Dependencies struct {
	NewAPI        func(server string) API
	DefaultServer string
	Version       string
}

// exitCodeRejected is returned when the server refuses a review.
const exitCodeRejected = 3

// Execute runs the CLI with injected dependencies and returns the process
// exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "No such command '%s'\n", matches[1])
		return 2
	}

	_, _ = fmt.Fprintln(stderr, "Error:", err)

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == 422 {
		return exitCodeRejected
	}
	return 1
}
