// Command tajmahalctl is a command-line client for a running tajmahal server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericfisherdev/tajmahal/internal/cli"
	"github.com/ericfisherdev/tajmahal/internal/client"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	deps := cli.Dependencies{
		NewAPI: func(server string) cli.API {
			return client.New(server)
		},
		DefaultServer: client.DefaultBaseURL,
		Version:       version,
	}

	code := cli.Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
