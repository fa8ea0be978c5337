// Package main is the entry point for the mdxgen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awoplatform/mdxgen/internal/cmd"
	oerrors "github.com/awoplatform/mdxgen/internal/errors"
	"github.com/awoplatform/mdxgen/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !oerrors.IsPrinted(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		code := cmd.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "reason", cmd.ExitCodeName(code))
		os.Exit(code)
	}
}
