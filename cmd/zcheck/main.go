package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/zcheck/internal/cli"
)

// main is the entrypoint for the zcheck application.
func main() {
	// Bootstrap logger for anything logged outside an App. Stdout is reserved
	// for the single result line.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes one invocation and returns the process exit status.
func run(outW, errW io.Writer, args []string) int {
	err := cli.Execute(context.Background(), args, outW, errW)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(outW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}
