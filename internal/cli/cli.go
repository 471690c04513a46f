package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vk/zcheck/internal/app"
)

const (
	MsgArgumentCount = "ERROR: You need one argument."
	MsgOpenFailure   = "ERROR: Could not open file."
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// exactlyOnePath is the positional-args validator for the root command.
func exactlyOnePath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		slog.Debug("Wrong argument count.", "count", len(args))
		return &ExitError{Code: 1, Message: MsgArgumentCount}
	}
	return nil
}

// Parse validates the invocation arguments (excluding the program name) and
// returns a populated Config or an *ExitError.
func Parse(args []string) (*app.Config, error) {
	if err := exactlyOnePath(nil, args); err != nil {
		return nil, err
	}
	if args[0] == "" {
		// An empty path names no file, so it takes the open-failure branch.
		return nil, &ExitError{Code: 1, Message: MsgOpenFailure}
	}
	cfg, err := app.NewConfig(app.Config{TargetPath: args[0]})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewRootCommand builds the command for a single invocation. Flag parsing is
// disabled: every token, including ones that look like flags, is a path
// argument.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "zcheck <path>",
		Short:              "Report whether a file starts with the letter z",
		Args:               exactlyOnePath,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Parse(args)
			if err != nil {
				return err
			}
			_, err = app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg).Run(cmd.Context())
			return translate(err)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// Execute runs one invocation. args excludes the program name. Success
// returns nil; user-facing failures are returned as *ExitError.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	slog.Debug("CLI started.", "args", args)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	cmd := NewRootCommand(stdout, stderr)
	if len(args) > 0 && isCompletionRequest(args[0]) {
		// cobra routes these tokens to its hidden completion command, so they
		// bypass Execute's routing and go straight to validation and RunE.
		cmd.SetContext(ctx)
		if err := cmd.ValidateArgs(args); err != nil {
			return err
		}
		return cmd.RunE(cmd, args)
	}

	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// translate maps application errors onto user-facing exit errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var openErr *app.OpenError
	if errors.As(err, &openErr) {
		return &ExitError{Code: 1, Message: MsgOpenFailure}
	}
	return err
}
