// Package cli implements worklogctl, the operator command line for reports,
// snapshots, user registration and migrations.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Janescience/work-logs-sub002/internal/usecase/summary"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
)

// Services is what the commands run against. Close releases whatever Open
// acquired.
type Services struct {
	Summary summary.SummaryUseCase
	Users   user.UserUseCase
	Migrate func(ctx context.Context) error
	Close   func()
}

type Opener func(ctx context.Context) (*Services, error)

type rootOptions struct {
	format string
	open   Opener
	now    func() time.Time
}

// NewRootCmd builds worklogctl. Month defaults are resolved in time.Local, so
// the caller must apply the configured timezone before executing it.
func NewRootCmd(open Opener) *cobra.Command {
	return newRootCmd(open, time.Now)
}

func newRootCmd(open Opener, now func() time.Time) *cobra.Command {
	opts := &rootOptions{open: open, now: now}
	root := &cobra.Command{
		Use:           "worklogctl",
		Short:         "Work log reporting tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatYAML && opts.format != formatJSON {
				return fmt.Errorf("unknown format %q (yaml|json)", opts.format)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.format, "format", formatYAML, "Output format (yaml|json)")

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newUserCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	return root
}

func (o *rootOptions) withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *Services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := o.open(ctx)
	if err != nil {
		return err
	}
	if svc.Close != nil {
		defer svc.Close()
	}
	return fn(ctx, svc)
}
