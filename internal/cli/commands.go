package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/jobs"
	"github.com/Janescience/work-logs-sub002/internal/report"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute live summaries",
	}

	var year, month string
	monthly := &cobra.Command{
		Use:   "monthly",
		Short: "Project and individual hours for one month",
		Example: `  worklogctl summary monthly --year 2024 --month 3
  worklogctl summary monthly --year 2024 --month 3 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, err := report.ParseMonthPeriod(year, month)
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *Services) error {
				result, err := svc.Summary.MonthlySummary(ctx, y, m)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, toMonthlyOutput(y, m, result))
			})
		},
	}
	monthly.Flags().StringVar(&year, "year", "", "Calendar year")
	monthly.Flags().StringVar(&month, "month", "", "Month 1-12")

	var trendYear string
	yearly := &cobra.Command{
		Use:   "yearly",
		Short: "Core and Non-Core hours for each month of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := report.ParseYear(trendYear)
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *Services) error {
				trend, err := svc.Summary.YearlyTrend(ctx, y)
				if err != nil {
					return err
				}
				out := make([]trendOutput, 0, len(trend))
				for _, m := range trend {
					out = append(out, trendOutput{Month: m.Month, CoreHours: m.CoreHours, NonCoreHours: m.NonCoreHours})
				}
				return render(cmd.OutOrStdout(), opts.format, out)
			})
		},
	}
	yearly.Flags().StringVar(&trendYear, "year", "", "Calendar year")

	cmd.AddCommand(monthly, yearly)
	return cmd
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var year, month string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Store the month-close summary (defaults to the previous month)",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m := jobs.PreviousMonth(opts.now())
			if year != "" || month != "" {
				var err error
				if y, m, err = report.ParseMonthPeriod(year, month); err != nil {
					return err
				}
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *Services) error {
				snap, err := svc.Summary.TakeSnapshot(ctx, y, m)
				if err != nil {
					return err
				}
				out := toMonthlyOutput(snap.Year, snap.Month, snap.Summary)
				out.ComputedAt = &snap.ComputedAt
				return render(cmd.OutOrStdout(), opts.format, out)
			})
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "Calendar year")
	cmd.Flags().StringVar(&month, "month", "", "Month 1-12")
	return cmd
}

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	var input struct {
		username       string
		displayName    string
		email          string
		classification string
		roles          []string
	}
	create := &cobra.Command{
		Use:     "create",
		Short:   "Register a user and print its API token",
		Example: `  worklogctl user create --username somchai --classification Core --role "IT LEAD"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := make([]entities.Role, 0, len(input.roles))
			for _, r := range input.roles {
				roles = append(roles, entities.Role(r))
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *Services) error {
				result, err := svc.Users.CreateUser(ctx, user.CreateUserInput{
					Username:       input.username,
					DisplayName:    input.displayName,
					Email:          input.email,
					Classification: entities.Classification(input.classification),
					Roles:          roles,
				})
				if err != nil {
					return err
				}
				out := userOutput{
					ID:             result.User.ID,
					Username:       result.User.Username,
					Classification: string(result.User.Classification),
					Token:          result.Token,
				}
				for _, r := range result.User.Roles {
					out.Roles = append(out.Roles, string(r))
				}
				return render(cmd.OutOrStdout(), opts.format, out)
			})
		},
	}
	create.Flags().StringVar(&input.username, "username", "", "Login name")
	create.Flags().StringVar(&input.displayName, "display-name", "", "Display name")
	create.Flags().StringVar(&input.email, "email", "", "Email address")
	create.Flags().StringVar(&input.classification, "classification", string(entities.ClassificationCore), "Core or Non-Core")
	create.Flags().StringArrayVar(&input.roles, "role", nil, "Role, repeatable (DEVELOPER, TEAM LEAD, IT LEAD, ADMIN)")
	_ = create.MarkFlagRequired("username")

	cmd.AddCommand(create)
	return cmd
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *Services) error {
				if err := svc.Migrate(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return err
			})
		},
	}
}
