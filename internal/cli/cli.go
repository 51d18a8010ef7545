package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/request"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BuildCLI membangun root command hrctl.
//
//	hrctl migrate
//	hrctl chain
//	hrctl salary compute --employee <id> --month 3 --year 2025
//	hrctl token issue --user <id> --role hr_manager [--employee <id>] [--ttl 1h]
//	hrctl outbox status
//	hrctl outbox requeue <event-id>
func BuildCLI() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Admin tool for the HRMS backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (yaml)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if _, _, err := bootstrap.Setup(cfg.Logger); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	rootCmd.AddCommand(buildMigrateCommand(load))
	rootCmd.AddCommand(buildChainCommand(load))
	rootCmd.AddCommand(buildSalaryCommand(load))
	rootCmd.AddCommand(buildTokenCommand(load))
	rootCmd.AddCommand(buildOutboxCommand(load, openOutboxRepository))
	return rootCmd
}

type configLoader func() (*config.Config, error)

func buildMigrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			db, err := connection.ConnectGORMWithRetry(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := app.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			zap.L().Info("migration finished", zap.Int("tables", len(app.Models())))
			fmt.Fprintln(cmd.OutOrStdout(), "migration finished")
			return nil
		},
	}
}

func buildChainCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "chain",
		Short: "Validate and print the configured approval chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			chain, err := request.ChainFromConfig(cfg.Approval.Chain)
			if err != nil {
				return err
			}
			for level := 1; level <= chain.FinalLevel(); level++ {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", level, chain.RoleAt(level))
			}
			return nil
		},
	}
}

func buildSalaryCommand(load configLoader) *cobra.Command {
	salaryCmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary aggregation commands",
	}

	var (
		employeeID string
		month      int
		year       int
	)
	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute an employee's salary for a period without persisting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			db, err := connection.ConnectGORMWithRetry(cfg.Database)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			svc := salary.NewService(
				sqlDB,
				salary.NewRepository(db),
				employee.NewRepository(db),
				request.NewRepository(db),
				salary.Options{PeriodPolicy: cfg.Salary.PeriodPolicy},
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			result, err := svc.Calculate(ctx, employeeID, month, year)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	now := time.Now().UTC()
	computeCmd.Flags().StringVar(&employeeID, "employee", "", "employee id")
	computeCmd.Flags().IntVar(&month, "month", int(now.Month()), "month (1-12)")
	computeCmd.Flags().IntVar(&year, "year", now.Year(), "year")
	_ = computeCmd.MarkFlagRequired("employee")

	salaryCmd.AddCommand(computeCmd)
	return salaryCmd
}

func buildTokenCommand(load configLoader) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Access token helpers for local development",
	}

	var (
		secret     string
		userID     string
		employeeID string
		role       string
		ttl        time.Duration
	)
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				cfg, err := load()
				if err != nil {
					return err
				}
				secret = cfg.JWT.Secret
			}
			if secret == "" {
				return fmt.Errorf("jwt secret is empty: set JWT_SECRET or pass --secret")
			}

			token, err := middleware.IssueToken(secret, middleware.TokenClaims{
				UserID:     userID,
				EmployeeID: employeeID,
				Role:       role,
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issueCmd.Flags().StringVar(&secret, "secret", "", "signing secret (default: jwt.secret from config)")
	issueCmd.Flags().StringVar(&userID, "user", "", "user id")
	issueCmd.Flags().StringVar(&employeeID, "employee", "", "employee id")
	issueCmd.Flags().StringVar(&role, "role", "", "role")
	issueCmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = issueCmd.MarkFlagRequired("user")
	_ = issueCmd.MarkFlagRequired("role")

	tokenCmd.AddCommand(issueCmd)
	return tokenCmd
}

// outboxOpener membuka repository outbox beserta fungsi penutup koneksinya.
type outboxOpener func(cfg *config.Config) (kafka.OutboxRepository, func(), error)

func openOutboxRepository(cfg *config.Config) (kafka.OutboxRepository, func(), error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return kafka.NewOutboxRepository(sqlDB), func() { _ = sqlDB.Close() }, nil
}

func buildOutboxCommand(load configLoader, open outboxOpener) *cobra.Command {
	outboxCmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect and repair the event outbox",
	}

	withRepo := func(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, repo kafka.OutboxRepository) error) error {
		cfg, err := load()
		if err != nil {
			return err
		}
		repo, closeFn, err := open(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		return fn(ctx, cfg, repo)
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Count outbox events per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(cmd, func(ctx context.Context, cfg *config.Config, repo kafka.OutboxRepository) error {
				counts, err := repo.CountByStatus(ctx, cfg.Kafka.MaxRetries)
				if err != nil {
					return err
				}
				for _, c := range counts {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\texhausted=%d\n", c.Status, c.Count, c.Exhausted)
				}
				return nil
			})
		},
	}

	requeueCmd := &cobra.Command{
		Use:   "requeue <event-id>",
		Short: "Reset a failed outbox event so the worker retries it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(cmd, func(ctx context.Context, _ *config.Config, repo kafka.OutboxRepository) error {
				if err := repo.Requeue(ctx, args[0]); err != nil {
					return err
				}
				zap.L().Info("outbox event requeued", zap.String("outbox_id", args[0]))
				fmt.Fprintf(cmd.OutOrStdout(), "requeued %s\n", args[0])
				return nil
			})
		},
	}

	outboxCmd.AddCommand(statusCmd, requeueCmd)
	return outboxCmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
