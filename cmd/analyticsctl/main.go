package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alumniconnect/portal-api/config"
	"github.com/alumniconnect/portal-api/internal/database/postgres"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/repository"
	"github.com/alumniconnect/portal-api/internal/services"
	"github.com/alumniconnect/portal-api/pkg/db"
	"github.com/alumniconnect/portal-api/pkg/jwt"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:          "analyticsctl",
	Long:         "Compute AlumniConnect admin analytics reports directly against the database",
	SilenceUsage: true,
}

var args struct {
	timeout time.Duration
	debug   bool

	subject string
	email   string
	name    string
	role    string
}

func main() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFunc computes one report with a freshly wired, uncached service
type reportFunc func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, argv []string) (any, error)

func reportCommand(use, short string, positional cobra.PositionalArgs, fn reportFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, argv []string) error {
			cfg, err := config.LoadDatabaseOnly()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), args.timeout)
			defer cancel()

			pool, err := db.NewPool(ctx, db.PoolConfig{URL: cfg.Database.URL, MaxConns: 2, MinConns: 0})
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			client := postgres.NewClient(pool)
			defer client.Close()

			svc := services.NewAdminAnalyticsService(
				repository.NewMentorshipRepository(client),
				repository.NewUserRepository(client),
			)

			report, err := fn(ctx, svc, argv)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

func initLogger() error {
	level := "warn"
	if args.debug {
		level = "debug"
	}
	if err := logger.Initialize(logger.Config{
		Level:       level,
		Environment: "cli",
		ServiceName: "analyticsctl",
	}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if _, err := uuid.Parse(args.subject); err != nil {
		return fmt.Errorf("--subject must be a user UUID: %w", err)
	}
	if !models.UserRole(args.role).IsValid() {
		return fmt.Errorf("unknown role %q", args.role)
	}

	tm := jwt.NewTokenManager(cfg.AdminSession.JWTSecret, cfg.AdminSession.JWTIssuer, cfg.AdminSession.SessionTTLHours)
	token, err := tm.GenerateToken(args.subject, args.email, args.name, args.role)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func init() {
	flags := Cmd.PersistentFlags()
	flags.DurationVar(&args.timeout, "timeout", 30*time.Second, "Deadline for the database round trips")
	flags.BoolVar(&args.debug, "debug", false, "Enable debug logging")

	Cmd.AddCommand(
		reportCommand("overview", "Headline user counters", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.GetPlatformOverview(ctx)
			}),
		reportCommand("continuity", "Mentorship continuity metrics", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.GetContinuityMetrics(ctx)
			}),
		reportCommand("effectiveness", "Effectiveness of completed mentorships", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.GetEffectivenessMetrics(ctx)
			}),
		reportCommand("risk", "At-risk active mentorships", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.GetRiskAnalysis(ctx)
			}),
		reportCommand("load [mentor-id]", "Mentor load balancing report, or one mentor's load", cobra.MaximumNArgs(1),
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, argv []string) (any, error) {
				if len(argv) == 0 {
					return svc.GetMentorLoadBalancing(ctx)
				}
				mentorID, err := uuid.Parse(argv[0])
				if err != nil {
					return nil, fmt.Errorf("invalid mentor id %q: %w", argv[0], err)
				}
				return svc.GetMentorLoad(ctx, mentorID)
			}),
		reportCommand("insights", "Program growth, distributions and health", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.GetProgramInsights(ctx)
			}),
		reportCommand("autobalance", "Suggest mentors for pending mentorship requests", cobra.NoArgs,
			func(ctx context.Context, svc services.AdminAnalyticsServiceInterface, _ []string) (any, error) {
				return svc.AutoBalanceMentors(ctx)
			}),
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin session token for API access",
		Args:  cobra.NoArgs,
		RunE:  runToken,
	}
	tokenFlags := tokenCmd.Flags()
	tokenFlags.StringVar(&args.subject, "subject", "", "Admin user id (UUID)")
	tokenFlags.StringVar(&args.email, "email", "", "Admin email")
	tokenFlags.StringVar(&args.name, "name", "", "Admin display name")
	tokenFlags.StringVar(&args.role, "role", string(models.UserRoleAdmin), "Role claim")
	_ = tokenCmd.MarkFlagRequired("subject") //nolint:errcheck
	Cmd.AddCommand(tokenCmd)
}
