// Command spark-connect-shell is a minimal example binary: it dials a
// Spark Connect endpoint, runs one SQL command through ToArrow, and
// prints the resulting table's dimensions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apache/spark-connect-client-go/channel"
	"github.com/apache/spark-connect-client-go/sparkpb"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		connStr string
		sql     string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "spark-connect-shell",
		Short: "Run one SQL statement against a Spark Connect endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := buildLogger(verbose)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, logger, connStr, sql)
		},
	}

	root.PersistentFlags().StringVar(&connStr, "remote", envOrDefault("SPARK_REMOTE", "sc://localhost"), "Spark Connect connection string")
	root.PersistentFlags().StringVar(&sql, "sql", "SELECT 1", "SQL statement to run")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return root
}

func run(ctx context.Context, logger *zap.Logger, connStr, sql string) error {
	builder, err := channel.Parse(connStr)
	if err != nil {
		return fmt.Errorf("parsing connection string: %w", err)
	}

	session, err := builder.Build(ctx, logger)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer session.Close(ctx)

	plan := &sparkpb.Plan{
		OpType: &sparkpb.Plan_Command{
			Command: &sparkpb.Any{TypeUrl: "spark.connect.SqlCommand", Value: []byte(sql)},
		},
	}

	table, err := session.ToArrow(ctx, plan)
	if err != nil {
		return fmt.Errorf("running %q: %w", sql, err)
	}
	defer table.Release()

	fmt.Printf("rows=%d cols=%d\n", table.NumRows(), table.NumCols())
	return nil
}

func buildLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
