package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chrissuu/elastisched/app"
	"github.com/chrissuu/elastisched/config"
	"github.com/chrissuu/elastisched/core/scheduler"
	"github.com/chrissuu/elastisched/infra/logger"
	"github.com/chrissuu/elastisched/pkg/export"
	"github.com/chrissuu/elastisched/pkg/jobsfile"
)

var (
	jobsPath  string
	format    string
	showStats bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Load a job set, run the search, and print the resulting schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&jobsPath, "jobs", "", "job set file (YAML or JSON); overrides jobsFile in config")
	scheduleCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	scheduleCmd.Flags().BoolVar(&showStats, "stats", false, "print cost history statistics to stderr")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if jobsPath != "" {
		cfg.JobsFile = jobsPath
	}

	jobs, err := jobsfile.Load(cfg.JobsFile)
	if err != nil {
		return fmt.Errorf("load jobs: %w", err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("cmd").Errorf("service close: %v", err)
		}
	}()

	result, err := svc.Run(ctx, jobs)
	if err != nil {
		return err
	}

	if showStats {
		summary := scheduler.SummarizeCostHistory(result.CostHistory)
		fmt.Fprintf(cmd.ErrOrStderr(),
			"iterations=%d best_cost=%.4f mean=%.4f stddev=%.4f trend=%.6f\n",
			result.Iterations, result.BestCost, summary.Mean, summary.StdDev, summary.TrendSlope)
	}

	switch format {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), result.Best)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), result.Best)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
