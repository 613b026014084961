package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rcliao/baseline/internal/config"
	"github.com/rcliao/baseline/internal/domain"
	"github.com/rcliao/baseline/internal/service"
	"github.com/rcliao/baseline/internal/storage"
)

var (
	configPath string
	iterations int
	seed       int64
)

func main() {
	root := &cobra.Command{
		Use:   "baseline",
		Short: "Project schedule and cost analytics engine",
		Long:  "baseline computes critical paths, earned value metrics, Monte Carlo forecasts, and performance trends from plain JSON snapshots.",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().IntVar(&iterations, "iterations", 0, "Monte Carlo iterations (overrides config)")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for reproducible forecasts")

	root.AddCommand(analyzeCmd(), performanceCmd(), scheduleCmd(), costCmd(), trendCmd(), listCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newService() (*service.AnalysisService, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if iterations > 0 {
		cfg.Simulation.Iterations = iterations
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	store, err := storage.NewFileStore(cwd)
	if err != nil {
		return nil, err
	}

	return service.NewAnalysisService(store, cfg.Simulation, logger), nil
}

// readInput decodes JSON from a file argument, or stdin when the argument
// is "-".
func readInput(path string, v interface{}) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func printResult(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <tasks.json>",
		Short: "Compute the critical path for a task list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input struct {
				Tasks []domain.Task `json:"tasks"`
			}
			if err := readInput(args[0], &input); err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			record, err := svc.AnalyzeCriticalPath(input.Tasks)
			if err != nil {
				return err
			}
			return printResult(record)
		},
	}
}

func performanceCmd() *cobra.Command {
	var budget, actualCost, percentComplete, plannedPercent float64
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Compute earned value metrics for a budget snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			record, err := svc.CalculatePerformance(budget, actualCost, percentComplete, plannedPercent)
			if err != nil {
				return err
			}
			return printResult(record)
		},
	}
	cmd.Flags().Float64Var(&budget, "budget", 0, "budget at completion")
	cmd.Flags().Float64Var(&actualCost, "actual-cost", 0, "actual cost to date")
	cmd.Flags().Float64Var(&percentComplete, "percent-complete", 0, "work completed, 0-100")
	cmd.Flags().Float64Var(&plannedPercent, "planned-percent", 0, "work planned to date, 0-100")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <snapshot.json>",
		Short: "Forecast completion delay from a progress snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input struct {
				Input   domain.ScheduleForecastInput `json:"input"`
				History []domain.HistoricalSchedule  `json:"history,omitempty"`
			}
			if err := readInput(args[0], &input); err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			record, err := svc.ForecastSchedule(input.Input, input.History)
			if err != nil {
				return err
			}
			return printResult(record)
		},
	}
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost <snapshot.json>",
		Short: "Forecast the estimate at completion from a budget snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input struct {
				Input   domain.CostForecastInput `json:"input"`
				History []domain.HistoricalCost  `json:"history,omitempty"`
			}
			if err := readInput(args[0], &input); err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			record, err := svc.ForecastCost(input.Input, input.History)
			if err != nil {
				return err
			}
			return printResult(record)
		},
	}
}

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend <series.json>",
		Short: "Fit a least-squares trend over an ordered series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input struct {
				Series         []domain.TrendPoint `json:"series"`
				HigherIsBetter bool                `json:"higherIsBetter"`
			}
			if err := readInput(args[0], &input); err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			record, err := svc.AnalyzeTrend(input.Series, input.HigherIsBetter)
			if err != nil {
				return err
			}
			return printResult(record)
		},
	}
}

func listCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			filter := domain.AnalysisFilter{}
			if kind != "" {
				k := domain.AnalysisKind(kind)
				filter.Kind = &k
			}
			records, err := svc.List(filter)
			if err != nil {
				return err
			}
			return printResult(records)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "filter by analysis kind (critical-path, performance, schedule-forecast, cost-forecast, trend)")
	return cmd
}
