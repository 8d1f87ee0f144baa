package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
	"github.com/MeKo-Tech/heightmap/internal/summary"
	"github.com/MeKo-Tech/heightmap/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Generate heightmaps for a range of seeds",
	Long: `Generate one heightmap per seed in [seed-start, seed-start+count) on a pool
of workers and report aggregate statistics. Each heightmap is generated
single-threaded; workers only run different seeds side by side.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().IntP("size", "n", 8, fmt.Sprintf("Size parameter n; grid side is 2^n+1 (1..%d)", heightmap.MaxSize))
	sweepCmd.Flags().Int64("seed-start", 0, "First seed of the sweep")
	sweepCmd.Flags().Int("count", 16, "Number of seeds to generate")
	sweepCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	sweepCmd.Flags().Bool("progress", true, "Show progress bar during the sweep")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"sweep.size", "size"},
		{"sweep.seed_start", "seed-start"},
		{"sweep.count", "count"},
		{"sweep.workers", "workers"},
		{"sweep.progress", "progress"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, sweepCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	size := viper.GetInt("sweep.size")
	seedStart := viper.GetInt64("sweep.seed_start")
	count := viper.GetInt("sweep.count")
	workers := viper.GetInt("sweep.workers")
	showProgress := viper.GetBool("sweep.progress")

	if logger == nil {
		initLogging()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	agg, err := sweep(ctx, size, seedStart, count, workers, showProgress)
	if err != nil {
		return err
	}

	logger.Info("Sweep complete",
		"maps", agg.Count,
		"mean_of_means", fmt.Sprintf("%.4f", agg.MeanOfMeans),
		"mean_stddev", fmt.Sprintf("%.4f", agg.MeanStdDev),
		"mean_roughness", fmt.Sprintf("%.4f", agg.MeanRoughness),
		"roughness_range", fmt.Sprintf("%.4f-%.4f", agg.MinRoughness, agg.MaxRoughness),
	)
	return nil
}

func sweep(ctx context.Context, size int, seedStart int64, count, workers int, showProgress bool) (summary.Aggregate, error) {
	if _, err := heightmap.SideFor(size); err != nil {
		return summary.Aggregate{}, err
	}
	if count <= 0 {
		return summary.Aggregate{}, fmt.Errorf("count must be positive, got %d", count)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := make([]worker.Task, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, worker.Task{Size: size, Seed: seedStart + int64(i)})
	}

	logger.Info("Starting heightmap sweep",
		"size", size,
		"seed_range", fmt.Sprintf("%d-%d", seedStart, seedStart+int64(count)-1),
		"workers", workers,
	)

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  worker.HeightmapGenerator{Generator: &heightmap.Generator{Logger: logger}},
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	if err := ctx.Err(); err != nil {
		return summary.Aggregate{}, fmt.Errorf("sweep cancelled after %d of %d heightmaps: %w", len(results), count, err)
	}

	summaries := make([]summary.Summary, 0, len(results))
	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Heightmap generation failed", "seed", r.Task.Seed, "error", r.Err)
			continue
		}
		logger.Debug("Heightmap generated",
			"seed", r.Task.Seed,
			"elapsed", r.Elapsed,
			"mean", r.Summary.Mean,
			"roughness", r.Summary.Roughness,
		)
		summaries = append(summaries, r.Summary)
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return summary.Aggregate{}, fmt.Errorf("%d heightmaps failed to generate", failedCount)
	}
	return summary.Combine(summaries), nil
}
