// Package worker runs batches of independent heightmap generations in parallel.
// Each generation is single-threaded; parallelism is across seeds only.
package worker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
	"github.com/MeKo-Tech/heightmap/internal/summary"
)

// Generator produces one heightmap for a task.
type Generator interface {
	Generate(ctx context.Context, task Task) (*heightmap.Grid, error)
}

// Task represents a single heightmap generation.
type Task struct {
	Size int
	Seed int64
}

// Result represents the outcome of a generation task.
type Result struct {
	Task    Task
	Summary summary.Summary
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Generator  Generator
	OnProgress ProgressFunc
}

// Pool manages parallel heightmap generation.
type Pool struct {
	workers    int
	generator  Generator
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		generator:  cfg.Generator,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns results ordered by seed.
// The function blocks until all tasks complete or the context is cancelled.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Task.Seed < results[j].Task.Seed
	})
	return results
}

// worker processes tasks from the task channel and sends results to the result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		grid, err := p.generator.Generate(ctx, task)
		res := Result{
			Task:    task,
			Err:     err,
			Elapsed: time.Since(start),
		}
		if err == nil {
			res.Summary = summary.Of(grid)
		}
		results <- res
	}
}

// HeightmapGenerator adapts heightmap.Generator to the pool, giving each task
// its own seeded source.
type HeightmapGenerator struct {
	Generator *heightmap.Generator
}

// Generate runs one seeded generation unless ctx is already done.
func (h HeightmapGenerator) Generate(ctx context.Context, task Task) (*heightmap.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gen := h.Generator
	if gen == nil {
		gen = &heightmap.Generator{}
	}
	return gen.Generate(task.Size, heightmap.NewSource(task.Seed))
}
