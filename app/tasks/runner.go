package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Runner executes a fixed worklist of independent tasks over a bounded
// worker pool. With a single worker the tasks run strictly sequentially in
// list order.
type Runner struct {
	workerCount int
}

func NewRunner(workerCount int) *Runner {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Runner{workerCount: workerCount}
}

// Run processes every task once and returns the per-task failures. A
// failing task does not stop the remaining tasks.
func (r *Runner) Run(ctx context.Context, tasks []TaskInterface) []error {
	taskQueue := make(chan TaskInterface)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error

	for i := 0; i < r.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for task := range taskQueue {
				if err := r.executeTask(ctx, workerID, task); err != nil {
					mu.Lock()
					failures = append(failures, fmt.Errorf("channel %s: %w", task.GetChannelName(), err))
					mu.Unlock()
				}
			}
		}(i)
	}

enqueue:
	for i, task := range tasks {
		select {
		case taskQueue <- task:
		case <-ctx.Done():
			slog.Warn("Run cancelled, remaining tasks dropped", "remaining", len(tasks)-i)
			break enqueue
		}
	}
	close(taskQueue)

	wg.Wait()

	return failures
}

func (r *Runner) executeTask(ctx context.Context, workerID int, task TaskInterface) error {
	task.Start()

	if err := task.Execute(ctx); err != nil {
		slog.Error("Task execution failed",
			"worker_id", workerID,
			"type", string(task.GetType()),
			"id", task.GetID(),
			"channel", task.GetChannelName(),
			"duration", task.GetDuration(),
			"error", err)
		return err
	}

	return nil
}
