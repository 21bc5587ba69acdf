package task

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nilinki/internal/pkg/logger"
)

// Runner executes units of work detached from the caller's request
// lifecycle. A detached task's failure is observed only via logging and
// never reaches the response that triggered it.
type Runner struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{timeout: timeout}
}

// Go runs fn on its own goroutine with a fresh context. The parent request
// context is deliberately not inherited: the task must outlive the response.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Get().Error("detached task panicked",
					zap.String("task", name),
					zap.Any("panic", rec),
				)
			}
		}()

		if err := fn(ctx); err != nil {
			logger.Get().Error("detached task failed",
				zap.String("task", name),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all started tasks finish. Used on shutdown and in tests;
// request handlers never call it.
func (r *Runner) Wait() {
	r.wg.Wait()
}
