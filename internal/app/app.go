// Package app implements the application layer for sift.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/selective"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	mapper     ports.GraphMapper
	dispatcher *selective.Dispatcher
	logger     ports.Logger
}

// New creates a new App instance.
func New(mapper ports.GraphMapper, dispatcher *selective.Dispatcher, logger ports.Logger) *App {
	return &App{
		mapper:     mapper,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Test runs the selective test flow for the given passthrough arguments.
func (a *App) Test(ctx context.Context, args []string) error {
	// Argument validation happens before any graph work.
	inv, err := domain.ParseInvocation(args)
	if err != nil {
		return err
	}

	graph, err := a.mapper.Map(ctx, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to map workspace graph")
	}

	// The ledger lives exactly as long as this run.
	ledger := domain.NewRunLedger(graph)
	if err := a.dispatcher.Run(ctx, ledger, inv, environmentSeeds()); err != nil {
		return err
	}

	a.summarize(ledger)
	return nil
}

// environmentSeeds returns the cache-busting seed strings folded into every
// target hash. A cache entry produced on one platform must not verify a run
// on another.
func environmentSeeds() []string {
	return []string{
		"os=" + runtime.GOOS,
		"arch=" + runtime.GOARCH,
	}
}

func (a *App) summarize(ledger *domain.RunLedger) {
	counts := ledger.CountBySource()
	a.logger.Info(fmt.Sprintf(
		"test run complete: %d cached locally, %d cached remotely, %d executed",
		counts[domain.CacheSourceLocal],
		counts[domain.CacheSourceRemote],
		counts[domain.CacheSourceMiss],
	))
}
