package selective

import (
	"context"
	"fmt"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher drives one test run: resolve candidates, classify them against
// the cache, short-circuit when everything is cached or invoke the tool with
// a reduced invocation, then record executed targets back into the cache and
// every classification into the run ledger.
type Dispatcher struct {
	classifier *Classifier
	cache      ports.CacheStore
	invoker    ports.BuildToolInvoker
	logger     ports.Logger
	tracer     ports.Tracer
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	classifier *Classifier,
	cache ports.CacheStore,
	invoker ports.BuildToolInvoker,
	logger ports.Logger,
	tracer ports.Tracer,
) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		cache:      cache,
		invoker:    invoker,
		logger:     logger,
		tracer:     tracer,
	}
}

// Run executes the selective test flow for one invocation. The ledger owns
// the graph for the duration of the run and receives exactly one cache item
// per resolved candidate: hit-local, hit-remote, or miss. Any failure aborts
// the run; the ledger is only complete when Run returns nil.
func (d *Dispatcher) Run(ctx context.Context, ledger *domain.RunLedger, inv domain.Invocation, additional []string) error {
	graph := ledger.Graph()

	ctx, span := d.tracer.Start(ctx, "resolve")
	scheme, targets, err := ResolveTestTargets(graph, inv.Scheme, inv.TestPlan)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.SetAttribute("targets", len(targets))
	span.End()

	ctx, span = d.tracer.Start(ctx, "classify")
	cls, err := d.classifier.Classify(ctx, graph, scheme, targets, additional)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.SetAttribute("hits", len(cls.Hits))
	span.End()

	if len(targets) > 0 && len(cls.Hits) == len(targets) {
		// Every candidate is already verified: the tool never runs and
		// nothing new is stored.
		d.logger.Info(fmt.Sprintf("all %d test targets are cached, skipping test run", len(targets)))
		d.recordLedger(ledger, targets, cls)
		return nil
	}

	args := ComposeSkipArguments(inv.Args, cls.Skippable)

	if err := ctx.Err(); err != nil {
		// Cancelled before dispatch: nothing ran, so nothing may be written.
		return err
	}

	ctx, span = d.tracer.Start(ctx, "dispatch")
	if err := d.invoker.Run(ctx, args); err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	_, span = d.tracer.Start(ctx, "record")
	defer span.End()
	if err := d.storeExecuted(ctx, targets, cls); err != nil {
		span.RecordError(err)
		return err
	}
	d.recordLedger(ledger, targets, cls)
	return nil
}

// storeExecuted persists a cache entry for every target that actually ran.
// The artifact payload stays empty: the entry records that the hash passed.
func (d *Dispatcher) storeExecuted(ctx context.Context, targets []domain.GraphTarget, cls *Classification) error {
	storables := make([]domain.CacheStorableItem, 0, len(targets))
	for _, gt := range targets {
		if _, hit := cls.Hits[gt]; hit {
			continue
		}
		storables = append(storables, domain.CacheStorableItem{
			Name: gt.TestIdentifier().String(),
			Hash: cls.Hashes[gt],
		})
	}
	if len(storables) == 0 {
		return nil
	}
	if err := d.cache.Store(ctx, storables, domain.CategorySelectiveTests); err != nil {
		return zerr.Wrap(err, "failed to store cache entries")
	}
	return nil
}

// recordLedger accounts for every resolved candidate exactly once: hits keep
// their backend provenance, everything else is recorded as a miss.
func (d *Dispatcher) recordLedger(ledger *domain.RunLedger, targets []domain.GraphTarget, cls *Classification) {
	for _, gt := range targets {
		id := gt.TestIdentifier()
		if item, hit := cls.Hits[gt]; hit {
			ledger.Record(gt.ProjectPath, id, item)
			continue
		}
		ledger.Record(gt.ProjectPath, id, domain.CacheItem{
			Name:     id.String(),
			Hash:     cls.Hashes[gt],
			Category: domain.CategorySelectiveTests,
			Source:   domain.CacheSourceMiss,
		})
	}
}
