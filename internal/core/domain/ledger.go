package domain

import "sync"

// RunLedger is the run-scoped record of every classified cache item and the
// graph the run was resolved against. It is created once per run, mutated
// only by the dispatcher, and read by reporting after the run completes.
// It has no meaning beyond the lifetime of a single invocation.
type RunLedger struct {
	graph *Graph

	mu    sync.RWMutex
	items map[string]map[TestIdentifier]CacheItem
}

// NewRunLedger creates a ledger for one run over the given graph.
func NewRunLedger(graph *Graph) *RunLedger {
	return &RunLedger{
		graph: graph,
		items: make(map[string]map[TestIdentifier]CacheItem),
	}
}

// Graph returns the graph the run was resolved against.
func (l *RunLedger) Graph() *Graph {
	return l.graph
}

// Record inserts a cache item keyed by owning project path, then test name.
// Entries merge into prior ones from the same run; a later project's targets
// never overwrite an earlier project's.
func (l *RunLedger) Record(projectPath string, id TestIdentifier, item CacheItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byName, ok := l.items[projectPath]
	if !ok {
		byName = make(map[TestIdentifier]CacheItem)
		l.items[projectPath] = byName
	}
	byName[id] = item
}

// Items returns a copy of the accumulated classifications, keyed by project
// path and test name.
func (l *RunLedger) Items() map[string]map[TestIdentifier]CacheItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]map[TestIdentifier]CacheItem, len(l.items))
	for path, byName := range l.items {
		inner := make(map[TestIdentifier]CacheItem, len(byName))
		for id, item := range byName {
			inner[id] = item
		}
		out[path] = inner
	}
	return out
}

// Count returns the total number of recorded items.
func (l *RunLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, byName := range l.items {
		n += len(byName)
	}
	return n
}

// CountBySource returns how many recorded items carry each provenance.
func (l *RunLedger) CountBySource() map[CacheSource]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[CacheSource]int)
	for _, byName := range l.items {
		for _, item := range byName {
			out[item.Source]++
		}
	}
	return out
}
