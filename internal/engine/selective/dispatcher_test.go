package selective_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/telemetry"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports/mocks"
	"go.trai.ch/sift/internal/engine/selective"
	"go.uber.org/mock/gomock"
)

type dispatcherFixture struct {
	hasher  *mocks.MockTargetHasher
	cache   *mocks.MockCacheStore
	service *mocks.MockSelectiveTestingService
	invoker *mocks.MockBuildToolInvoker
	logger  *mocks.MockLogger
	d       *selective.Dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &dispatcherFixture{
		hasher:  mocks.NewMockTargetHasher(ctrl),
		cache:   mocks.NewMockCacheStore(ctrl),
		service: mocks.NewMockSelectiveTestingService(ctrl),
		invoker: mocks.NewMockBuildToolInvoker(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.d = selective.NewDispatcher(
		selective.NewClassifier(f.hasher, f.cache, f.service),
		f.cache,
		f.invoker,
		f.logger,
		telemetry.NewNoOpTracer(),
	)
	return f
}

// twoTargetGraph declares scheme "App" with test targets A then B.
func twoTargetGraph(t *testing.T) *domain.Graph {
	t.Helper()

	g := domain.NewGraph()
	require.NoError(t, g.AddProject(domain.Project{
		Path: "App",
		Targets: []domain.Target{
			{Name: "A"},
			{Name: "B"},
		},
		Schemes: []domain.Scheme{
			{
				Name: "App",
				TestAction: &domain.TestAction{
					Targets: []domain.TargetReference{
						{ProjectPath: "App", Name: "A"},
						{ProjectPath: "App", Name: "B"},
					},
				},
			},
		},
	}))
	return g
}

func twoTargetHashes() map[domain.GraphTarget]string {
	return map[domain.GraphTarget]string{
		{ProjectPath: "App", TargetName: "A"}: "h1",
		{ProjectPath: "App", TargetName: "B"}: "h2",
	}
}

func TestDispatcher_Run_AllCached(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	hitA := domain.CacheItem{Name: "A", Hash: "h1", Category: domain.CategorySelectiveTests, Source: domain.CacheSourceLocal}
	hitB := domain.CacheItem{Name: "B", Hash: "h2", Category: domain.CategorySelectiveTests, Source: domain.CacheSourceRemote}

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).Return(twoTargetHashes(), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), domain.CategorySelectiveTests).
		Return(map[domain.CacheItem]string{hitA: "/cache", hitB: "s3://cache"}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), g, gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{"A": {}, "B": {}}, nil)

	// The tool never runs and nothing new is stored.
	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
	f.cache.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	inv := domain.Invocation{Args: []string{"test", "-scheme", "App"}, Scheme: "App"}
	require.NoError(t, f.d.Run(context.Background(), ledger, inv, nil))

	items := ledger.Items()["App"]
	require.Len(t, items, 2)
	assert.Equal(t, hitA, items["A"])
	assert.Equal(t, hitB, items["B"])
}

func TestDispatcher_Run_PartialSkip(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	hitA := domain.CacheItem{Name: "A", Hash: "h1", Category: domain.CategorySelectiveTests, Source: domain.CacheSourceLocal}

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).Return(twoTargetHashes(), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), domain.CategorySelectiveTests).
		Return(map[domain.CacheItem]string{hitA: "/cache"}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), g, gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{"A": {}}, nil)

	original := []string{"test", "-scheme", "App", "-destination", "generic"}
	f.invoker.EXPECT().
		Run(gomock.Any(), append(append([]string{}, original...), "-skip-testing:A")).
		Return(nil)

	// Exactly one store call with a single entry for B and no artifacts.
	f.cache.EXPECT().
		Store(gomock.Any(), []domain.CacheStorableItem{{Name: "B", Hash: "h2"}}, domain.CategorySelectiveTests).
		Return(nil).
		Times(1)

	inv := domain.Invocation{Args: original, Scheme: "App"}
	require.NoError(t, f.d.Run(context.Background(), ledger, inv, nil))

	items := ledger.Items()["App"]
	require.Len(t, items, 2)
	assert.Equal(t, domain.CacheSourceLocal, items["A"].Source)
	assert.Equal(t, domain.CacheSourceMiss, items["B"].Source)
	assert.Equal(t, "h2", items["B"].Hash)
}

func TestDispatcher_Run_SameNamedTargetsAcrossProjects(t *testing.T) {
	f := newDispatcherFixture(t)

	g := domain.NewGraph()
	require.NoError(t, g.AddProject(domain.Project{
		Path:    "App",
		Targets: []domain.Target{{Name: "CommonTests"}},
		Schemes: []domain.Scheme{
			{
				Name: "Workspace",
				TestAction: &domain.TestAction{
					Targets: []domain.TargetReference{
						{ProjectPath: "App", Name: "CommonTests"},
						{ProjectPath: "Lib", Name: "CommonTests"},
					},
				},
			},
		},
	}))
	require.NoError(t, g.AddProject(domain.Project{
		Path:    "Lib",
		Targets: []domain.Target{{Name: "CommonTests"}},
	}))
	ledger := domain.NewRunLedger(g)

	appCommon := domain.GraphTarget{ProjectPath: "App", TargetName: "CommonTests"}
	libCommon := domain.GraphTarget{ProjectPath: "Lib", TargetName: "CommonTests"}
	appHit := domain.CacheItem{Name: "CommonTests", Hash: "h1", Category: domain.CategorySelectiveTests, Source: domain.CacheSourceLocal}

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).
		Return(map[domain.GraphTarget]string{appCommon: "h1", libCommon: "h2"}, nil)
	// Only App's hash is in the cache; the service verifies the shared name.
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), domain.CategorySelectiveTests).
		Return(map[domain.CacheItem]string{appHit: "/cache"}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), g, gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{"CommonTests": {}}, nil)

	// The shared name must not be skipped while Lib's target still runs, so
	// the tool receives the original arguments unchanged.
	original := []string{"test", "-scheme", "Workspace"}
	f.invoker.EXPECT().Run(gomock.Any(), original).Return(nil)
	f.cache.EXPECT().
		Store(gomock.Any(), []domain.CacheStorableItem{{Name: "CommonTests", Hash: "h2"}}, domain.CategorySelectiveTests).
		Return(nil).
		Times(1)

	inv := domain.Invocation{Args: original, Scheme: "Workspace"}
	require.NoError(t, f.d.Run(context.Background(), ledger, inv, nil))

	// Each project's target keeps its own classification.
	items := ledger.Items()
	require.Len(t, items["App"], 1)
	require.Len(t, items["Lib"], 1)
	assert.Equal(t, appHit, items["App"]["CommonTests"])
	assert.Equal(t, domain.CacheSourceMiss, items["Lib"]["CommonTests"].Source)
	assert.Equal(t, "h2", items["Lib"]["CommonTests"].Hash)
}

func TestDispatcher_Run_InvocationFailureIsFatal(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).Return(twoTargetHashes(), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.CacheItem]string{}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{}, nil)

	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
	// A failed run must not mark anything as passing.
	f.cache.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	inv := domain.Invocation{Args: []string{"test", "-scheme", "App"}, Scheme: "App"}
	err := f.d.Run(context.Background(), ledger, inv, nil)
	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, ledger.Count())
}

func TestDispatcher_Run_SchemeNotFound(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	f.hasher.EXPECT().HashGraph(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)

	inv := domain.Invocation{Args: []string{"test", "-scheme", "Nope"}, Scheme: "Nope"}
	err := f.d.Run(context.Background(), ledger, inv, nil)
	require.ErrorIs(t, err, domain.ErrSchemeNotFound)
	assert.Zero(t, ledger.Count())
}

func TestDispatcher_Run_CancelledBeforeDispatch(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	ctx, cancel := context.WithCancel(context.Background())

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Graph, []string) (map[domain.GraphTarget]string, error) {
			cancel()
			return twoTargetHashes(), nil
		})
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.CacheItem]string{}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{}, nil)

	// Cancelled before dispatch: the tool never runs, nothing is written.
	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
	f.cache.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	inv := domain.Invocation{Args: []string{"test", "-scheme", "App"}, Scheme: "App"}
	err := f.d.Run(ctx, ledger, inv, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ledger.Count())
}

func TestDispatcher_Run_StoreFailureAbortsRun(t *testing.T) {
	f := newDispatcherFixture(t)
	g := twoTargetGraph(t)
	ledger := domain.NewRunLedger(g)

	f.hasher.EXPECT().HashGraph(gomock.Any(), g, gomock.Any()).Return(twoTargetHashes(), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.CacheItem]string{}, nil)
	f.service.EXPECT().CachedTests(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.TestIdentifier]struct{}{}, nil)
	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	inv := domain.Invocation{Args: []string{"test", "-scheme", "App"}, Scheme: "App"}
	err := f.d.Run(context.Background(), ledger, inv, nil)
	require.ErrorIs(t, err, assert.AnError)
}
