package selection_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/core/ports/mocks"
	"go.trai.ch/gate/internal/engine/selection"
	"go.uber.org/mock/gomock"
)

// staticConstraint is reusable metadata: it implements domain.Constraint
// directly.
type staticConstraint struct {
	accept bool
}

func (c *staticConstraint) Accept(_ *domain.RequestContext) bool { return c.accept }

// countingFactory counts how often a constraint is built from it.
type countingFactory struct {
	reusable bool
	creates  atomic.Int64
}

func (f *countingFactory) Reusable() bool { return f.reusable }

func (f *countingFactory) CreateConstraint(_ *domain.RequestContext) domain.Constraint {
	f.creates.Add(1)
	return &staticConstraint{accept: true}
}

// recordingProvider appends its tag on each phase callback.
type recordingProvider struct {
	order int
	tag   string

	mu    sync.Mutex
	calls *[]string
}

func (p *recordingProvider) Order() int { return p.order }

func (p *recordingProvider) OnProvidersExecuting(_ *domain.ConstraintProviderContext) {
	p.record()
}

func (p *recordingProvider) OnProvidersExecuted(_ *domain.ConstraintProviderContext) {
	p.record()
}

func (p *recordingProvider) record() {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.calls = append(*p.calls, p.tag)
}

// countingProvider counts executing-phase invocations.
type countingProvider struct {
	order int
	runs  atomic.Int64
}

func (p *countingProvider) Order() int { return p.order }

func (p *countingProvider) OnProvidersExecuting(_ *domain.ConstraintProviderContext) {
	p.runs.Add(1)
}

func (p *countingProvider) OnProvidersExecuted(_ *domain.ConstraintProviderContext) {}

// versionedSource is a descriptor source whose snapshot tests swap at will.
func versionedSource(t *testing.T, ctrl *gomock.Controller) (*mocks.MockDescriptorSource, *atomic.Pointer[domain.ActionDescriptorCollection]) {
	t.Helper()

	var current atomic.Pointer[domain.ActionDescriptorCollection]
	source := mocks.NewMockDescriptorSource(ctrl)
	source.EXPECT().Current().DoAndReturn(func() *domain.ActionDescriptorCollection {
		return current.Load()
	}).AnyTimes()
	return source, &current
}

func newRequest() *domain.RequestContext {
	return &domain.RequestContext{Method: "GET", ContentLength: -1}
}

func TestCache_NoMetadata_SkipsProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	action := &domain.ActionDescriptor{ID: "a1", Name: domain.NewInternedString("empty")}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	// The mock provider has no callback expectations: any pipeline
	// invocation fails the test.
	provider := mocks.NewMockConstraintProvider(ctrl)
	provider.EXPECT().Order().Return(0).AnyTimes()

	cache := selection.NewCache(source, []ports.ConstraintProvider{provider}, nil)

	got := cache.GetConstraints(newRequest(), action)
	assert.Nil(t, got)

	// A second lookup must not change that.
	got = cache.GetConstraints(newRequest(), action)
	assert.Nil(t, got)
}

func TestCache_ReusableEntry_ServedWithoutRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	constraint := &staticConstraint{accept: true}
	action := &domain.ActionDescriptor{
		ID:                 "a1",
		Name:               domain.NewInternedString("users.show"),
		ConstraintMetadata: []any{constraint},
	}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	counter := &countingProvider{order: 10}
	cache := selection.NewCache(source, []ports.ConstraintProvider{selection.NewDefaultProvider(), counter}, nil)

	first := cache.GetConstraints(newRequest(), action)
	require.Len(t, first, 1)
	assert.Same(t, constraint, first[0])
	assert.Equal(t, int64(1), counter.runs.Load())

	second := cache.GetConstraints(newRequest(), action)
	require.Len(t, second, 1)

	// Same backing list, not an equal copy: the hit path returns the
	// cached slice itself and does not run the pipeline again.
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, int64(1), counter.runs.Load())
}

func TestCache_TemplateEntry_RecomputesNonReusableOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reusable := &staticConstraint{accept: true}
	factory := &countingFactory{reusable: false}
	action := &domain.ActionDescriptor{
		ID:                 "a1",
		Name:               domain.NewInternedString("users.update"),
		ConstraintMetadata: []any{reusable, factory},
	}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	counter := &countingProvider{order: 10}
	cache := selection.NewCache(source, []ports.ConstraintProvider{selection.NewDefaultProvider(), counter}, nil)

	first := cache.GetConstraints(newRequest(), action)
	require.Len(t, first, 2)
	assert.Equal(t, int64(1), factory.creates.Load())

	second := cache.GetConstraints(newRequest(), action)
	require.Len(t, second, 2)

	// The full pipeline ran again and the factory-built constraint was
	// rebuilt, while the reusable item survived as-is.
	assert.Equal(t, int64(2), counter.runs.Load())
	assert.Equal(t, int64(2), factory.creates.Load())
	assert.Same(t, reusable, second[0])
	assert.NotSame(t, first[1], second[1])
}

func TestCache_VersionBump_InvalidatesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	constraint := &staticConstraint{accept: true}
	action := &domain.ActionDescriptor{
		ID:                 "a1",
		Name:               domain.NewInternedString("users.show"),
		ConstraintMetadata: []any{constraint},
	}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	counter := &countingProvider{order: 10}
	cache := selection.NewCache(source, []ports.ConstraintProvider{selection.NewDefaultProvider(), counter}, nil)

	cache.GetConstraints(newRequest(), action)
	cache.GetConstraints(newRequest(), action)
	assert.Equal(t, int64(1), counter.runs.Load())

	// Simulate a route-table change: same descriptors, new version.
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 2})

	got := cache.GetConstraints(newRequest(), action)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), counter.runs.Load())
}

func TestCache_ProviderPhaseOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	action := &domain.ActionDescriptor{
		ID:                 "a1",
		Name:               domain.NewInternedString("ordered"),
		ConstraintMetadata: []any{&staticConstraint{accept: true}},
	}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	var calls []string
	a := &recordingProvider{order: 1, tag: "A", calls: &calls}
	b := &recordingProvider{order: 2, tag: "B", calls: &calls}
	c := &recordingProvider{order: 3, tag: "C", calls: &calls}

	// Registered out of order on purpose; NewCache sorts by Order.
	cache := selection.NewCache(source, []ports.ConstraintProvider{c, a, selection.NewDefaultProvider(), b}, nil)

	cache.GetConstraints(newRequest(), action)

	// Drop the default provider's contribution: it records nothing.
	assert.Equal(t, []string{"A", "B", "C", "C", "B", "A"}, calls)
}

func TestCache_UnresolvedItemsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Metadata nobody understands stays unresolved and is dropped; with
	// nothing resolved the result is the nil sentinel, not an empty slice.
	action := &domain.ActionDescriptor{
		ID:                 "a1",
		Name:               domain.NewInternedString("opaque"),
		ConstraintMetadata: []any{"unrecognized-entry"},
	}
	source, current := versionedSource(t, ctrl)
	current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

	cache := selection.NewCache(source, []ports.ConstraintProvider{selection.NewDefaultProvider()}, nil)

	got := cache.GetConstraints(newRequest(), action)
	assert.Nil(t, got)
}

func TestCache_ConcurrentFirstLookup(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		factory := &countingFactory{reusable: false}
		action := &domain.ActionDescriptor{
			ID:                 "a1",
			Name:               domain.NewInternedString("contended"),
			ConstraintMetadata: []any{&staticConstraint{accept: true}, factory},
		}
		source, current := versionedSource(t, ctrl)
		current.Store(&domain.ActionDescriptorCollection{Items: []*domain.ActionDescriptor{action}, Version: 1})

		cache := selection.NewCache(source, []ports.ConstraintProvider{selection.NewDefaultProvider()}, nil)

		const workers = 8
		results := make([][]domain.Constraint, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = cache.GetConstraints(newRequest(), action)
			}()
		}
		wg.Wait()

		// Every worker got a complete, correct result; losers of the
		// try-add race recomputed independently, nothing was torn.
		for i := range workers {
			require.Len(t, results[i], 2, "worker %d", i)
			for _, c := range results[i] {
				assert.True(t, c.Accept(newRequest()))
			}
		}
		assert.GreaterOrEqual(t, factory.creates.Load(), int64(1))
	})
}
