package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/engine/selection"
)

func TestDefaultProvider_ResolvesConstraintMetadata(t *testing.T) {
	constraint := &staticConstraint{accept: true}
	ctx := &domain.ConstraintProviderContext{
		Request: newRequest(),
		Results: []*domain.ConstraintItem{
			{Metadata: constraint},
		},
	}

	p := selection.NewDefaultProvider()
	p.OnProvidersExecuting(ctx)

	require.NotNil(t, ctx.Results[0].Constraint)
	assert.Same(t, constraint, ctx.Results[0].Constraint)
	assert.True(t, ctx.Results[0].IsReusable)
}

func TestDefaultProvider_ResolvesFactoryMetadata(t *testing.T) {
	factory := &countingFactory{reusable: false}
	ctx := &domain.ConstraintProviderContext{
		Request: newRequest(),
		Results: []*domain.ConstraintItem{
			{Metadata: factory},
		},
	}

	p := selection.NewDefaultProvider()
	p.OnProvidersExecuting(ctx)

	require.NotNil(t, ctx.Results[0].Constraint)
	assert.False(t, ctx.Results[0].IsReusable)
	assert.Equal(t, int64(1), factory.creates.Load())
}

func TestDefaultProvider_LeavesResolvedItemsAlone(t *testing.T) {
	already := &staticConstraint{accept: false}
	factory := &countingFactory{reusable: true}
	ctx := &domain.ConstraintProviderContext{
		Request: newRequest(),
		Results: []*domain.ConstraintItem{
			{Metadata: factory, Constraint: already, IsReusable: true},
		},
	}

	p := selection.NewDefaultProvider()
	p.OnProvidersExecuting(ctx)

	// An earlier provider resolved this item; the default must not
	// overwrite it or touch the factory.
	assert.Same(t, already, ctx.Results[0].Constraint)
	assert.Equal(t, int64(0), factory.creates.Load())
}

func TestDefaultProvider_IgnoresOpaqueMetadata(t *testing.T) {
	ctx := &domain.ConstraintProviderContext{
		Request: newRequest(),
		Results: []*domain.ConstraintItem{
			{Metadata: "route-annotation"},
			{Metadata: 42},
		},
	}

	p := selection.NewDefaultProvider()
	p.OnProvidersExecuting(ctx)

	for _, item := range ctx.Results {
		assert.Nil(t, item.Constraint)
	}
}
