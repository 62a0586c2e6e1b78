package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/config"
)

func TestSource_EmptyUntilLoaded(t *testing.T) {
	source := config.NewSource(nil)

	snapshot := source.Current()
	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.Version)
	assert.Empty(t, snapshot.Items)
}

func TestSource_LoadPublishesNewVersion(t *testing.T) {
	source := config.NewSource(nil)
	path := writeTable(t, sampleTable)

	require.NoError(t, source.Load(path))

	snapshot := source.Current()
	assert.Equal(t, 1, snapshot.Version)
	assert.Len(t, snapshot.Items, 2)
}

func TestSource_ReloadBumpsVersionEvenUnchanged(t *testing.T) {
	source := config.NewSource(nil)
	path := writeTable(t, sampleTable)

	require.NoError(t, source.Load(path))
	before := source.Current()

	require.NoError(t, source.Reload())
	after := source.Current()

	assert.Equal(t, before.Version+1, after.Version)
	assert.NotSame(t, before, after)
}

func TestSource_ReloadWithoutLoadFails(t *testing.T) {
	source := config.NewSource(nil)

	err := source.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route table loaded")
}

func TestSource_FailedLoadKeepsSnapshot(t *testing.T) {
	source := config.NewSource(nil)
	path := writeTable(t, sampleTable)
	require.NoError(t, source.Load(path))
	before := source.Current()

	badPath := writeTable(t, "actions: [")
	require.Error(t, source.Load(badPath))

	// The last good snapshot stays live.
	assert.Same(t, before, source.Current())
}
