package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigurationGroupsItems(t *testing.T) {
	items := []HardwareItem{
		{ID: "1", Category: CategoryCPU, Price: 2899},
		{ID: "2", Category: CategoryRAM, Price: 349},
		{ID: "3", Category: CategoryRAM, Price: 399},
		{ID: "4", Category: CategoryStorage, Price: 799},
		{ID: "5", Category: CategoryPSU, Price: 899},
	}

	cfg, err := NewConfiguration(items)

	require.NoError(t, err)
	require.NotNil(t, cfg.CPU)
	assert.Equal(t, "1", cfg.CPU.ID)
	assert.Nil(t, cfg.GPU)
	assert.Nil(t, cfg.Motherboard)

	// Multi-slot categories keep insertion order.
	require.Len(t, cfg.RAM, 2)
	assert.Equal(t, "2", cfg.RAM[0].ID)
	assert.Equal(t, "3", cfg.RAM[1].ID)
	require.Len(t, cfg.Storage, 1)

	assert.Equal(t, 5345.0, cfg.TotalPrice())
	assert.Len(t, cfg.Items(), 5)
}

func TestNewConfigurationKeepsFirstSingleSlotItem(t *testing.T) {
	cfg, err := NewConfiguration([]HardwareItem{
		{ID: "first", Category: CategoryGPU},
		{ID: "second", Category: CategoryGPU},
	})

	require.NoError(t, err)
	require.NotNil(t, cfg.GPU)
	assert.Equal(t, "first", cfg.GPU.ID)
}

func TestNewConfigurationRejectsUnknownCategory(t *testing.T) {
	_, err := NewConfiguration([]HardwareItem{
		{ID: "1", Category: "soundcard"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "soundcard")
}

func TestNewConfigurationEmpty(t *testing.T) {
	cfg, err := NewConfiguration(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Items())
	assert.Zero(t, cfg.TotalPrice())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCategory("CPU")
	assert.Error(t, err, "categories are case sensitive")
}
