package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCostDesktopBuild(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{
		BuildType:      "desktop",
		DesktopBuildID: "DB-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "desktop", resp.BuildType)
	require.Len(t, resp.Components, 1)
	assert.Equal(t, "Desktop PC", resp.Components[0].Type)
	assert.Equal(t, "DB-1", resp.Components[0].SKU)
	assert.Equal(t, int64(12000000), resp.ComponentTotal)
	assert.Equal(t, int64(150000), resp.AssemblyFee)
	assert.Equal(t, int64(12150000), resp.TotalCost)
	assert.Equal(t, "VND", resp.Currency)
	assert.Equal(t, "3-5 ngày làm việc", resp.EstimatedTime)
	assert.Equal(t, "gaming", resp.UseCase)
	assert.Empty(t, resp.CompatibilityNotes)
}

func TestBuildCostDesktopBuildNotFound(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{
		BuildType:      "desktop",
		DesktopBuildID: "DB-404",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Components)
	assert.Equal(t, "Desktop build not found", resp.CompatibilityNotes)
	assert.Equal(t, int64(150000), resp.TotalCost)
}

func TestBuildCostCustom(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{
		BuildType:     "custom",
		BareboneSKU:   "BB-100",
		CPUSKU:        "CPU-100",
		RAMVariantSKU: "D4-8",
		RAMQuantity:   2,
		SSDVariantSKU: "N3-500",
	})
	require.NoError(t, err)

	require.Len(t, resp.Components, 4)
	assert.Equal(t, "Barebone", resp.Components[0].Type)
	assert.Equal(t, "CPU", resp.Components[1].Type)
	assert.Equal(t, "RAM", resp.Components[2].Type)
	assert.Equal(t, 2, resp.Components[2].Quantity)
	assert.Equal(t, int64(1300000), resp.Components[2].Price)
	assert.Equal(t, "SSD", resp.Components[3].Type)

	// 4590000 + 2290000 + 1300000 + 1790000
	assert.Equal(t, int64(9970000), resp.ComponentTotal)
	assert.Equal(t, int64(10120000), resp.TotalCost)
	assert.Empty(t, resp.CompatibilityNotes)
}

func TestBuildCostDefaultsToCustom(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{CPUSKU: "CPU-100"})
	require.NoError(t, err)

	assert.Equal(t, "custom", resp.BuildType)
	require.Len(t, resp.Components, 1)
	assert.Equal(t, int64(2290000), resp.ComponentTotal)
}

func TestBuildCostFlagsIncompatibleCPU(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{
		BareboneSKU: "BB-100",
		CPUSKU:      "CPU-201",
	})
	require.NoError(t, err)

	// Both components are still priced; the note flags the mismatch.
	require.Len(t, resp.Components, 2)
	assert.Contains(t, resp.CompatibilityNotes, "không nằm trong danh sách")
	assert.Contains(t, resp.CompatibilityNotes, "Intel Core i7-12700")
	assert.Contains(t, resp.CompatibilityNotes, "HP ProDesk 400 G7")
}

func TestBuildCostSkipsUnknownReferences(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.BuildCost(AssemblyRequest{
		BareboneSKU:   "BB-404",
		CPUSKU:        "CPU-404",
		RAMVariantSKU: "D4-404",
		SSDVariantSKU: "N3-404",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Components)
	assert.Equal(t, int64(0), resp.ComponentTotal)
	assert.Equal(t, int64(150000), resp.TotalCost)
}
