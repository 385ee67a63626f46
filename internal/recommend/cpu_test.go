package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-service/internal/model"
)

func cpuSKUs(cpus []model.CPU) []string {
	out := make([]string, len(cpus))
	for i, c := range cpus {
		out[i] = c.SKU
	}
	return out
}

func TestCPUDetectRequirements(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	tests := []struct {
		name string
		text string
		want CPURequirements
	}{
		{
			name: "socket with prefix",
			text: "cpu socket lga1200 khoảng 5tr",
			want: CPURequirements{Socket: "lga1200", Budget: 5000000},
		},
		{
			name: "socket with space",
			text: "cần cpu lga 1700",
			want: CPURequirements{Socket: "lga1700"},
		},
		{
			name: "linked system model",
			text: "cpu cho hp prodesk 400 g7",
			want: CPURequirements{LinkedSystemModel: "hp prodesk 400 g7"},
		},
		{
			name: "nothing detected",
			text: "cpu nào tốt",
			want: CPURequirements{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.DetectRequirements(tt.text))
		})
	}
}

func TestCPURecommendSocketFilter(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	results := svc.Recommend(CPURequirements{Socket: "LGA1200"})
	assert.Equal(t, []string{"CPU-100", "CPU-101"}, cpuSKUs(results))
}

func TestCPURecommendIntelOnly(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	results := svc.Recommend(CPURequirements{})
	require.NotEmpty(t, results)
	for _, cpu := range results {
		assert.True(t, cpu.HasTag("intel"), cpu.SKU)
	}
}

func TestCPURecommendPrefersLinkedModel(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	results := svc.Recommend(CPURequirements{LinkedSystemModel: "hp prodesk 400 g7"})
	assert.Equal(t, []string{"CPU-100"}, cpuSKUs(results))

	// Unknown model keeps the full candidate set instead of dropping to
	// nothing.
	results = svc.Recommend(CPURequirements{LinkedSystemModel: "no such system"})
	assert.Equal(t, []string{"CPU-100", "CPU-101", "CPU-201"}, cpuSKUs(results))
}

func TestCPURecommendBudget(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	results := svc.Recommend(CPURequirements{Budget: 3000000})
	assert.Equal(t, []string{"CPU-100"}, cpuSKUs(results))
}

func TestCPUFindBySocket(t *testing.T) {
	svc := NewCPUService(newTestStore(t))

	results := svc.FindBySocket("LGA1700")
	assert.Equal(t, []string{"CPU-201"}, cpuSKUs(results))

	assert.Empty(t, svc.FindBySocket("am5"))
}
