package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSDDetectRequirements(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	tests := []struct {
		name string
		text string
		want SSDRequirements
	}{
		{
			name: "terabytes convert to gigabytes",
			text: "ssd 1tb nvme",
			want: SSDRequirements{CapacityGB: 1024, Format: FormatNVMe},
		},
		{
			name: "fractional terabytes",
			text: "ổ cứng 0.5tb m.2",
			want: SSDRequirements{CapacityGB: 512, Format: FormatNVMe},
		},
		{
			name: "sata with budget",
			text: "ssd 500gb sata khoảng 2tr",
			want: SSDRequirements{CapacityGB: 500, Format: FormatSATA, Budget: 2000000},
		},
		{
			name: "no signals",
			text: "ổ cứng cho máy",
			want: SSDRequirements{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.DetectRequirements(tt.text))
		})
	}
}

func TestSSDFormatNeverSubstituted(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{Format: FormatSATA})
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Contains(t, r.Tags, "sata", r.SKU)
	}

	results = svc.Recommend(SSDRequirements{Format: FormatNVMe})
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotContains(t, r.Tags, "sata", r.SKU)
	}
}

func TestSSDCapacityCloseness(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{CapacityGB: 500})

	// Variants below the requested capacity are excluded; nearest
	// capacity ranks first, ties break on price.
	assert.Equal(t, []string{"S-500", "N3-500", "S-1000", "N3-1000", "N4-1000"}, productSKUs(results))
}

func TestSSDGamingUseCase(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{UseCase: UseCaseGaming})
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Contains(t, r.Tags, "nvme", r.SKU)
	}
}

func TestSSDOfficeUseCase(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{UseCase: UseCaseOffice})
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotContains(t, r.Tags, "pcie4", r.SKU)
	}
}

func TestSSDBudgetCeiling(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{Budget: 1600000})
	assert.Equal(t, []string{"S-250", "S-500"}, productSKUs(results))
}

func TestSSDResultShape(t *testing.T) {
	svc := NewSSDService(newTestStore(t))

	results := svc.Recommend(SSDRequirements{Format: FormatNVMe, CapacityGB: 1000})
	require.NotEmpty(t, results)
	assert.Equal(t, "N3-1000", results[0].SKU)
	assert.Equal(t, "Samsung 980 NVMe PCIe 3.0 - 1000GB", results[0].Name)
	assert.Contains(t, results[0].Description, "3500MB/s")
	assert.Contains(t, results[0].Tags, "ssd")
}
