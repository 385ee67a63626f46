package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
)

func testDoc() *model.Document {
	doc := &model.Document{}
	doc.Products.Barebones = []model.Barebone{
		{
			Product: model.Product{
				SKU:   "BB-100",
				Name:  "HP ProDesk 400 G7",
				Price: 4590000,
				Tags:  []string{"barebone", "desktop", "intel"},
			},
			Compatibility: model.Compatibility{
				CPU: []string{"CPU-100", "CPU-101"},
				RAM: &model.RAMCompatibility{Type: "DDR4", MaxCapacityGB: 64},
				SSD: &model.SSDCompatibility{Interface: "nvme"},
			},
		},
		{
			Product: model.Product{
				SKU:   "BB-200",
				Name:  "MSI Pro DP180",
				Price: 6190000,
				Tags:  []string{"barebone", "desktop", "intel"},
			},
			Compatibility: model.Compatibility{
				CPU: []string{"CPU-201"},
				RAM: &model.RAMCompatibility{Type: "DDR5", MaxCapacityGB: 128},
				SSD: &model.SSDCompatibility{Interface: "nvme"},
			},
		},
	}
	doc.Products.CPUs = []model.CPU{
		{
			Product: model.Product{
				SKU:   "CPU-100",
				Name:  "Intel Core i3-10105",
				Price: 2290000,
				Tags:  []string{"cpu", "intel"},
			},
			Socket:         "lga1200",
			RecommendedFor: []string{"hp prodesk 400 g7"},
		},
		{
			Product: model.Product{
				SKU:   "CPU-101",
				Name:  "Intel Core i5-10400",
				Price: 3590000,
				Tags:  []string{"cpu", "intel"},
			},
			Socket: "lga1200",
		},
		{
			Product: model.Product{
				SKU:   "CPU-201",
				Name:  "Intel Core i7-12700",
				Price: 8290000,
				Tags:  []string{"cpu", "intel"},
			},
			Socket:         "lga1700",
			RecommendedFor: []string{"msi pro dp180"},
		},
		{
			Product: model.Product{
				SKU:   "CPU-X",
				Name:  "AMD Ryzen 5 5600G",
				Price: 3490000,
				Tags:  []string{"cpu", "amd"},
			},
			Socket: "am4",
		},
	}
	doc.Products.RAMs = []model.ProductWithVariants{
		{
			Product: model.Product{
				SKU:      "RAM-D4",
				Name:     "Kingston Fury Beast DDR4 3200MHz",
				Price:    650000,
				Tags:     []string{"desktop", "kingston"},
				Warranty: "36 tháng",
			},
			SpeedMHz: 3200,
			Variants: []model.Variant{
				{SKU: "D4-8", CapacityGB: 8, Modules: 1, Price: 650000},
				{SKU: "D4-16", CapacityGB: 16, Modules: 1, Price: 1150000},
				{SKU: "D4-8X2", CapacityGB: 8, Modules: 2, Price: 1250000},
				{SKU: "D4-32", CapacityGB: 32, Modules: 1, Price: 2250000},
				{SKU: "D4-16X2", CapacityGB: 16, Modules: 2, Price: 2290000},
			},
		},
		{
			Product: model.Product{
				SKU:      "RAM-D5",
				Name:     "Corsair Vengeance DDR5 5600MHz",
				Price:    1850000,
				Tags:     []string{"desktop", "corsair"},
				Warranty: "36 tháng",
			},
			SpeedMHz: 5600,
			Variants: []model.Variant{
				{SKU: "D5-16", CapacityGB: 16, Modules: 1, Price: 1850000},
				{SKU: "D5-16X2", CapacityGB: 16, Modules: 2, Price: 3600000},
				{SKU: "D5-32", CapacityGB: 32, Modules: 1, Price: 3400000},
			},
		},
		{
			Product: model.Product{
				SKU:      "RAM-L4",
				Name:     "Kingston Fury Impact DDR4 3200MHz SODIMM",
				Price:    700000,
				Tags:     []string{"laptop", "kingston"},
				Warranty: "36 tháng",
			},
			SpeedMHz: 3200,
			Variants: []model.Variant{
				{SKU: "L4-8", CapacityGB: 8, Modules: 1, Price: 700000},
				{SKU: "L4-16", CapacityGB: 16, Modules: 1, Price: 1200000},
			},
		},
	}
	doc.Products.SSDs = []model.ProductWithVariants{
		{
			Product: model.Product{
				SKU:      "SSD-S",
				Name:     "Samsung 870 EVO SATA",
				Price:    1090000,
				Tags:     []string{"sata", "samsung"},
				Warranty: "60 tháng",
			},
			Variants: []model.Variant{
				{SKU: "S-250", CapacityGB: 250, Price: 1090000, ReadSpeedMBs: 560, WriteSpeedMBs: 530},
				{SKU: "S-500", CapacityGB: 500, Price: 1590000, ReadSpeedMBs: 560, WriteSpeedMBs: 530},
				{SKU: "S-1000", CapacityGB: 1000, Price: 2690000, ReadSpeedMBs: 560, WriteSpeedMBs: 530},
			},
		},
		{
			Product: model.Product{
				SKU:      "SSD-N3",
				Name:     "Samsung 980 NVMe PCIe 3.0",
				Price:    1790000,
				Tags:     []string{"nvme", "pcie3", "samsung"},
				Warranty: "60 tháng",
			},
			Variants: []model.Variant{
				{SKU: "N3-500", CapacityGB: 500, Price: 1790000, ReadSpeedMBs: 3100, WriteSpeedMBs: 2600},
				{SKU: "N3-1000", CapacityGB: 1000, Price: 3090000, ReadSpeedMBs: 3500, WriteSpeedMBs: 3000},
			},
		},
		{
			Product: model.Product{
				SKU:      "SSD-N4",
				Name:     "Samsung 990 Pro NVMe PCIe 4.0",
				Price:    4590000,
				Tags:     []string{"nvme", "pcie4", "samsung"},
				Warranty: "60 tháng",
			},
			Variants: []model.Variant{
				{SKU: "N4-1000", CapacityGB: 1000, Price: 4590000, ReadSpeedMBs: 7450, WriteSpeedMBs: 6900},
			},
		},
	}
	doc.Products.DesktopBuilds = []model.DesktopBuild{
		{
			SKU:  "DB-1",
			Name: "Bộ máy gaming ASUS i5",
			Components: model.BuildComponents{
				BareboneSKU:   "BB-100",
				CPUSKU:        "CPU-100",
				RAMVariantSKU: "D4-8X2",
				SSDVariantSKU: "N3-500",
			},
			TotalPrice: 12000000,
			UseCase:    []string{"gaming"},
		},
	}
	return doc
}

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(testDoc())
	require.NoError(t, err)
	return store
}

func productSKUs(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.SKU
	}
	return out
}
