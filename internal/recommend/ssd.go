package recommend

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
)

// Storage interface families. SATA and NVMe are electrically different
// and are never substituted for one another.
const (
	FormatSATA = "sata"
	FormatNVMe = "nvme"
)

// SSDRequirements is the partial requirement set for storage requests.
type SSDRequirements struct {
	CapacityGB int    `json:"capacityGB,omitempty"`
	Format     string `json:"format,omitempty"`
	UseCase    string `json:"useCase,omitempty"`
	Budget     int64  `json:"budget,omitempty"`
}

// SSDService answers storage recommendation requests against the catalog.
type SSDService struct {
	store *catalog.Store
}

// NewSSDService returns an SSD service reading from the given store.
func NewSSDService(store *catalog.Store) *SSDService {
	return &SSDService{store: store}
}

var ssdCapacityPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(tb|gb)`)

// DetectRequirements extracts capacity (TB converted to GB), interface
// format and budget from free text.
func (s *SSDService) DetectRequirements(text string) SSDRequirements {
	q := strings.ToLower(text)
	var req SSDRequirements

	if m := ssdCapacityPattern.FindStringSubmatch(q); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		if m[2] == "tb" {
			req.CapacityGB = int(math.Round(amount * 1024))
		} else {
			req.CapacityGB = int(math.Round(amount))
		}
	}

	if containsAny(q, "nvme", "m.2", "m2") {
		req.Format = FormatNVMe
	} else if strings.Contains(q, "sata") {
		req.Format = FormatSATA
	}

	for _, p := range budgetPatterns {
		if m := p.re.FindStringSubmatch(q); m != nil {
			amount, _ := strconv.ParseInt(m[1], 10, 64)
			req.Budget = amount * p.multiplier
			break
		}
	}

	return req
}

func matchesFormat(p *model.Product, format string) bool {
	switch format {
	case FormatNVMe:
		return p.HasTag("nvme") || p.HasTag("pcie3") || p.HasTag("pcie4")
	case FormatSATA:
		return p.HasTag("sata")
	}
	return true
}

// Recommend returns at most 5 SSD variants. The interface filter is
// strict in both directions; use case only narrows within the allowed
// interface family. Results rank by closeness to the requested capacity,
// then by ascending price.
func (s *SSDService) Recommend(req SSDRequirements) []model.Product {
	var lines []*model.ProductWithVariants
	for i := range s.store.SSDs() {
		line := &s.store.SSDs()[i]
		if req.Format != "" && !matchesFormat(&line.Product, req.Format) {
			continue
		}
		if !matchesUseCase(&line.Product, req.UseCase) {
			continue
		}
		lines = append(lines, line)
	}

	var cands []Candidate
	for _, line := range lines {
		for j := range line.Variants {
			v := &line.Variants[j]
			if req.CapacityGB > 0 && v.CapacityGB < req.CapacityGB {
				continue
			}
			if req.Budget > 0 && v.Price > req.Budget {
				continue
			}
			cands = append(cands, Candidate{
				Product: model.Product{
					SKU:         v.SKU,
					Name:        fmt.Sprintf("%s - %dGB", line.Name, v.CapacityGB),
					Price:       v.Price,
					Description: fmt.Sprintf("Dung lượng: %dGB, Tốc độ đọc: %dMB/s, Tốc độ ghi: %dMB/s", v.CapacityGB, v.ReadSpeedMBs, v.WriteSpeedMBs),
					Tags:        withTags(line.Tags, "ssd"),
					Warranty:    line.Warranty,
				},
				CapacityGB:    v.CapacityGB,
				ReadSpeedMBs:  v.ReadSpeedMBs,
				WriteSpeedMBs: v.WriteSpeedMBs,
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if req.CapacityGB > 0 {
			di := abs(cands[i].CapacityGB - req.CapacityGB)
			dj := abs(cands[j].CapacityGB - req.CapacityGB)
			if di != dj {
				return di < dj
			}
		}
		return cands[i].Price < cands[j].Price
	})

	return toProducts(limit(cands, 5))
}

func matchesUseCase(p *model.Product, useCase string) bool {
	switch useCase {
	case "":
		return true
	case UseCaseGaming:
		return p.HasTag("pcie4") || p.HasTag("nvme")
	case UseCaseCreative:
		return p.HasTag("nvme") || p.HasTag("pcie3")
	default:
		// office, budget and anything unrecognized prefer the
		// entry-level interfaces.
		return p.HasTag("sata") || p.HasTag("pcie3")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
