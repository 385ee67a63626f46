package recommend

import (
	"sort"

	"sales-service/internal/model"
)

// Candidate is a purchasable unit projected out of the catalog for
// recommendation: a variant flattened together with its parent line's
// tags and specs, or a plain product. All category services share this
// projection and the filter-chain/rank helpers below.
type Candidate struct {
	model.Product
	CapacityGB    int
	Modules       int
	SpeedMHz      int
	ReadSpeedMBs  int
	WriteSpeedMBs int
}

// Filter narrows a candidate set. A nil Filter is a no-op, which is how
// absent request parameters are expressed.
type Filter func(*Candidate) bool

// applyFilters runs the filters in order, each narrowing the set.
func applyFilters(cands []Candidate, filters ...Filter) []Candidate {
	out := cands
	for _, f := range filters {
		if f == nil {
			continue
		}
		kept := out[:0:0]
		for i := range out {
			if f(&out[i]) {
				kept = append(kept, out[i])
			}
		}
		out = kept
	}
	return out
}

func sortByPriceAsc(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Price < cands[j].Price
	})
}

func sortBySpeedDesc(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].SpeedMHz > cands[j].SpeedMHz
	})
}

// dedupeBySKU keeps the first candidate seen for each SKU.
func dedupeBySKU(cands []Candidate) []Candidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0:0]
	for i := range cands {
		if !seen[cands[i].SKU] {
			seen[cands[i].SKU] = true
			out = append(out, cands[i])
		}
	}
	return out
}

func limit(cands []Candidate, n int) []Candidate {
	if len(cands) > n {
		return cands[:n]
	}
	return cands
}

func toProducts(cands []Candidate) []model.Product {
	products := make([]model.Product, len(cands))
	for i := range cands {
		products[i] = cands[i].Product
	}
	return products
}

func withTags(tags []string, extra ...string) []string {
	out := make([]string, 0, len(tags)+len(extra))
	out = append(out, tags...)
	return append(out, extra...)
}
