package recommend

import (
	"strings"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
)

// BareboneService answers compatibility questions about chassis bundles.
type BareboneService struct {
	store *catalog.Store
}

// NewBareboneService returns a barebone service reading from the given store.
func NewBareboneService(store *catalog.Store) *BareboneService {
	return &BareboneService{store: store}
}

// CompatibleWithCPU returns every barebone listing the CPU SKU as
// compatible, via the compatibility index. Unknown SKUs yield an empty
// result rather than an error.
func (s *BareboneService) CompatibleWithCPU(cpuSKU string) []model.Barebone {
	refs := s.store.CompatibleBarebones(cpuSKU)
	out := make([]model.Barebone, 0, len(refs))
	for _, b := range refs {
		out = append(out, *b)
	}
	return out
}

// SupportingRAMType returns every barebone whose RAM constraint names
// the given memory type (e.g. "DDR4", "DDR5").
func (s *BareboneService) SupportingRAMType(ramType string) []model.Barebone {
	var out []model.Barebone
	for _, b := range s.store.Barebones() {
		if b.Compatibility.RAM != nil && strings.EqualFold(b.Compatibility.RAM.Type, ramType) {
			out = append(out, b)
		}
	}
	return out
}
