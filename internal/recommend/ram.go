package recommend

import (
	"fmt"
	"math"
	"strings"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
)

// RAMService answers memory recommendation requests against the catalog.
type RAMService struct {
	store *catalog.Store
}

// NewRAMService returns a RAM service reading from the given store.
func NewRAMService(store *catalog.Store) *RAMService {
	return &RAMService{store: store}
}

// flatten projects every RAM variant into a candidate carrying its
// line's tags plus the derived ddr4/ddr5 generation tag.
func (s *RAMService) flatten() []Candidate {
	var cands []Candidate
	for i := range s.store.RAMs() {
		line := &s.store.RAMs()[i]
		genTag := "ddr4"
		if strings.Contains(strings.ToLower(line.Name), "ddr5") {
			genTag = "ddr5"
		}
		for j := range line.Variants {
			v := &line.Variants[j]
			speed := line.VariantSpeed(v)
			cands = append(cands, Candidate{
				Product: model.Product{
					SKU:         v.SKU,
					Name:        fmt.Sprintf("%s - %dGB", line.Name, v.CapacityGB),
					Price:       v.Price,
					Description: fmt.Sprintf("%s - Tốc độ: %dMHz", line.Description, speed),
					Tags:        withTags(line.Tags, "ram", genTag),
					Warranty:    line.Warranty,
				},
				CapacityGB: v.CapacityGB,
				Modules:    v.Modules,
				SpeedMHz:   speed,
			})
		}
	}
	return cands
}

// Recommendations returns at most 5 RAM products matching the partial
// requirements. Filters run in a fixed order, absent parameters are
// no-ops. When nothing matches a capacity or quantity request, the
// substitution engine supplies alternatives instead of an empty result.
func (s *RAMService) Recommendations(req RAMRequirements) []model.Product {
	var budgetF, formFactorF, genF, capacityF, modulesF Filter
	if req.Budget > 0 {
		budgetF = func(c *Candidate) bool { return c.Price <= req.Budget }
	}
	if req.FormFactor != "" {
		formFactorF = func(c *Candidate) bool { return c.HasTag(req.FormFactor) }
	}
	if req.DDRGen > 0 {
		tag := fmt.Sprintf("ddr%d", req.DDRGen)
		genF = func(c *Candidate) bool { return c.HasTag(tag) }
	}
	if req.CapacityPerModuleGB > 0 {
		capacityF = func(c *Candidate) bool { return c.CapacityGB == req.CapacityPerModuleGB }
	}
	if req.Quantity > 0 {
		modulesF = func(c *Candidate) bool { return c.Modules == req.Quantity }
	}

	filtered := applyFilters(s.flatten(), budgetF, formFactorF, genF, capacityF, modulesF)

	if req.SpeedPriority == SpeedHighest {
		sortBySpeedDesc(filtered)
	} else {
		sortByPriceAsc(filtered)
	}

	if len(filtered) == 0 && (req.CapacityPerModuleGB > 0 || req.Quantity > 0) {
		return toProducts(s.Alternatives(req))
	}

	return toProducts(limit(filtered, 5))
}

// Alternatives synthesizes substitute suggestions around the target
// total capacity (capacity per module × module count). Every suggestion
// honors the requested form factor and is at least as fast as the
// nearest real match, so a substitute is never a downgrade in speed.
func (s *RAMService) Alternatives(req RAMRequirements) []Candidate {
	capacity := req.CapacityPerModuleGB
	if capacity == 0 {
		capacity = 8
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	target := capacity * quantity

	all := s.flatten()

	var formFactorF Filter
	if req.FormFactor != "" {
		formFactorF = func(c *Candidate) bool { return c.HasTag(req.FormFactor) }
	}
	var sameGenF, oppositeGenF Filter
	if req.DDRGen > 0 {
		sameTag := fmt.Sprintf("ddr%d", req.DDRGen)
		oppositeTag := fmt.Sprintf("ddr%d", 9-req.DDRGen)
		sameGenF = func(c *Candidate) bool { return c.HasTag(sameTag) }
		oppositeGenF = func(c *Candidate) bool { return c.HasTag(oppositeTag) }
	}

	// The nearest real match sets the speed floor and the price baseline
	// for the savings/upsell annotations.
	var baseSpeed int
	var basePriceTotal int64
	for i := range all {
		c := &all[i]
		if c.CapacityGB != capacity {
			continue
		}
		if formFactorF != nil && !formFactorF(c) {
			continue
		}
		if sameGenF != nil && !sameGenF(c) {
			continue
		}
		baseSpeed = c.SpeedMHz
		basePriceTotal = c.Price * int64(quantity)
		break
	}
	speedF := func(c *Candidate) bool { return c.SpeedMHz >= baseSpeed }

	compatible := applyFilters(all, formFactorF, sameGenF, speedF)
	opposite := applyFilters(all, formFactorF, oppositeGenF, speedF)

	var alts []Candidate

	// Same total capacity with a different module split.
	if c := cheapestWhere(compatible, func(c *Candidate) bool {
		return totalCapacity(c) == target && !(c.CapacityGB == capacity && modulesOf(c) == quantity)
	}); c != nil {
		alt := *c
		if modulesOf(c) > quantity {
			alt.Name = "(Hiệu năng tốt hơn) " + c.Name
			alt.Description = fmt.Sprintf("Chạy %d thanh thay vì %d cho cùng %dGB, tăng hiệu năng nhờ dual channel nhưng chiếm thêm khe cắm.", modulesOf(c), quantity, target)
			alt.Tags = withTags(c.Tags, "alternative", "upgrade-friendly")
		} else {
			alt.Name = "(Dễ nâng cấp) " + c.Name
			alt.Description = fmt.Sprintf("Dùng %d thanh thay vì %d cho cùng %dGB, chừa khe cắm trống để nâng cấp sau.", modulesOf(c), quantity, target)
			alt.Tags = withTags(c.Tags, "alternative", "replacement")
		}
		alts = append(alts, alt)
	}

	// Lower total capacity, budget-oriented.
	for _, frac := range []float64{0.75, 0.5} {
		lower := int(float64(target) * frac)
		if lower < 8 {
			continue
		}
		c := cheapestWhere(compatible, func(c *Candidate) bool { return totalCapacity(c) == lower })
		if c == nil {
			continue
		}
		alt := *c
		alt.Name = "(Rẻ hơn) " + c.Name
		desc := fmt.Sprintf("Giải pháp tiết kiệm: dùng %dGB thay vì %dGB nếu nhu cầu không quá cao.", lower, target)
		if basePriceTotal > 0 && alt.Price < basePriceTotal {
			saving := math.Round(float64(basePriceTotal-alt.Price) / float64(basePriceTotal) * 100)
			desc += fmt.Sprintf(" Tiết kiệm khoảng %.0f%%.", saving)
		}
		alt.Description = desc
		alt.Tags = withTags(c.Tags, "alternative", "lower-capacity", "budget")
		alts = append(alts, alt)
	}

	// Higher total capacity, future-proofing.
	for _, mult := range []float64{1.5, 2} {
		higher := int(float64(target) * mult)
		if higher > 128 {
			continue
		}
		c := cheapestWhere(compatible, func(c *Candidate) bool { return totalCapacity(c) == higher })
		if c == nil {
			continue
		}
		alt := *c
		alt.Name = "(Nâng cấp) " + c.Name
		desc := fmt.Sprintf("Giải pháp cho tương lai: %dGB cho đa nhiệm thoải mái hơn.", higher)
		if basePriceTotal > 0 && alt.Price > basePriceTotal {
			increase := math.Round(float64(alt.Price-basePriceTotal) / float64(basePriceTotal) * 100)
			desc += fmt.Sprintf(" Chi phí cao hơn khoảng %.0f%%.", increase)
		}
		alt.Description = desc
		alt.Tags = withTags(c.Tags, "alternative", "higher-capacity", "future-proofing")
		alts = append(alts, alt)
	}

	// Opposite DDR generation at the same total capacity.
	if req.DDRGen > 0 {
		if c := cheapestWhere(opposite, func(c *Candidate) bool { return totalCapacity(c) == target }); c != nil {
			alt := *c
			if req.DDRGen == 5 {
				alt.Name = "(Tiết kiệm) " + c.Name
				alt.Description = fmt.Sprintf("Chuyển sang DDR4 cùng %dGB để giảm chi phí nếu nền tảng hỗ trợ.", target)
			} else {
				alt.Name = "(Hiệu năng cao hơn) " + c.Name
				alt.Description = fmt.Sprintf("Nâng lên DDR5 cùng %dGB cho băng thông cao hơn.", target)
			}
			alt.Tags = withTags(c.Tags, "alternative", "ddr-alternative")
			alts = append(alts, alt)
		}
	}

	alts = dedupeBySKU(alts)
	sortByPriceAsc(alts)
	return limit(alts, 5)
}

func modulesOf(c *Candidate) int {
	if c.Modules == 0 {
		return 1
	}
	return c.Modules
}

func totalCapacity(c *Candidate) int {
	return c.CapacityGB * modulesOf(c)
}

func cheapestWhere(cands []Candidate, pred func(*Candidate) bool) *Candidate {
	var best *Candidate
	for i := range cands {
		if !pred(&cands[i]) {
			continue
		}
		if best == nil || cands[i].Price < best.Price {
			best = &cands[i]
		}
	}
	return best
}
