package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// RAMRequirements is the partial requirement set extracted from a free
// text query. Zero values mean "not detected".
type RAMRequirements struct {
	FormFactor          string `json:"formFactor,omitempty"`
	DDRGen              int    `json:"ddrGeneration,omitempty"`
	Quantity            int    `json:"quantity,omitempty"`
	CapacityPerModuleGB int    `json:"capacityPerModuleGB,omitempty"`
	UseCase             string `json:"useCase,omitempty"`
	SpeedPriority       string `json:"speedPriority,omitempty"`
	Budget              int64  `json:"budget,omitempty"`
}

// Form factors and speed priorities used across detection and filtering.
const (
	FormFactorDesktop = "desktop"
	FormFactorLaptop  = "laptop"

	SpeedHighest = "highest"
	SpeedHigh    = "high"
	SpeedMedium  = "medium"

	UseCaseGaming   = "gaming"
	UseCaseOffice   = "office"
	UseCaseCreative = "creative"
)

// detectionRule is one (predicate, effect) step of the requirement
// detection pass. Rules run in table order over the lowercased query,
// exactly once each.
type detectionRule struct {
	name  string
	apply func(q string, r *RAMRequirements)
}

var (
	budgetPatterns = []struct {
		re         *regexp.Regexp
		multiplier int64
	}{
		{regexp.MustCompile(`(\d+)\s*tr`), 1000000},
		{regexp.MustCompile(`(\d+)\s*k`), 1000},
	}

	capacityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*gb`),
		regexp.MustCompile(`ram\s+(\d+)`),
	}
)

func containsAny(q string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}

// ramDetectionRules is evaluated top to bottom; order is part of the
// contract (budget digits must be claimed before capacity digits, the
// dual-8gb override runs after the general quantity/capacity rules).
var ramDetectionRules = []detectionRule{
	{
		name: "budget",
		apply: func(q string, r *RAMRequirements) {
			for _, p := range budgetPatterns {
				if m := p.re.FindStringSubmatch(q); m != nil {
					amount, _ := strconv.ParseInt(m[1], 10, 64)
					r.Budget = amount * p.multiplier
					return
				}
			}
		},
	},
	{
		name: "form-factor",
		apply: func(q string, r *RAMRequirements) {
			if strings.Contains(q, "laptop") {
				r.FormFactor = FormFactorLaptop
			} else if containsAny(q, "desktop", "pc", "main") {
				r.FormFactor = FormFactorDesktop
			}
		},
	},
	{
		name: "ddr-generation",
		apply: func(q string, r *RAMRequirements) {
			if strings.Contains(q, "ddr5") {
				r.DDRGen = 5
			} else if strings.Contains(q, "ddr4") {
				r.DDRGen = 4
			}
		},
	},
	{
		name: "speed-priority",
		apply: func(q string, r *RAMRequirements) {
			switch {
			case containsAny(q, "bus nhanh nhất", "tốc độ cao nhất", "nhanh nhất", "fastest", "highest speed", "max speed"):
				r.SpeedPriority = SpeedHighest
			case containsAny(q, "tốc độ cao", "nhanh", "high speed", "gaming", "chơi game"):
				r.SpeedPriority = SpeedHigh
			case containsAny(q, "văn phòng", "office", "work"):
				r.SpeedPriority = SpeedMedium
			}
		},
	},
	{
		name: "quantity",
		apply: func(q string, r *RAMRequirements) {
			if containsAny(q, "hai thanh", "2 thanh", "hai cái", "2 cái") {
				r.Quantity = 2
			} else if containsAny(q, "một thanh", "1 thanh", "một cái", "1 cái") {
				r.Quantity = 1
			}
		},
	},
	{
		name: "capacity-per-module",
		apply: func(q string, r *RAMRequirements) {
			for _, re := range capacityPatterns {
				if m := re.FindStringSubmatch(q); m != nil {
					r.CapacityPerModuleGB, _ = strconv.Atoi(m[1])
					return
				}
			}
		},
	},
	{
		// Known quirk kept from production: the literal pair
		// "2 thanh" + "8gb" overrides whatever the general rules
		// detected. Do not generalize without product sign-off.
		name: "dual-8gb-override",
		apply: func(q string, r *RAMRequirements) {
			if strings.Contains(q, "2 thanh") && strings.Contains(q, "8gb") {
				r.Quantity = 2
				r.CapacityPerModuleGB = 8
			}
		},
	},
	{
		name: "use-case",
		apply: func(q string, r *RAMRequirements) {
			switch {
			case containsAny(q, "gaming", "game", "chơi game"):
				r.UseCase = UseCaseGaming
			case containsAny(q, "văn phòng", "office", "work", "làm việc"):
				r.UseCase = UseCaseOffice
			case containsAny(q, "sáng tạo", "design", "creative", "đồ họa"):
				r.UseCase = UseCaseCreative
			}
		},
	},
}

// DetectRequirements extracts RAM requirements from free text in a
// single deterministic pass over the rule table.
func (s *RAMService) DetectRequirements(text string) RAMRequirements {
	q := strings.ToLower(text)
	var req RAMRequirements
	for _, rule := range ramDetectionRules {
		rule.apply(q, &req)
	}
	return req
}
