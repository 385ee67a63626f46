package recommend

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
)

// CPURequirements is the partial requirement set for processor requests.
type CPURequirements struct {
	Socket            string `json:"socket,omitempty"`
	LinkedSystemModel string `json:"linkedSystemModel,omitempty"`
	Budget            int64  `json:"budget,omitempty"`
}

// CPUService answers processor recommendation requests against the catalog.
type CPUService struct {
	store *catalog.Store
}

// NewCPUService returns a CPU service reading from the given store.
func NewCPUService(store *catalog.Store) *CPUService {
	return &CPUService{store: store}
}

var (
	socketPattern      = regexp.MustCompile(`(?:socket\s*)?lga\s*(\d{3,4})`)
	linkedModelPattern = regexp.MustCompile(`(?:for|cho|dành cho)\s+([a-z0-9\- ]+)`)
)

// DetectRequirements extracts a socket and an optional linked system
// model ("for asus tuf b560", "cho hp prodesk") from free text.
func (s *CPUService) DetectRequirements(text string) CPURequirements {
	q := strings.ToLower(text)
	var req CPURequirements

	if m := socketPattern.FindStringSubmatch(q); m != nil {
		req.Socket = "lga" + m[1]
	}
	if m := linkedModelPattern.FindStringSubmatch(q); m != nil {
		req.LinkedSystemModel = strings.TrimSpace(m[1])
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

// Recommend returns at most 5 CPUs, Intel-only per the catalog's range,
// matched by socket when given. CPUs recommended for the linked system
// model are preferred when any exist; otherwise the full candidate set
// is kept. Results are sorted by ascending price.
func (s *CPUService) Recommend(req CPURequirements) []model.CPU {
	var candidates []model.CPU
	for _, cpu := range s.store.CPUs() {
		if !cpu.HasTag("intel") {
			continue
		}
		if req.Socket != "" && !strings.EqualFold(cpu.Socket, req.Socket) {
			continue
		}
		candidates = append(candidates, cpu)
	}

	if req.LinkedSystemModel != "" {
		sysModel := strings.ToLower(req.LinkedSystemModel)
		var preferred []model.CPU
		for _, cpu := range candidates {
			if recommendedFor(&cpu, sysModel) {
				preferred = append(preferred, cpu)
			}
		}
		if len(preferred) > 0 {
			candidates = preferred
		}
	}

	if req.Budget > 0 {
		kept := candidates[:0:0]
		for _, cpu := range candidates {
			if cpu.Price <= req.Budget {
				kept = append(kept, cpu)
			}
		}
		candidates = kept
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})

	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	return candidates
}

// FindBySocket returns every CPU with the given socket.
func (s *CPUService) FindBySocket(socket string) []model.CPU {
	var out []model.CPU
	for _, cpu := range s.store.CPUs() {
		if strings.EqualFold(cpu.Socket, socket) {
			out = append(out, cpu)
		}
	}
	return out
}

func recommendedFor(cpu *model.CPU, systemModel string) bool {
	for _, t := range cpu.Tags {
		if strings.Contains(strings.ToLower(t), systemModel) {
			return true
		}
	}
	for _, r := range cpu.RecommendedFor {
		if strings.Contains(strings.ToLower(r), systemModel) {
			return true
		}
	}
	return false
}
