package engine

import (
	"fmt"
	"strings"

	"sales-service/internal/model"
)

// AssemblyRequest asks for the cost of assembling either a pre-priced
// desktop build or a custom combination of components. Component fields
// are optional; quantities default to 1.
type AssemblyRequest struct {
	BuildType      string `json:"buildType"`
	DesktopBuildID string `json:"desktopBuildId,omitempty"`
	BareboneSKU    string `json:"bareboneSku,omitempty"`
	CPUSKU         string `json:"cpuSku,omitempty"`
	RAMVariantSKU  string `json:"ramVariantSku,omitempty"`
	SSDVariantSKU  string `json:"ssdVariantSku,omitempty"`
	RAMQuantity    int    `json:"ramQuantity,omitempty"`
	SSDQuantity    int    `json:"ssdQuantity,omitempty"`
}

// AssemblyComponent is one resolved line of an assembly costing.
type AssemblyComponent struct {
	Type     string `json:"type"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// AssemblyResponse is the priced assembly plan. The assembly fee is a
// policy constant, not computed here.
type AssemblyResponse struct {
	BuildType          string              `json:"buildType"`
	Components         []AssemblyComponent `json:"components"`
	ComponentTotal     int64               `json:"componentTotal"`
	AssemblyFee        int64               `json:"assemblyFee"`
	TotalCost          int64               `json:"totalCost"`
	Currency           string              `json:"currency"`
	EstimatedTime      string              `json:"estimatedTime"`
	CompatibilityNotes string              `json:"compatibilityNotes"`
	UseCase            string              `json:"useCase,omitempty"`
}

// BuildCost resolves the requested components and sums their prices.
// Unresolvable references are skipped; a note records when the chosen
// CPU is not listed by the chosen barebone.
func (e *Engine) BuildCost(req AssemblyRequest) (*AssemblyResponse, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}

	buildType := req.BuildType
	if buildType == "" {
		buildType = "custom"
	}

	resp := &AssemblyResponse{
		BuildType:     buildType,
		Components:    []AssemblyComponent{},
		Currency:      e.policies.Currency,
		EstimatedTime: e.policies.AssemblyLeadTime,
	}

	if buildType == "desktop" && req.DesktopBuildID != "" {
		if build, ok := s.store.DesktopBuildByID(req.DesktopBuildID); ok {
			resp.UseCase = strings.Join(build.UseCase, ", ")
			resp.Components = append(resp.Components, AssemblyComponent{
				Type:     "Desktop PC",
				SKU:      build.SKU,
				Name:     build.Name,
				Price:    build.TotalPrice,
				Quantity: 1,
			})
			resp.ComponentTotal = build.TotalPrice
		} else {
			resp.CompatibilityNotes = "Desktop build not found"
		}
	} else {
		e.resolveCustomBuild(s, &req, resp)
	}

	resp.AssemblyFee = e.policies.AssemblyFee
	resp.TotalCost = resp.ComponentTotal + resp.AssemblyFee
	return resp, nil
}

func (e *Engine) resolveCustomBuild(s *snapshot, req *AssemblyRequest, resp *AssemblyResponse) {
	ramQuantity := req.RAMQuantity
	if ramQuantity == 0 {
		ramQuantity = 1
	}
	ssdQuantity := req.SSDQuantity
	if ssdQuantity == 0 {
		ssdQuantity = 1
	}

	var chosenBarebone *model.Barebone

	if req.BareboneSKU != "" {
		if barebone, ok := s.store.BareboneBySKU(req.BareboneSKU); ok {
			chosenBarebone = barebone
			resp.Components = append(resp.Components, AssemblyComponent{
				Type:     "Barebone",
				SKU:      barebone.SKU,
				Name:     barebone.Name,
				Price:    barebone.Price,
				Quantity: 1,
			})
			resp.ComponentTotal += barebone.Price
		}
	}

	if req.CPUSKU != "" {
		if cpu, ok := s.store.FindBySKU(req.CPUSKU); ok {
			resp.Components = append(resp.Components, AssemblyComponent{
				Type:     "CPU",
				SKU:      cpu.SKU,
				Name:     cpu.Name,
				Price:    cpu.Price,
				Quantity: 1,
			})
			resp.ComponentTotal += cpu.Price

			if chosenBarebone != nil && !listsCPU(chosenBarebone, cpu.SKU) {
				resp.CompatibilityNotes = fmt.Sprintf("%s không nằm trong danh sách CPU tương thích của %s", cpu.Name, chosenBarebone.Name)
			}
		}
	}

	if req.RAMVariantSKU != "" {
		if v, ok := s.store.FindByVariantSKU(req.RAMVariantSKU); ok {
			resp.Components = append(resp.Components, AssemblyComponent{
				Type:     "RAM",
				SKU:      v.SKU,
				Name:     variantProduct(s.store, v).Name,
				Price:    v.Price * int64(ramQuantity),
				Quantity: ramQuantity,
			})
			resp.ComponentTotal += v.Price * int64(ramQuantity)
		}
	}

	if req.SSDVariantSKU != "" {
		if v, ok := s.store.FindByVariantSKU(req.SSDVariantSKU); ok {
			resp.Components = append(resp.Components, AssemblyComponent{
				Type:     "SSD",
				SKU:      v.SKU,
				Name:     variantProduct(s.store, v).Name,
				Price:    v.Price * int64(ssdQuantity),
				Quantity: ssdQuantity,
			})
			resp.ComponentTotal += v.Price * int64(ssdQuantity)
		}
	}
}

func listsCPU(b *model.Barebone, cpuSKU string) bool {
	for _, sku := range b.Compatibility.CPU {
		if sku == cpuSKU {
			return true
		}
	}
	return false
}
