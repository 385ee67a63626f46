package engine

import (
	"errors"
	"strconv"
	"strings"
	"sync/atomic"

	"sales-service/internal/catalog"
	"sales-service/internal/model"
	"sales-service/internal/recommend"
	"sales-service/pkg/config"
	"sales-service/prometheus"
)

// ErrNotReady is returned for any query arriving before the first
// successful catalog load. Callers map it to a "not ready" condition.
var ErrNotReady = errors.New("catalog not loaded")

// snapshot bundles one immutable catalog store with the category
// services built over it. A snapshot is fully constructed before being
// published and is never mutated afterwards.
type snapshot struct {
	store    *catalog.Store
	ram      *recommend.RAMService
	ssd      *recommend.SSDService
	cpu      *recommend.CPUService
	barebone *recommend.BareboneService
}

// Engine is the single entry point over the catalog: lookups, search
// dispatch, recommendations, quoting and assembly costing. It holds one
// atomically swappable snapshot, so reloads never expose a partially
// built index to in-flight queries.
type Engine struct {
	policies config.PoliciesConfig
	current  atomic.Pointer[snapshot]
}

// New returns an engine with no catalog loaded. Queries fail with
// ErrNotReady until the first Load succeeds.
func New(policies config.PoliciesConfig) *Engine {
	return &Engine{policies: policies}
}

// Load reads the catalog document at path, builds a complete snapshot
// and atomically swaps it in (build-then-swap). On error the previous
// snapshot, if any, stays in place.
func (e *Engine) Load(path string) error {
	store, err := catalog.Load(path)
	if err != nil {
		return err
	}
	e.install(store)
	return nil
}

// LoadDocument builds a snapshot from an already-parsed catalog document.
func (e *Engine) LoadDocument(doc *model.Document) error {
	store, err := catalog.NewStore(doc)
	if err != nil {
		return err
	}
	e.install(store)
	return nil
}

func (e *Engine) install(store *catalog.Store) {
	snap := &snapshot{
		store:    store,
		ram:      recommend.NewRAMService(store),
		ssd:      recommend.NewSSDService(store),
		cpu:      recommend.NewCPUService(store),
		barebone: recommend.NewBareboneService(store),
	}
	e.current.Store(snap)

	prometheus.SetCatalogSize("barebones", len(store.Barebones()))
	prometheus.SetCatalogSize("cpus", len(store.CPUs()))
	prometheus.SetCatalogSize("rams", len(store.RAMs()))
	prometheus.SetCatalogSize("ssds", len(store.SSDs()))
	prometheus.SetCatalogSize("desktop_builds", len(store.DesktopBuilds()))
}

// Ready reports whether a catalog snapshot has been installed.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

func (e *Engine) snap() (*snapshot, error) {
	s := e.current.Load()
	if s == nil {
		return nil, ErrNotReady
	}
	return s, nil
}

// FindBySKU returns the product with the given SKU.
func (e *Engine) FindBySKU(sku string) (*model.Product, bool) {
	s := e.current.Load()
	if s == nil {
		return nil, false
	}
	return s.store.FindBySKU(sku)
}

// FindByVariantSKU returns the variant with the given SKU.
func (e *Engine) FindByVariantSKU(sku string) (*model.Variant, bool) {
	s := e.current.Load()
	if s == nil {
		return nil, false
	}
	return s.store.FindByVariantSKU(sku)
}

// FindParentProduct returns the product line owning the given variant SKU.
func (e *Engine) FindParentProduct(variantSKU string) (*model.ProductWithVariants, bool) {
	s := e.current.Load()
	if s == nil {
		return nil, false
	}
	return s.store.ParentOf(variantSKU)
}

// DesktopBuildByID returns the desktop build with the given id.
func (e *Engine) DesktopBuildByID(id string) (*model.DesktopBuild, bool) {
	s := e.current.Load()
	if s == nil {
		return nil, false
	}
	return s.store.DesktopBuildByID(id)
}

// CompatibleBarebones returns the barebones compatible with a CPU SKU.
func (e *Engine) CompatibleBarebones(cpuSKU string) ([]model.Barebone, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}
	return s.barebone.CompatibleWithCPU(cpuSKU), nil
}

// SearchByNameOrTag runs the generic substring search over the name and
// tag indices.
func (e *Engine) SearchByNameOrTag(query string) ([]model.Product, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}
	return s.store.SearchByNameOrTag(query), nil
}

// BuildQuote prices the given line items under the company policies.
func (e *Engine) BuildQuote(items []model.QuoteItem) (model.Quote, error) {
	s, err := e.snap()
	if err != nil {
		return model.Quote{}, err
	}
	quote, unresolved := s.store.BuildQuote(items, e.policies)
	prometheus.RecordQuote(unresolved)
	return quote, nil
}

// SearchRequest is the search/recommend contract consumed by the
// tool-invocation layer. All fields are optional; Quantity defaults to 1
// when absent.
type SearchRequest struct {
	Query                string `json:"query,omitempty"`
	SKU                  string `json:"sku,omitempty"`
	VariantSKU           string `json:"variantSku,omitempty"`
	Quantity             *int   `json:"quantity,omitempty"`
	RAMFormFactor        string `json:"ramFormFactor,omitempty"`
	RAMDdrGen            string `json:"ramDdrGen,omitempty"`
	RAMQuantity          int    `json:"ramQuantity,omitempty"`
	RAMCapacityPerModule int    `json:"ramCapacityPerModule,omitempty"`
	UseCase              string `json:"useCase,omitempty"`
	SpeedPriority        string `json:"speedPriority,omitempty"`
	Budget               int64  `json:"budget,omitempty"`
}

func (r *SearchRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func (r *SearchRequest) hasRAMFields() bool {
	return r.RAMFormFactor != "" || r.RAMDdrGen != "" || r.RAMQuantity > 0 || r.RAMCapacityPerModule > 0
}

func (r *SearchRequest) ramRequirements() recommend.RAMRequirements {
	gen, _ := strconv.Atoi(r.RAMDdrGen)
	return recommend.RAMRequirements{
		FormFactor:          r.RAMFormFactor,
		DDRGen:              gen,
		Quantity:            r.RAMQuantity,
		CapacityPerModuleGB: r.RAMCapacityPerModule,
		UseCase:             r.UseCase,
		SpeedPriority:       r.SpeedPriority,
		Budget:              r.Budget,
	}
}

// SearchResponse carries the matched products and, when any matched and
// the quantity is positive, a quote over all of them.
type SearchResponse struct {
	Results []model.Product `json:"results"`
	Quote   *model.Quote    `json:"quote,omitempty"`
}

const (
	genericSearchLimit = 10
)

// Search dispatches a request by precedence: RAM-specific fields, exact
// SKU, exact variant SKU, free-text query (RAM detection or generic
// search), else empty.
func (e *Engine) Search(req SearchRequest) (*SearchResponse, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}

	var (
		results       []model.Product
		variantBacked bool
		mode          string
	)

	switch {
	case req.hasRAMFields():
		mode = "ram"
		results = s.ram.Recommendations(req.ramRequirements())
		variantBacked = true

	case req.SKU != "":
		mode = "sku"
		if p, ok := s.store.FindBySKU(req.SKU); ok {
			results = []model.Product{*p}
		}

	case req.VariantSKU != "":
		mode = "variant"
		if v, ok := s.store.FindByVariantSKU(req.VariantSKU); ok {
			results = []model.Product{variantProduct(s.store, v)}
			variantBacked = true
		}

	case req.Query != "":
		q := strings.ToLower(req.Query)
		if strings.Contains(q, "ram") || strings.Contains(q, "memory") {
			detected := s.ram.DetectRequirements(req.Query)
			if detected.FormFactor != "" && detected.DDRGen > 0 && detected.Quantity > 0 && detected.CapacityPerModuleGB > 0 {
				mode = "ram_detected"
				results = s.ram.Recommendations(detected)
				variantBacked = true
				break
			}
		}
		mode = "search"
		results = s.store.SearchByNameOrTag(req.Query)
		if len(results) > genericSearchLimit {
			results = results[:genericSearchLimit]
		}

	default:
		mode = "empty"
	}

	prometheus.RecordSearchOperation(mode)

	resp := &SearchResponse{Results: results}
	if quantity := req.quantity(); len(results) > 0 && quantity > 0 {
		items := make([]model.QuoteItem, len(results))
		for i, r := range results {
			if variantBacked {
				items[i] = model.QuoteItem{VariantSKU: r.SKU, Quantity: quantity}
			} else {
				items[i] = model.QuoteItem{SKU: r.SKU, Quantity: quantity}
			}
		}
		quote, unresolved := s.store.BuildQuote(items, e.policies)
		prometheus.RecordQuote(unresolved)
		resp.Quote = &quote
	}

	return resp, nil
}

// variantProduct projects a variant into a plain product, naming it
// through its parent line when the parent is known.
func variantProduct(store *catalog.Store, v *model.Variant) model.Product {
	if parent, ok := store.ParentOf(v.SKU); ok {
		p := model.Product{
			SKU:         v.SKU,
			Name:        parent.Name + " - " + strconv.Itoa(v.CapacityGB) + "GB",
			Price:       v.Price,
			Description: parent.Description,
			Tags:        parent.Tags,
			Warranty:    parent.Warranty,
		}
		return p
	}
	return model.Product{
		SKU:   v.SKU,
		Name:  "Variant " + strconv.Itoa(v.CapacityGB) + "GB",
		Price: v.Price,
	}
}

// RAM exposes the RAM category service of the current snapshot.
func (e *Engine) RAM() (*recommend.RAMService, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}
	return s.ram, nil
}

// SSD exposes the SSD category service of the current snapshot.
func (e *Engine) SSD() (*recommend.SSDService, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}
	return s.ssd, nil
}

// CPU exposes the CPU category service of the current snapshot.
func (e *Engine) CPU() (*recommend.CPUService, error) {
	s, err := e.snap()
	if err != nil {
		return nil, err
	}
	return s.cpu, nil
}
