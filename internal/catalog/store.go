package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sales-service/internal/model"
)

// Store is the immutable in-memory representation of the product catalog
// together with its derived lookup indices. A Store is built in full
// before it is handed to any caller and is never mutated afterwards, so
// it is safe to share across concurrent requests without locking.
type Store struct {
	doc *model.Document

	// Projections of desktop builds as plain products so the name/tag
	// indices can reference them alongside barebones and CPUs.
	buildProducts []model.Product

	skuIndex     map[string]*model.Product
	variantIndex map[string]*model.Variant
	nameIndex    map[string][]*model.Product
	tagIndex     map[string][]*model.Product
	compatIndex  map[string][]*model.Barebone
	parentIndex  map[string]*model.ProductWithVariants
	buildIndex   map[string]*model.DesktopBuild
}

// Load reads and parses the catalog document at path and builds a Store
// from it. Any structural problem is a load error; no partially indexed
// store is ever returned.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return NewStore(&doc)
}

// NewStore validates the catalog document and builds all indices in one
// pass. The document must not be modified after being handed in.
func NewStore(doc *model.Document) (*Store, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	s := &Store{
		doc:          doc,
		skuIndex:     make(map[string]*model.Product),
		variantIndex: make(map[string]*model.Variant),
		nameIndex:    make(map[string][]*model.Product),
		tagIndex:     make(map[string][]*model.Product),
		compatIndex:  make(map[string][]*model.Barebone),
		parentIndex:  make(map[string]*model.ProductWithVariants),
		buildIndex:   make(map[string]*model.DesktopBuild),
	}
	s.buildIndices()
	return s, nil
}

func (s *Store) buildIndices() {
	p := &s.doc.Products

	for i := range p.Barebones {
		b := &p.Barebones[i]
		s.skuIndex[b.SKU] = &b.Product
		s.addToNameIndex(&b.Product)
		s.addToTagIndex(&b.Product)
		for _, cpuSKU := range b.Compatibility.CPU {
			s.compatIndex[cpuSKU] = append(s.compatIndex[cpuSKU], b)
		}
	}

	for i := range p.CPUs {
		c := &p.CPUs[i]
		s.skuIndex[c.SKU] = &c.Product
		s.addToNameIndex(&c.Product)
		s.addToTagIndex(&c.Product)
	}

	// Variant-bearing categories are indexed at the variant level for
	// direct-purchase lookups; the parent only feeds the name/tag indices.
	for i := range p.RAMs {
		s.indexVariantLine(&p.RAMs[i])
	}
	for i := range p.SSDs {
		s.indexVariantLine(&p.SSDs[i])
	}

	// Desktop builds are searchable through a plain-product projection
	// whose tags are the build's use cases.
	s.buildProducts = make([]model.Product, len(p.DesktopBuilds))
	for i := range p.DesktopBuilds {
		d := &p.DesktopBuilds[i]
		s.buildIndex[d.SKU] = d
		s.buildProducts[i] = model.Product{
			SKU:         d.SKU,
			Name:        d.Name,
			Price:       d.TotalPrice,
			Description: d.Description,
			Tags:        d.UseCase,
		}
		s.addToNameIndex(&s.buildProducts[i])
		s.addToTagIndex(&s.buildProducts[i])
	}
}

func (s *Store) indexVariantLine(line *model.ProductWithVariants) {
	s.addToNameIndex(&line.Product)
	s.addToTagIndex(&line.Product)
	for j := range line.Variants {
		v := &line.Variants[j]
		s.variantIndex[v.SKU] = v
		s.parentIndex[v.SKU] = line
	}
}

func (s *Store) addToNameIndex(p *model.Product) {
	key := strings.ToLower(p.Name)
	s.nameIndex[key] = append(s.nameIndex[key], p)
}

func (s *Store) addToTagIndex(p *model.Product) {
	for _, tag := range p.Tags {
		key := strings.ToLower(tag)
		s.tagIndex[key] = append(s.tagIndex[key], p)
	}
}

// FindBySKU returns the product with the given SKU (barebones and CPUs).
func (s *Store) FindBySKU(sku string) (*model.Product, bool) {
	p, ok := s.skuIndex[sku]
	return p, ok
}

// FindByVariantSKU returns the RAM/SSD variant with the given SKU.
func (s *Store) FindByVariantSKU(sku string) (*model.Variant, bool) {
	v, ok := s.variantIndex[sku]
	return v, ok
}

// ParentOf returns the product line owning the given variant SKU.
func (s *Store) ParentOf(variantSKU string) (*model.ProductWithVariants, bool) {
	p, ok := s.parentIndex[variantSKU]
	return p, ok
}

// DesktopBuildByID returns the desktop build with the given id.
func (s *Store) DesktopBuildByID(id string) (*model.DesktopBuild, bool) {
	d, ok := s.buildIndex[id]
	return d, ok
}

// BareboneBySKU returns the full barebone record, compatibility
// constraints included, for the given SKU.
func (s *Store) BareboneBySKU(sku string) (*model.Barebone, bool) {
	for i := range s.doc.Products.Barebones {
		if s.doc.Products.Barebones[i].SKU == sku {
			return &s.doc.Products.Barebones[i], true
		}
	}
	return nil, false
}

// CompatibleBarebones returns every barebone listing the CPU SKU as
// compatible. Unknown SKUs yield an empty result.
func (s *Store) CompatibleBarebones(cpuSKU string) []*model.Barebone {
	return s.compatIndex[cpuSKU]
}

// SearchByNameOrTag returns the union of all products whose lowercased
// name or any tag contains the lowercased query as a substring,
// deduplicated by SKU. Ordering across index entries is not specified.
func (s *Store) SearchByNameOrTag(query string) []model.Product {
	q := strings.ToLower(query)
	seen := make(map[string]bool)
	var results []model.Product

	collect := func(products []*model.Product) {
		for _, p := range products {
			if !seen[p.SKU] {
				seen[p.SKU] = true
				results = append(results, *p)
			}
		}
	}

	for name, products := range s.nameIndex {
		if strings.Contains(name, q) {
			collect(products)
		}
	}
	for tag, products := range s.tagIndex {
		if strings.Contains(tag, q) {
			collect(products)
		}
	}

	return results
}

// Barebones exposes the catalog's barebone records.
func (s *Store) Barebones() []model.Barebone { return s.doc.Products.Barebones }

// CPUs exposes the catalog's CPU records.
func (s *Store) CPUs() []model.CPU { return s.doc.Products.CPUs }

// RAMs exposes the catalog's RAM product lines.
func (s *Store) RAMs() []model.ProductWithVariants { return s.doc.Products.RAMs }

// SSDs exposes the catalog's SSD product lines.
func (s *Store) SSDs() []model.ProductWithVariants { return s.doc.Products.SSDs }

// DesktopBuilds exposes the catalog's pre-priced builds.
func (s *Store) DesktopBuilds() []model.DesktopBuild { return s.doc.Products.DesktopBuilds }

func validate(doc *model.Document) error {
	p := &doc.Products
	productSKUs := make(map[string]bool)
	variantSKUs := make(map[string]bool)

	requireProduct := func(kind string, prod *model.Product) error {
		if prod.SKU == "" {
			return fmt.Errorf("catalog: %s %q has no sku", kind, prod.Name)
		}
		if prod.Name == "" {
			return fmt.Errorf("catalog: %s %s has no name", kind, prod.SKU)
		}
		if prod.Price <= 0 {
			return fmt.Errorf("catalog: %s %s has no price", kind, prod.SKU)
		}
		if productSKUs[prod.SKU] {
			return fmt.Errorf("catalog: duplicate sku %s", prod.SKU)
		}
		productSKUs[prod.SKU] = true
		return nil
	}

	for i := range p.Barebones {
		if err := requireProduct("barebone", &p.Barebones[i].Product); err != nil {
			return err
		}
	}
	for i := range p.CPUs {
		if err := requireProduct("cpu", &p.CPUs[i].Product); err != nil {
			return err
		}
	}

	requireLine := func(kind string, line *model.ProductWithVariants) error {
		if line.SKU == "" || line.Name == "" {
			return fmt.Errorf("catalog: %s line %q is missing sku or name", kind, line.Name)
		}
		if len(line.Variants) == 0 {
			return fmt.Errorf("catalog: %s line %s has no variants", kind, line.SKU)
		}
		for j := range line.Variants {
			v := &line.Variants[j]
			if v.SKU == "" {
				return fmt.Errorf("catalog: %s line %s has a variant without sku", kind, line.SKU)
			}
			if v.CapacityGB <= 0 || v.Price <= 0 {
				return fmt.Errorf("catalog: variant %s is missing capacity or price", v.SKU)
			}
			if variantSKUs[v.SKU] || productSKUs[v.SKU] {
				return fmt.Errorf("catalog: duplicate variant sku %s", v.SKU)
			}
			variantSKUs[v.SKU] = true
		}
		return nil
	}

	for i := range p.RAMs {
		if err := requireLine("ram", &p.RAMs[i]); err != nil {
			return err
		}
	}
	for i := range p.SSDs {
		if err := requireLine("ssd", &p.SSDs[i]); err != nil {
			return err
		}
	}

	for i := range p.DesktopBuilds {
		d := &p.DesktopBuilds[i]
		if d.SKU == "" || d.Name == "" {
			return fmt.Errorf("catalog: desktop build %q is missing sku or name", d.Name)
		}
		if d.TotalPrice <= 0 {
			return fmt.Errorf("catalog: desktop build %s has no total price", d.SKU)
		}
		if productSKUs[d.SKU] || variantSKUs[d.SKU] {
			return fmt.Errorf("catalog: duplicate sku %s", d.SKU)
		}
		productSKUs[d.SKU] = true
	}

	return nil
}
