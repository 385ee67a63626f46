package model

// Product is the common record for anything directly purchasable by SKU.
// Prices are integers in the smallest currency unit (VND has no subunit).
type Product struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Warranty    string   `json:"warranty,omitempty"`
}

// HasTag reports whether the product carries the given tag. Tags are
// stored lowercase in the catalog; callers pass lowercase.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Variant is a parameterized sub-item of a RAM or SSD line with its own
// SKU and price. Modules is RAM-only, read/write speeds are SSD-only.
type Variant struct {
	SKU           string `json:"sku"`
	CapacityGB    int    `json:"capacityGB"`
	Modules       int    `json:"modules,omitempty"`
	Price         int64  `json:"price"`
	SpeedMHz      int    `json:"speedMHz,omitempty"`
	ReadSpeedMBs  int    `json:"readSpeedMBs,omitempty"`
	WriteSpeedMBs int    `json:"writeSpeedMBs,omitempty"`
}

// ProductWithVariants is a product line sold only through its variants.
// SpeedMHz is the line's base speed, used when a variant does not override it.
type ProductWithVariants struct {
	Product
	SpeedMHz int       `json:"speedMHz,omitempty"`
	Variants []Variant `json:"variants"`
}

// VariantSpeed returns the effective speed of a variant, falling back to
// the line's base speed.
func (p *ProductWithVariants) VariantSpeed(v *Variant) int {
	if v.SpeedMHz > 0 {
		return v.SpeedMHz
	}
	return p.SpeedMHz
}

// RAMCompatibility constrains the memory a barebone accepts.
type RAMCompatibility struct {
	Type          string `json:"type"`
	MaxCapacityGB int    `json:"maxCapacityGB,omitempty"`
}

// SSDCompatibility constrains the storage interface a barebone accepts.
type SSDCompatibility struct {
	Interface string `json:"interface"`
}

// Compatibility lists what a barebone accepts. CPU entries reference CPU
// SKUs; dangling references are tolerated at query time.
type Compatibility struct {
	CPU []string          `json:"cpu,omitempty"`
	RAM *RAMCompatibility `json:"ram,omitempty"`
	SSD *SSDCompatibility `json:"ssd,omitempty"`
}

// Barebone is a chassis/motherboard bundle other components install into.
type Barebone struct {
	Product
	Compatibility Compatibility `json:"compatibility"`
}

// CPU is a processor product. RecommendedFor names system models the CPU
// is marketed for.
type CPU struct {
	Product
	Socket         string   `json:"socket"`
	RecommendedFor []string `json:"recommendedFor,omitempty"`
}

// BuildComponents references the parts of a pre-priced desktop build.
type BuildComponents struct {
	BareboneSKU   string `json:"barebone"`
	CPUSKU        string `json:"cpu"`
	RAMVariantSKU string `json:"ram"`
	SSDVariantSKU string `json:"ssd"`
}

// DesktopBuild is a fixed bundle of specific component SKUs with a
// precomputed total price.
type DesktopBuild struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Components  BuildComponents `json:"components"`
	TotalPrice  int64           `json:"totalPrice"`
	UseCase     []string        `json:"useCase"`
}

// Document is the parsed catalog file. It is treated as immutable after
// load; indices are derived projections over it.
type Document struct {
	Products struct {
		Barebones     []Barebone            `json:"barebones"`
		CPUs          []CPU                 `json:"cpus"`
		RAMs          []ProductWithVariants `json:"rams"`
		SSDs          []ProductWithVariants `json:"ssds"`
		DesktopBuilds []DesktopBuild        `json:"desktopBuilds"`
	} `json:"products"`
}

// QuoteItem is one line of a quote request. VariantSKU takes precedence
// over SKU when both are set.
type QuoteItem struct {
	SKU        string `json:"sku,omitempty"`
	VariantSKU string `json:"variantSku,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Quote is a priced order. Each monetary field is rounded to the nearest
// integer currency unit independently.
type Quote struct {
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Shipping int64  `json:"shipping"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}
