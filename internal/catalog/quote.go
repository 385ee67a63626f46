package catalog

import (
	"math"

	"sales-service/internal/model"
	"sales-service/pkg/config"
)

// BuildQuote prices the given line items under the company policies.
// A line resolves through the variant index when VariantSKU is set,
// otherwise through the SKU index. Unresolved references contribute zero
// price instead of failing the quote; the count of such lines is
// returned so callers can warn about them.
//
// Every monetary output is rounded to the nearest integer currency unit
// after its own formula is evaluated; the total is computed from the
// unrounded tax.
func (s *Store) BuildQuote(items []model.QuoteItem, policies config.PoliciesConfig) (model.Quote, int) {
	var subtotal int64
	unresolved := 0

	for _, item := range items {
		var price int64
		switch {
		case item.VariantSKU != "":
			if v, ok := s.FindByVariantSKU(item.VariantSKU); ok {
				price = v.Price
			} else {
				unresolved++
			}
		case item.SKU != "":
			if p, ok := s.FindBySKU(item.SKU); ok {
				price = p.Price
			} else {
				unresolved++
			}
		default:
			unresolved++
		}
		subtotal += price * int64(item.Quantity)
	}

	tax := float64(subtotal) * policies.TaxPercent / 100
	var shipping int64
	if subtotal < policies.ShippingFreeOver {
		shipping = policies.ShippingStandard
	}
	total := float64(subtotal) + tax + float64(shipping)

	return model.Quote{
		Subtotal: subtotal,
		Tax:      int64(math.Round(tax)),
		Shipping: shipping,
		Total:    int64(math.Round(total)),
		Currency: policies.Currency,
	}, unresolved
}
