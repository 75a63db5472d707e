// internal/core/domain/purchase.go
package domain

import (
	"github.com/shopspring/decimal"
)

// Purchase records how many units of an item were bought during a visit,
// and at what running average price. Price stays nil until a priced buy
// or an explicit price update happens.
type Purchase struct {
	ID       int64            `json:"id"`
	VisitID  int64            `json:"visit_id"`
	ItemID   int64            `json:"item_id"`
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// Buy adds quantity units at an optional unit price. When both the
// existing record and the incoming buy carry a price, the stored price
// becomes the quantity-weighted average of the two:
//
//	newPrice = (oldPrice*oldQty + price*qty) / (oldQty + qty)
//
// A first price is stored verbatim. Validation happens before any field
// is touched, so a failed Buy leaves the record unchanged.
func (p *Purchase) Buy(quantity int64, price *decimal.Decimal) error {
	if quantity <= 0 {
		return NewInvalidArgument("Quantity must be > 0!")
	}
	if price != nil && !price.IsPositive() {
		return NewInvalidArgument("Price must be > 0!")
	}

	if price != nil {
		if p.Price != nil && p.Quantity > 0 {
			oldQty := decimal.NewFromInt(p.Quantity)
			newQty := decimal.NewFromInt(quantity)
			total := p.Price.Mul(oldQty).Add(price.Mul(newQty))
			// prices carry two decimal places end to end
			blended := total.Div(oldQty.Add(newQty)).Round(2)
			p.Price = &blended
		} else {
			v := *price
			p.Price = &v
		}
	}
	p.Quantity += quantity
	return nil
}

// Return removes quantity units. The caller deletes the record when the
// quantity reaches zero; price is never touched on return.
func (p *Purchase) Return(quantity int64) error {
	if quantity <= 0 || quantity > p.Quantity {
		return NewInvalidArgument("Quantity must be > 0 and < available!")
	}
	p.Quantity -= quantity
	return nil
}

// SetPrice overwrites the stored price without blending.
func (p *Purchase) SetPrice(price *decimal.Decimal) error {
	if price == nil || !price.IsPositive() {
		return NewInvalidArgument("Price must be > 0!")
	}
	v := *price
	p.Price = &v
	return nil
}

// Total returns quantity multiplied by price, or zero when unpriced.
func (p *Purchase) Total() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}
