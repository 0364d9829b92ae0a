// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item that belongs to exactly one Store. Variants
// are embedded in, and owned by, their product; they carry explicit
// VariantID keys rather than relying on storage-generated identifiers.
type Product struct {
	ProductID     string // The unique business identifier for the product.
	StoreID       string // The store this product belongs to.
	ProductName   string
	Description   string
	BasePrice     decimal.Decimal // Price of the product without any variant selected.
	CategoryID    string          // The product category this product is filed under.
	ImageURL      string
	IsAvailable   bool
	StockQuantity int              // Stock of the base product (or total across variants).
	Variants      []ProductVariant // Embedded variant options.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Variant looks up an embedded variant by its identifier.
func (p *Product) Variant(variantID string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.VariantID == variantID {
			return v, true
		}
	}

	return ProductVariant{}, false
}

// UnitPrice resolves the effective unit price for a variant selection:
// base price plus the variant's modifier, or the bare base price when no
// variant is selected.
func (p *Product) UnitPrice(variant *ProductVariant) decimal.Decimal {
	if variant == nil {
		return p.BasePrice
	}

	return p.BasePrice.Add(variant.PriceModifier)
}

// ProductVariant is one purchasable option of a product, e.g. "500ml".
// VariantID is unique within the product; SKU is unique globally.
type ProductVariant struct {
	VariantID     string
	VariantName   string
	PriceModifier decimal.Decimal // Adjustment applied on top of the product's base price. May be negative.
	StockQuantity int
	ImageURL      string
	SKU           string
}

// ProductCategory groups products; categories may nest via
// ParentCategoryID.
type ProductCategory struct {
	CategoryID       string
	CategoryName     string
	ParentCategoryID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
