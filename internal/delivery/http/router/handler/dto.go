// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"nosh/internal/domain/entity"
)

// addressDTO is the wire shape of an address, both inbound and outbound.
type addressDTO struct {
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

func (d addressDTO) toEntity() entity.Address {
	return entity.Address{
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
		Country:      d.Country,
		IsDefault:    d.IsDefault,
	}
}

func addressToDTO(a entity.Address) addressDTO {
	return addressDTO{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		IsDefault:    a.IsDefault,
	}
}

type orderItemDTO struct {
	ProductID        string  `json:"productId"`
	ProductVariantID string  `json:"productVariantId,omitempty"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	Subtotal         float64 `json:"subtotal"`
	Notes            string  `json:"notes,omitempty"`
}

type orderDTO struct {
	OrderID         string         `json:"orderId"`
	UserID          string         `json:"userId"`
	StoreID         string         `json:"storeId"`
	DeliveryAddress addressDTO     `json:"deliveryAddress"`
	OrderDate       time.Time      `json:"orderDate"`
	TotalAmount     float64        `json:"totalAmount"`
	DeliveryFee     float64        `json:"deliveryFee"`
	TaxAmount       float64        `json:"taxAmount"`
	DiscountAmount  float64        `json:"discountAmount"`
	FinalAmount     float64        `json:"finalAmount"`
	OrderStatus     string         `json:"orderStatus"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaymentStatus   string         `json:"paymentStatus"`
	Notes           string         `json:"notes,omitempty"`
	Items           []orderItemDTO `json:"items"`
}

func orderToDTO(o *entity.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemDTO{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice.InexactFloat64(),
			Subtotal:         item.Subtotal.InexactFloat64(),
			Notes:            item.Notes,
		})
	}

	return orderDTO{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		StoreID:         o.StoreID,
		DeliveryAddress: addressToDTO(o.DeliveryAddress),
		OrderDate:       o.OrderDate,
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		DeliveryFee:     o.DeliveryFee.InexactFloat64(),
		TaxAmount:       o.TaxAmount.InexactFloat64(),
		DiscountAmount:  o.DiscountAmount.InexactFloat64(),
		FinalAmount:     o.FinalAmount.InexactFloat64(),
		OrderStatus:     string(o.OrderStatus),
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   string(o.PaymentStatus),
		Notes:           o.Notes,
		Items:           items,
	}
}

type storeDTO struct {
	StoreID      string  `json:"storeId"`
	StoreName    string  `json:"storeName"`
	Description  string  `json:"description,omitempty"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 string  `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        string  `json:"email,omitempty"`
	CuisineType  string  `json:"cuisineType,omitempty"`
	OpeningTime  string  `json:"openingTime,omitempty"`
	ClosingTime  string  `json:"closingTime,omitempty"`
	IsActive     bool    `json:"isActive"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

func storeToDTO(s *entity.Store) storeDTO {
	return storeDTO{
		StoreID:      s.StoreID,
		StoreName:    s.StoreName,
		Description:  s.Description,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		City:         s.City,
		State:        s.State,
		PostalCode:   s.PostalCode,
		PhoneNumber:  s.PhoneNumber,
		Email:        s.Email,
		CuisineType:  s.CuisineType,
		OpeningTime:  s.OpeningTime,
		ClosingTime:  s.ClosingTime,
		IsActive:     s.IsActive,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
	}
}

type productVariantDTO struct {
	VariantID     string  `json:"variantId"`
	VariantName   string  `json:"variantName"`
	PriceModifier float64 `json:"priceModifier"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	SKU           string  `json:"sku"`
}

type productDTO struct {
	ProductID     string              `json:"productId"`
	StoreID       string              `json:"storeId"`
	ProductName   string              `json:"productName"`
	Description   string              `json:"description,omitempty"`
	BasePrice     float64             `json:"basePrice"`
	CategoryID    string              `json:"categoryId,omitempty"`
	ImageURL      string              `json:"imageUrl,omitempty"`
	IsAvailable   bool                `json:"isAvailable"`
	StockQuantity int                 `json:"stockQuantity"`
	Variants      []productVariantDTO `json:"variants"`
}

func productToDTO(p *entity.Product) productDTO {
	variants := make([]productVariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, productVariantDTO{
			VariantID:     v.VariantID,
			VariantName:   v.VariantName,
			PriceModifier: v.PriceModifier.InexactFloat64(),
			StockQuantity: v.StockQuantity,
			ImageURL:      v.ImageURL,
			SKU:           v.SKU,
		})
	}

	return productDTO{
		ProductID:     p.ProductID,
		StoreID:       p.StoreID,
		ProductName:   p.ProductName,
		Description:   p.Description,
		BasePrice:     p.BasePrice.InexactFloat64(),
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		IsAvailable:   p.IsAvailable,
		StockQuantity: p.StockQuantity,
		Variants:      variants,
	}
}

type reviewDTO struct {
	ReviewID          string    `json:"reviewId"`
	UserID            string    `json:"userId"`
	OrderID           string    `json:"orderId,omitempty"`
	ProductID         string    `json:"productId,omitempty"`
	StoreID           string    `json:"storeId,omitempty"`
	DeliveryPartnerID string    `json:"deliveryPartnerId,omitempty"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment,omitempty"`
	ReviewDate        time.Time `json:"reviewDate"`
}

func reviewToDTO(r *entity.Review) reviewDTO {
	return reviewDTO{
		ReviewID:          r.ReviewID,
		UserID:            r.UserID,
		OrderID:           r.OrderID,
		ProductID:         r.ProductID,
		StoreID:           r.StoreID,
		DeliveryPartnerID: r.DeliveryPartnerID,
		Rating:            r.Rating,
		Comment:           r.Comment,
		ReviewDate:        r.ReviewDate,
	}
}

type partnerDTO struct {
	DeliveryPartnerID  string  `json:"deliveryPartnerId"`
	Name               string  `json:"name"`
	PhoneNumber        string  `json:"phoneNumber"`
	Email              string  `json:"email,omitempty"`
	VehicleType        string  `json:"vehicleType,omitempty"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	Rating             float64 `json:"rating"`
}

func partnerToDTO(p *entity.DeliveryPartner) partnerDTO {
	return partnerDTO{
		DeliveryPartnerID:  p.DeliveryPartnerID,
		Name:               p.Name,
		PhoneNumber:        p.PhoneNumber,
		Email:              p.Email,
		VehicleType:        p.VehicleType,
		AvailabilityStatus: string(p.AvailabilityStatus),
		Rating:             p.Rating,
	}
}
