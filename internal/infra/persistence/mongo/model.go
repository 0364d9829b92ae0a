package mongo

import (
	"time"

	"nosh/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Persistence models mirror the stored document shape. Money is stored as
// plain numbers in the documents and converted to decimals at this
// boundary; all arithmetic upstream happens on decimals.

type addressModel struct {
	AddressLine1 string `bson:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty"`
	City         string `bson:"city"`
	State        string `bson:"state"`
	PostalCode   string `bson:"postalCode"`
	Country      string `bson:"country"`
	IsDefault    bool   `bson:"isDefault"`
}

type userModel struct {
	UserID       string         `bson:"userId"`
	FirstName    string         `bson:"firstName"`
	LastName     string         `bson:"lastName,omitempty"`
	Email        string         `bson:"email"`
	PasswordHash string         `bson:"passwordHash"`
	PhoneNumber  string         `bson:"phoneNumber"`
	Addresses    []addressModel `bson:"addresses"`
	CreatedAt    time.Time      `bson:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt"`
}

type storeModel struct {
	StoreID      string    `bson:"storeId"`
	StoreName    string    `bson:"storeName"`
	Description  string    `bson:"description,omitempty"`
	AddressLine1 string    `bson:"addressLine1"`
	AddressLine2 string    `bson:"addressLine2,omitempty"`
	City         string    `bson:"city"`
	State        string    `bson:"state"`
	PostalCode   string    `bson:"postalCode"`
	PhoneNumber  string    `bson:"phoneNumber"`
	Email        string    `bson:"email,omitempty"`
	CuisineType  string    `bson:"cuisineType,omitempty"`
	OpeningTime  string    `bson:"openingTime,omitempty"`
	ClosingTime  string    `bson:"closingTime,omitempty"`
	IsActive     bool      `bson:"isActive"`
	Latitude     float64   `bson:"latitude,omitempty"`
	Longitude    float64   `bson:"longitude,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

type productVariantModel struct {
	VariantID     string  `bson:"variantId"`
	VariantName   string  `bson:"variantName"`
	PriceModifier float64 `bson:"priceModifier"`
	StockQuantity int     `bson:"stockQuantity"`
	ImageURL      string  `bson:"imageUrl,omitempty"`
	SKU           string  `bson:"sku"`
}

type productModel struct {
	ProductID     string                `bson:"productId"`
	StoreID       string                `bson:"storeId"`
	ProductName   string                `bson:"productName"`
	Description   string                `bson:"description,omitempty"`
	BasePrice     float64               `bson:"basePrice"`
	CategoryID    string                `bson:"categoryId"`
	ImageURL      string                `bson:"imageUrl,omitempty"`
	IsAvailable   bool                  `bson:"isAvailable"`
	StockQuantity int                   `bson:"stockQuantity"`
	Variants      []productVariantModel `bson:"variants"`
	CreatedAt     time.Time             `bson:"createdAt"`
	UpdatedAt     time.Time             `bson:"updatedAt"`
}

type orderItemModel struct {
	ProductID        string  `bson:"productId"`
	ProductVariantID string  `bson:"productVariantId,omitempty"`
	Quantity         int     `bson:"quantity"`
	UnitPrice        float64 `bson:"unitPrice"`
	Subtotal         float64 `bson:"subtotal"`
	Notes            string  `bson:"notes,omitempty"`
}

type orderModel struct {
	OrderID           string           `bson:"orderId"`
	UserID            string           `bson:"userId"`
	StoreID           string           `bson:"storeId"`
	DeliveryAddress   addressModel     `bson:"deliveryAddress"`
	OrderDate         time.Time        `bson:"orderDate"`
	TotalAmount       float64          `bson:"totalAmount"`
	DeliveryFee       float64          `bson:"deliveryFee"`
	TaxAmount         float64          `bson:"taxAmount"`
	DiscountAmount    float64          `bson:"discountAmount"`
	FinalAmount       float64          `bson:"finalAmount"`
	OrderStatus       string           `bson:"orderStatus"`
	PaymentMethod     string           `bson:"paymentMethod"`
	PaymentStatus     string           `bson:"paymentStatus"`
	DeliveryPartnerID string           `bson:"deliveryPartnerId,omitempty"`
	EstimatedDelivery *time.Time       `bson:"estimatedDeliveryTime,omitempty"`
	ActualDelivery    *time.Time       `bson:"actualDeliveryTime,omitempty"`
	Notes             string           `bson:"notes,omitempty"`
	Items             []orderItemModel `bson:"items"`
	CreatedAt         time.Time        `bson:"createdAt"`
	UpdatedAt         time.Time        `bson:"updatedAt"`
}

type reviewModel struct {
	ReviewID          string    `bson:"reviewId"`
	UserID            string    `bson:"userId"`
	OrderID           string    `bson:"orderId,omitempty"`
	ProductID         string    `bson:"productId,omitempty"`
	StoreID           string    `bson:"storeId,omitempty"`
	DeliveryPartnerID string    `bson:"deliveryPartnerId,omitempty"`
	Rating            int       `bson:"rating"`
	Comment           string    `bson:"comment,omitempty"`
	ReviewDate        time.Time `bson:"reviewDate"`
	CreatedAt         time.Time `bson:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt"`
}

type partnerModel struct {
	DeliveryPartnerID  string    `bson:"deliveryPartnerId"`
	Name               string    `bson:"name"`
	PhoneNumber        string    `bson:"phoneNumber"`
	Email              string    `bson:"email,omitempty"`
	VehicleType        string    `bson:"vehicleType,omitempty"`
	CurrentLatitude    float64   `bson:"currentLatitude,omitempty"`
	CurrentLongitude   float64   `bson:"currentLongitude,omitempty"`
	AvailabilityStatus string    `bson:"availabilityStatus"`
	Rating             float64   `bson:"rating,omitempty"`
	CreatedAt          time.Time `bson:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt"`
}

// --- Mapper Functions ---

func fromAddressDomain(data entity.Address) addressModel {
	return addressModel{
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		IsDefault:    data.IsDefault,
	}
}

func toAddressDomain(data addressModel) entity.Address {
	return entity.Address{
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		IsDefault:    data.IsDefault,
	}
}

func fromUserDomain(data *entity.User) *userModel {
	if data == nil {
		return nil
	}

	addresses := make([]addressModel, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, fromAddressDomain(addr))
	}

	return &userModel{
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		Addresses:    addresses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserDomain(data *userModel) *entity.User {
	if data == nil {
		return nil
	}

	addresses := make([]entity.Address, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addr))
	}

	return &entity.User{
		UserID:       data.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		Addresses:    addresses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *storeModel {
	if data == nil {
		return nil
	}

	return &storeModel{
		StoreID:      data.StoreID,
		StoreName:    data.StoreName,
		Description:  data.Description,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		CuisineType:  data.CuisineType,
		OpeningTime:  data.OpeningTime,
		ClosingTime:  data.ClosingTime,
		IsActive:     data.IsActive,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toStoreDomain(data *storeModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		StoreID:      data.StoreID,
		StoreName:    data.StoreName,
		Description:  data.Description,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		CuisineType:  data.CuisineType,
		OpeningTime:  data.OpeningTime,
		ClosingTime:  data.ClosingTime,
		IsActive:     data.IsActive,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *productModel {
	if data == nil {
		return nil
	}

	variants := make([]productVariantModel, 0, len(data.Variants))
	for _, v := range data.Variants {
		variants = append(variants, productVariantModel{
			VariantID:     v.VariantID,
			VariantName:   v.VariantName,
			PriceModifier: v.PriceModifier.InexactFloat64(),
			StockQuantity: v.StockQuantity,
			ImageURL:      v.ImageURL,
			SKU:           v.SKU,
		})
	}

	return &productModel{
		ProductID:     data.ProductID,
		StoreID:       data.StoreID,
		ProductName:   data.ProductName,
		Description:   data.Description,
		BasePrice:     data.BasePrice.InexactFloat64(),
		CategoryID:    data.CategoryID,
		ImageURL:      data.ImageURL,
		IsAvailable:   data.IsAvailable,
		StockQuantity: data.StockQuantity,
		Variants:      variants,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomain(data *productModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]entity.ProductVariant, 0, len(data.Variants))
	for _, v := range data.Variants {
		variants = append(variants, entity.ProductVariant{
			VariantID:     v.VariantID,
			VariantName:   v.VariantName,
			PriceModifier: decimal.NewFromFloat(v.PriceModifier),
			StockQuantity: v.StockQuantity,
			ImageURL:      v.ImageURL,
			SKU:           v.SKU,
		})
	}

	return &entity.Product{
		ProductID:     data.ProductID,
		StoreID:       data.StoreID,
		ProductName:   data.ProductName,
		Description:   data.Description,
		BasePrice:     decimal.NewFromFloat(data.BasePrice),
		CategoryID:    data.CategoryID,
		ImageURL:      data.ImageURL,
		IsAvailable:   data.IsAvailable,
		StockQuantity: data.StockQuantity,
		Variants:      variants,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *orderModel {
	if data == nil {
		return nil
	}

	items := make([]orderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, orderItemModel{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice.InexactFloat64(),
			Subtotal:         item.Subtotal.InexactFloat64(),
			Notes:            item.Notes,
		})
	}

	return &orderModel{
		OrderID:           data.OrderID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		DeliveryAddress:   fromAddressDomain(data.DeliveryAddress),
		OrderDate:         data.OrderDate,
		TotalAmount:       data.TotalAmount.InexactFloat64(),
		DeliveryFee:       data.DeliveryFee.InexactFloat64(),
		TaxAmount:         data.TaxAmount.InexactFloat64(),
		DiscountAmount:    data.DiscountAmount.InexactFloat64(),
		FinalAmount:       data.FinalAmount.InexactFloat64(),
		OrderStatus:       string(data.OrderStatus),
		PaymentMethod:     data.PaymentMethod,
		PaymentStatus:     string(data.PaymentStatus),
		DeliveryPartnerID: data.DeliveryPartnerID,
		EstimatedDelivery: data.EstimatedDelivery,
		ActualDelivery:    data.ActualDelivery,
		Notes:             data.Notes,
		Items:             items,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toOrderDomain(data *orderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        decimal.NewFromFloat(item.UnitPrice),
			Subtotal:         decimal.NewFromFloat(item.Subtotal),
			Notes:            item.Notes,
		})
	}

	return &entity.Order{
		OrderID:           data.OrderID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		DeliveryAddress:   toAddressDomain(data.DeliveryAddress),
		OrderDate:         data.OrderDate,
		TotalAmount:       decimal.NewFromFloat(data.TotalAmount),
		DeliveryFee:       decimal.NewFromFloat(data.DeliveryFee),
		TaxAmount:         decimal.NewFromFloat(data.TaxAmount),
		DiscountAmount:    decimal.NewFromFloat(data.DiscountAmount),
		FinalAmount:       decimal.NewFromFloat(data.FinalAmount),
		OrderStatus:       entity.OrderStatus(data.OrderStatus),
		PaymentMethod:     data.PaymentMethod,
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		DeliveryPartnerID: data.DeliveryPartnerID,
		EstimatedDelivery: data.EstimatedDelivery,
		ActualDelivery:    data.ActualDelivery,
		Notes:             data.Notes,
		Items:             items,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *reviewModel {
	if data == nil {
		return nil
	}

	return &reviewModel{
		ReviewID:          data.ReviewID,
		UserID:            data.UserID,
		OrderID:           data.OrderID,
		ProductID:         data.ProductID,
		StoreID:           data.StoreID,
		DeliveryPartnerID: data.DeliveryPartnerID,
		Rating:            data.Rating,
		Comment:           data.Comment,
		ReviewDate:        data.ReviewDate,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toReviewDomain(data *reviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ReviewID:          data.ReviewID,
		UserID:            data.UserID,
		OrderID:           data.OrderID,
		ProductID:         data.ProductID,
		StoreID:           data.StoreID,
		DeliveryPartnerID: data.DeliveryPartnerID,
		Rating:            data.Rating,
		Comment:           data.Comment,
		ReviewDate:        data.ReviewDate,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.DeliveryPartner) *partnerModel {
	if data == nil {
		return nil
	}

	return &partnerModel{
		DeliveryPartnerID:  data.DeliveryPartnerID,
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		VehicleType:        data.VehicleType,
		CurrentLatitude:    data.CurrentLatitude,
		CurrentLongitude:   data.CurrentLongitude,
		AvailabilityStatus: string(data.AvailabilityStatus),
		Rating:             data.Rating,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toPartnerDomain(data *partnerModel) *entity.DeliveryPartner {
	if data == nil {
		return nil
	}

	return &entity.DeliveryPartner{
		DeliveryPartnerID:  data.DeliveryPartnerID,
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		VehicleType:        data.VehicleType,
		CurrentLatitude:    data.CurrentLatitude,
		CurrentLongitude:   data.CurrentLongitude,
		AvailabilityStatus: entity.PartnerAvailability(data.AvailabilityStatus),
		Rating:             data.Rating,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
