package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ShippingAddress where the order is delivered
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem product snapshot taken at checkout
type OrderItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Image     string  `json:"image,omitempty"`
}

// CreateOrderRequest checkout payload, also used for checkout events
type CreateOrderRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Phone           string          `json:"phone"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items" validate:"required,min=1,dive"`
	Subtotal        float64         `json:"subtotal" validate:"gte=0"`
	Tax             float64         `json:"tax" validate:"gte=0"`
	ShippingCost    float64         `json:"shippingCost" validate:"gte=0"`
	Total           float64         `json:"total" validate:"gte=0"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes,omitempty"`
	UserID          string          `json:"userId,omitempty"`
}

func (req CreateOrderRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	return entities.Order{
		UserID:    req.UserID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Shipping: entities.ShippingAddress{
			Address: req.ShippingAddress.Address,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		Items:         items,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		ShippingCost:  req.ShippingCost,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
}

// CreateOrderResponse identifier of the created order
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// UpdateStatusRequest new order status
type UpdateStatusRequest struct {
	OrderID string `json:"orderId,omitempty"`
	Status  string `json:"status" validate:"required"`
}

// Order stored order
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId,omitempty"`
	Email           string          `json:"email"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Phone           string          `json:"phone"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	ShippingCost    float64         `json:"shippingCost"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	StatusUpdatedAt *string         `json:"statusUpdatedAt,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	res := Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Email:     o.Email,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Phone:     o.Phone,
		ShippingAddress: ShippingAddress{
			Address: o.Shipping.Address,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
			Country: o.Shipping.Country,
		},
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		ShippingCost:  o.ShippingCost,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		Status:        string(o.Status),
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
	if o.StatusUpdatedAt != nil {
		ts := formatTime(*o.StatusUpdatedAt)
		res.StatusUpdatedAt = &ts
	}
	return res
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

// AddressRequest new address; street, city, state and zipCode are required
type AddressRequest struct {
	Label     string `json:"label"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (req AddressRequest) ToEntity() entities.AddressInput {
	return entities.AddressInput{
		Label:     req.Label,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}
}

// UpdateAddressRequest partial update; absent fields are left untouched
type UpdateAddressRequest struct {
	AddressID string  `json:"addressId,omitempty"`
	Label     *string `json:"label,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Street    *string `json:"street,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Country   *string `json:"country,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

func (req UpdateAddressRequest) ToEntity() entities.AddressPatch {
	return entities.AddressPatch{
		Label:     req.Label,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}
}

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	FullName  string `json:"fullName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func AddressesToJSON(book entities.AddressBook) []Address {
	out := make([]Address, 0, len(book))
	for _, a := range book {
		out = append(out, Address{
			ID:        a.ID,
			Label:     a.Label,
			FullName:  a.FullName,
			Phone:     a.Phone,
			Street:    a.Street,
			City:      a.City,
			State:     a.State,
			ZipCode:   a.ZipCode,
			Country:   a.Country,
			IsDefault: a.IsDefault,
		})
	}
	return out
}

type AddressesResponse struct {
	Success   bool      `json:"success"`
	Addresses []Address `json:"addresses"`
}

type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type WishlistEntry struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Price     float64  `json:"price"`
	Images    []string `json:"images"`
	Category  string   `json:"category,omitempty"`
	AddedAt   string   `json:"addedAt"`
}

func WishlistToJSON(entries []entities.WishlistEntry) []WishlistEntry {
	out := make([]WishlistEntry, 0, len(entries))
	for _, e := range entries {
		images := e.Images
		if images == nil {
			images = []string{}
		}
		out = append(out, WishlistEntry{
			ProductID: e.ProductID,
			Name:      e.Name,
			Slug:      e.Slug,
			Price:     e.Price,
			Images:    images,
			Category:  e.Category,
			AddedAt:   formatTime(e.AddedAt),
		})
	}
	return out
}

type WishlistResponse struct {
	Success  bool            `json:"success"`
	Wishlist []WishlistEntry `json:"wishlist"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (req CategoryRequest) ToEntity() entities.Category {
	return entities.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
	}
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (req UpdateCategoryRequest) ToEntity() entities.CategoryPatch {
	return entities.CategoryPatch{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
	}
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

type CategoryResponse struct {
	Success  bool     `json:"success"`
	Category Category `json:"category"`
}

type CategoriesResponse struct {
	Success    bool       `json:"success"`
	Categories []Category `json:"categories"`
}

type ProductRequest struct {
	Name         string   `json:"name" validate:"required"`
	Slug         string   `json:"slug,omitempty"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"gte=0"`
	ComparePrice float64  `json:"comparePrice,omitempty" validate:"gte=0"`
	Images       []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Category     string   `json:"category,omitempty"`
	Stock        int      `json:"stock" validate:"gte=0"`
	Featured     bool     `json:"featured"`
}

func (req ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Images:       req.Images,
		CategoryID:   req.Category,
		Stock:        req.Stock,
		Featured:     req.Featured,
	}
}

type UpdateProductRequest struct {
	Name         *string   `json:"name,omitempty"`
	Slug         *string   `json:"slug,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Price        *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	ComparePrice *float64  `json:"comparePrice,omitempty" validate:"omitempty,gte=0"`
	Images       *[]string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Category     *string   `json:"category,omitempty"`
	Stock        *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Featured     *bool     `json:"featured,omitempty"`
}

func (req UpdateProductRequest) ToEntity() entities.ProductPatch {
	return entities.ProductPatch{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Images:       req.Images,
		CategoryID:   req.Category,
		Stock:        req.Stock,
		Featured:     req.Featured,
	}
}

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	ComparePrice float64  `json:"comparePrice,omitempty"`
	Images       []string `json:"images"`
	Category     string   `json:"category,omitempty"`
	Stock        int      `json:"stock"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func ProductEntityToJSON(p entities.Product) Product {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Images:       images,
		Category:     p.CategoryID,
		Stock:        p.Stock,
		Featured:     p.Featured,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

type ProductsResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Addresses []Address `json:"addresses"`
	CreatedAt string    `json:"createdAt"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Addresses: AddressesToJSON(u.Addresses),
		CreatedAt: formatTime(u.CreatedAt),
	}
}

type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type SessionResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	User      User   `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
