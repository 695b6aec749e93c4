package repo

import (
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID     primitive.ObjectID  `bson:"_id,omitempty"`
	UserID *primitive.ObjectID `bson:"userId,omitempty"`

	Email     string   `bson:"email"`
	FirstName string   `bson:"firstName,omitempty"`
	LastName  string   `bson:"lastName,omitempty"`
	Phone     string   `bson:"phone,omitempty"`
	Shipping  Shipping `bson:"shippingAddress"`

	Items []OrderItem `bson:"items"`

	Subtotal     float64 `bson:"subtotal"`
	Tax          float64 `bson:"tax"`
	ShippingCost float64 `bson:"shippingCost"`
	Total        float64 `bson:"total"`

	PaymentMethod string `bson:"paymentMethod,omitempty"`
	Notes         string `bson:"notes,omitempty"`

	Status          string     `bson:"status"`
	StatusUpdatedAt *time.Time `bson:"statusUpdatedAt,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt"`
}

type Shipping struct {
	Address string `bson:"address,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty"`
	Country string `bson:"country,omitempty"`
}

// ProductID is stored as a string so both ObjectID hex and external product
// keys survive a round trip.
type OrderItem struct {
	ProductID string  `bson:"productId"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
	Image     string  `bson:"image,omitempty"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Addresses []Address          `bson:"addresses"`
	Wishlist  []WishlistItem     `bson:"wishlist"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type Address struct {
	ID        primitive.ObjectID `bson:"_id"`
	Label     string             `bson:"label"`
	FullName  string             `bson:"fullName,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	State     string             `bson:"state"`
	ZipCode   string             `bson:"zipCode"`
	Country   string             `bson:"country"`
	IsDefault bool               `bson:"isDefault"`
}

type WishlistItem struct {
	ProductID primitive.ObjectID `bson:"productId"`
	AddedAt   time.Time          `bson:"addedAt"`
}

type Wishlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Items     []WishlistItem     `bson:"items"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type Product struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Name         string              `bson:"name"`
	Slug         string              `bson:"slug"`
	Description  string              `bson:"description,omitempty"`
	Price        float64             `bson:"price"`
	ComparePrice float64             `bson:"comparePrice,omitempty"`
	Images       []string            `bson:"images"`
	Category     *primitive.ObjectID `bson:"category,omitempty"`
	Stock        int                 `bson:"stock"`
	Featured     bool                `bson:"featured"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func OrderToEntity(o Order) entities.Order {
	order := entities.Order{
		ID:        o.ID.Hex(),
		Email:     o.Email,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Phone:     o.Phone,
		Shipping: entities.ShippingAddress{
			Address: o.Shipping.Address,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
			Country: o.Shipping.Country,
		},
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		Status:          entities.OrderStatus(o.Status),
		StatusUpdatedAt: o.StatusUpdatedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.UserID != nil {
		order.UserID = o.UserID.Hex()
	}

	order.Items = make([]entities.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return order
}

func OrderFromEntity(o entities.Order) Order {
	doc := Order{
		Email:     o.Email,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Phone:     o.Phone,
		Shipping: Shipping{
			Address: o.Shipping.Address,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
			Country: o.Shipping.Country,
		},
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		Status:          string(o.Status),
		StatusUpdatedAt: o.StatusUpdatedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if uid, err := primitive.ObjectIDFromHex(o.UserID); err == nil {
		doc.UserID = &uid
	}

	doc.Items = make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		doc.Items = append(doc.Items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return doc
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:        a.ID.Hex(),
		Label:     a.Label,
		FullName:  a.FullName,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
	}
}

func AddressesFromEntity(book entities.AddressBook) ([]Address, error) {
	out := make([]Address, 0, len(book))
	for _, a := range book {
		id, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Address{
			ID:        id,
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
	return out, nil
}

func WishlistItemsToEntity(items []WishlistItem) entities.WishlistItems {
	out := make(entities.WishlistItems, 0, len(items))
	for _, it := range items {
		out = append(out, entities.WishlistItem{ProductID: it.ProductID.Hex(), AddedAt: it.AddedAt})
	}
	return out
}

func WishlistItemsFromEntity(items entities.WishlistItems) ([]WishlistItem, error) {
	out := make([]WishlistItem, 0, len(items))
	for _, it := range items {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, WishlistItem{ProductID: id, AddedAt: it.AddedAt})
	}
	return out, nil
}

func UserToEntity(u User) entities.User {
	book := make(entities.AddressBook, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		book = append(book, AddressToEntity(a))
	}
	return entities.User{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		Role:         u.Role,
		Addresses:    book,
		Wishlist:     WishlistItemsToEntity(u.Wishlist),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func WishlistToEntity(w Wishlist) entities.Wishlist {
	return entities.Wishlist{
		ID:        w.ID.Hex(),
		UserID:    w.UserID.Hex(),
		Items:     WishlistItemsToEntity(w.Items),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	product := entities.Product{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Images:       p.Images,
		Stock:        p.Stock,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Category != nil {
		product.CategoryID = p.Category.Hex()
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	return product
}

func ProductFromEntity(p entities.Product) Product {
	doc := Product{
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		Images:       p.Images,
		Stock:        p.Stock,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if id, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = id
	}
	if cid, err := primitive.ObjectIDFromHex(p.CategoryID); err == nil {
		doc.Category = &cid
	}
	return doc
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CategoryFromEntity(c entities.Category) Category {
	doc := Category{
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if id, err := primitive.ObjectIDFromHex(c.ID); err == nil {
		doc.ID = id
	}
	return doc
}
