package entities

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Addresses    AddressBook
	Wishlist     WishlistItems
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Session is an issued credential together with its owner.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
