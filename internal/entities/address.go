package entities

import "strings"

const (
	DefaultCountry      = "Bangladesh"
	DefaultAddressLabel = "home"
)

type Address struct {
	ID        string
	Label     string
	FullName  string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsDefault bool
}

// AddressInput carries the fields of a new address before trimming and
// defaulting.
type AddressInput struct {
	Label     string
	FullName  string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsDefault bool
}

// AddressPatch is a partial update: nil fields are left untouched.
type AddressPatch struct {
	Label     *string
	FullName  *string
	Phone     *string
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	IsDefault *bool
}

// NewAddress trims the input, applies defaults and checks required fields.
func NewAddress(id string, in AddressInput) (Address, error) {
	a := Address{
		ID:        id,
		Label:     strings.TrimSpace(in.Label),
		FullName:  strings.TrimSpace(in.FullName),
		Phone:     strings.TrimSpace(in.Phone),
		Street:    strings.TrimSpace(in.Street),
		City:      strings.TrimSpace(in.City),
		State:     strings.TrimSpace(in.State),
		ZipCode:   strings.TrimSpace(in.ZipCode),
		Country:   strings.TrimSpace(in.Country),
		IsDefault: in.IsDefault,
	}
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	if a.Label == "" {
		a.Label = DefaultAddressLabel
	}
	if err := a.validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) validate() error {
	required := []struct{ field, value string }{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
	}
	for _, r := range required {
		if r.value == "" {
			return newValidationError(r.field, "is required")
		}
	}
	return nil
}

func (a *Address) apply(p AddressPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&a.Label, p.Label)
	set(&a.FullName, p.FullName)
	set(&a.Phone, p.Phone)
	set(&a.Street, p.Street)
	set(&a.City, p.City)
	set(&a.State, p.State)
	set(&a.ZipCode, p.ZipCode)
	set(&a.Country, p.Country)
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
}

// AddressBook is the ordered address sequence embedded in a user. Every
// mutating method ends with Normalize, so a non-empty book always has
// exactly one default entry.
type AddressBook []Address

func (b AddressBook) Index(id string) int {
	for i := range b {
		if b[i].ID == id {
			return i
		}
	}
	return -1
}

func (b AddressBook) Default() (Address, bool) {
	for _, a := range b {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}

func (b AddressBook) clearDefault() {
	for i := range b {
		b[i].IsDefault = false
	}
}

// Add appends a. The first address of an empty book is always the default;
// a new default takes the flag from every existing entry.
func (b *AddressBook) Add(a Address) {
	if len(*b) == 0 {
		a.IsDefault = true
	}
	if a.IsDefault {
		b.clearDefault()
	}
	*b = append(*b, a)
	b.Normalize()
}

func (b *AddressBook) Update(id string, p AddressPatch) error {
	i := b.Index(id)
	if i < 0 {
		return ErrAddressNotFound
	}

	updated := (*b)[i]
	updated.apply(p)
	if err := updated.validate(); err != nil {
		return err
	}

	if p.IsDefault != nil && *p.IsDefault {
		b.clearDefault()
	}
	(*b)[i] = updated
	b.Normalize()
	return nil
}

// Remove deletes the entry with id. If it was the default, the first
// remaining entry is promoted.
func (b *AddressBook) Remove(id string) error {
	i := b.Index(id)
	if i < 0 {
		return ErrAddressNotFound
	}
	*b = append((*b)[:i:i], (*b)[i+1:]...)
	b.Normalize()
	return nil
}

// Normalize keeps the first default entry and clears the rest. With no
// default at all, the first entry becomes the default.
func (b AddressBook) Normalize() {
	if len(b) == 0 {
		return
	}
	seen := false
	for i := range b {
		if b[i].IsDefault {
			if seen {
				b[i].IsDefault = false
			}
			seen = true
		}
	}
	if !seen {
		b[0].IsDefault = true
	}
}
