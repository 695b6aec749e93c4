package entities

import (
	"strings"
	"time"
	"unicode"
)

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CategoryPatch struct {
	Name        *string
	Slug        *string
	Description *string
	Image       *string
}

func (c *Category) Apply(p CategoryPatch) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Slug != nil {
		c.Slug = Slugify(*p.Slug)
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}

// Prepare trims, derives the slug and validates before persisting.
func (c *Category) Prepare() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return newValidationError("name", "is required")
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if c.Slug == "" {
		return newValidationError("slug", "is required")
	}
	return nil
}

type Product struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	Price        float64
	ComparePrice float64
	Images       []string
	CategoryID   string
	Stock        int
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProductPatch struct {
	Name         *string
	Slug         *string
	Description  *string
	Price        *float64
	ComparePrice *float64
	Images       *[]string
	CategoryID   *string
	Stock        *int
	Featured     *bool
}

func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Slug != nil {
		p.Slug = Slugify(*patch.Slug)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ComparePrice != nil {
		p.ComparePrice = *patch.ComparePrice
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}

func (p *Product) Prepare() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return newValidationError("name", "is required")
	}
	if p.Price < 0 {
		return newValidationError("price", "must not be negative")
	}
	if p.Stock < 0 {
		return newValidationError("stock", "must not be negative")
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if p.Slug == "" {
		return newValidationError("slug", "is required")
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return nil
}

type ProductFilter struct {
	CategoryID string
	Search     string
	Featured   *bool
}

// Slugify lowercases s and joins its letter and digit runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
