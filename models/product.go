package models

import (
	"time"
)

// Product model corresponds to the 'products' table in the database.
type Product struct {
	Id           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  string    `json:"description"`
	Image        string    `gorm:"size:512" json:"image"`
	Brand        string    `gorm:"size:255" json:"brand"`
	Category     string    `gorm:"size:255" json:"category"`
	CountInStock int       `gorm:"not null" json:"countInStock"`
	NumReviews   int       `gorm:"not null" json:"numReviews"`
	OwnerID      uint      `json:"owner"` // set once at creation, never reassigned
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductInput is the request body accepted by create and update.
// numReviews is intentionally absent: it is not settable by callers.
type ProductInput struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	CountInStock int     `json:"countInStock"`
}

// Sample values substituted for omitted fields on create.
const (
	SampleName        = "Sample name"
	SampleImage       = "/images/sample.jpg"
	SampleBrand       = "Sample brand"
	SampleCategory    = "Sample category"
	SampleDescription = "Sample description"
)

// ApplyFields copies the input onto the product. With fillDefaults, falsy
// values (empty string, zero) are replaced by the sample defaults — the
// create path. Without it, values are copied verbatim, so an empty string
// clears the field — the update path. The falsy coercion conflates an
// explicit zero price with an omitted one; both end up as 0.
func ApplyFields(p *Product, in ProductInput, fillDefaults bool) {
	if fillDefaults {
		p.Name = orSample(in.Name, SampleName)
		p.Price = in.Price // zero either way
		p.Description = orSample(in.Description, SampleDescription)
		p.Image = orSample(in.Image, SampleImage)
		p.Brand = orSample(in.Brand, SampleBrand)
		p.Category = orSample(in.Category, SampleCategory)
		p.CountInStock = in.CountInStock
		p.NumReviews = 0
		return
	}
	p.Name = in.Name
	p.Price = in.Price
	p.Description = in.Description
	p.Image = in.Image
	p.Brand = in.Brand
	p.Category = in.Category
	p.CountInStock = in.CountInStock
}

func orSample(v, sample string) string {
	if v == "" {
		return sample
	}
	return v
}
