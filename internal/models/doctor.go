package models

import "fmt"

// Doctor represents a doctor listing shown on the public site
type Doctor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Hospital    string `json:"hospital"`
	City        string `json:"city"`
	Specialty   string `json:"specialty"`
	Languages   string `json:"languages"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`
}

// TableName pins the table name used by the schema DDL.
func (Doctor) TableName() string {
	return "doctors"
}

// PlaceholderImageURL returns the generated image used when a listing has none.
func PlaceholderImageURL(specialty string) string {
	return fmt.Sprintf("https://source.unsplash.com/random/400x300/?doctor,%s", specialty)
}

// EnsureImage fills in the placeholder image when ImageURL is blank.
func (d *Doctor) EnsureImage() {
	if d.ImageURL == "" {
		d.ImageURL = PlaceholderImageURL(d.Specialty)
	}
}
