package models

import "time"

type Product struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Price             VND            `json:"price"`
	AvailableQuantity int            `json:"available_quantity"`
	SoldQuantity      int            `json:"sold_quantity"`
	Rating            float64        `json:"rating"`
	Images            []ProductImage `json:"images"`
	Categories        []Category     `json:"categories"`
	Store             Store          `json:"store"`
	CreatedDate       time.Time      `json:"created_date"`
	UpdatedDate       time.Time      `json:"updated_date"`
}

type ProductImage struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Thumbnail returns the first listing image, empty when none uploaded.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Image
}

type Comment struct {
	ID          int       `json:"id"`
	User        User      `json:"user"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	CreatedDate time.Time `json:"created_date"`
}
