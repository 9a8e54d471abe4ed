package domain

import "time"

// DefaultProductImage is used when a product is created without an image.
const DefaultProductImage = "https://placehold.co/600x400/cccccc/ffffff?text=No+Image"

// Product is an admin-managed marketplace listing. Reads are public.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImgURL      string    `json:"img_url" bson:"img_url"`
	InStock     bool      `json:"in_stock" bson:"in_stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
