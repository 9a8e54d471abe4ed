package domain

import "time"

// Crop is a user-owned planting record.
type Crop struct {
	ID                   string    `json:"id" bson:"_id,omitempty"`
	Name                 string    `json:"name" bson:"name"`
	Variety              string    `json:"variety" bson:"variety"`
	Quantity             float64   `json:"quantity" bson:"quantity"`
	PlantedDate          time.Time `json:"planted_date" bson:"planted_date"`
	EstimatedHarvestDate time.Time `json:"estimated_harvest_date" bson:"estimated_harvest_date"`
	OwnerID              string    `json:"owner_id" bson:"owner_id"`
	OwnerName            string    `json:"owner_name,omitempty" bson:"owner_name,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}
