package domain

import "time"

// Farm is a user-owned record of a physical farm.
type Farm struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Location  string    `json:"location" bson:"location"`
	AreaSize  float64   `json:"area_size" bson:"area_size"`
	CropType  string    `json:"crop_type" bson:"crop_type"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	OwnerName string    `json:"owner_name,omitempty" bson:"owner_name,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
