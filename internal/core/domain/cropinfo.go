package domain

import "time"

// CropInfo is admin-curated reference data about a crop species.
// Publicly readable, mutated only by admins.
type CropInfo struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Name             string    `json:"name" bson:"name"`
	ScientificName   string    `json:"scientific_name,omitempty" bson:"scientific_name,omitempty"`
	Season           string    `json:"season,omitempty" bson:"season,omitempty"`
	TemperatureRange string    `json:"temperature_range,omitempty" bson:"temperature_range,omitempty"`
	RainfallRange    string    `json:"rainfall_range,omitempty" bson:"rainfall_range,omitempty"`
	SoilType         string    `json:"soil_type,omitempty" bson:"soil_type,omitempty"`
	SowingTime       string    `json:"sowing_time,omitempty" bson:"sowing_time,omitempty"`
	HarvestTime      string    `json:"harvest_time,omitempty" bson:"harvest_time,omitempty"`
	Duration         string    `json:"duration,omitempty" bson:"duration,omitempty"`
	ImgURL           string    `json:"img_url,omitempty" bson:"img_url,omitempty"`
	Pesticides       []string  `json:"pesticides,omitempty" bson:"pesticides,omitempty"`
	Fertilizers      []string  `json:"fertilizers,omitempty" bson:"fertilizers,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
