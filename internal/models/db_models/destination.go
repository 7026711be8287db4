package db_models

import "github.com/lib/pq"

type Destination struct {
	BaseModel
	Name        string
	Region      string
	Country     string
	Latitude    float64
	Longitude   float64
	Description string
	Images      pq.StringArray `gorm:"type:text[]"`

	Tags []Tag `gorm:"many2many:destination_tags"`
}

type Tag struct {
	BaseModel
	Name string `gorm:"uniqueIndex"`
}
