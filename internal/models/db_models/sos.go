package db_models

import "github.com/google/uuid"

type EmergencyContact struct {
	BaseModel
	AccountID    uuid.UUID
	Name         string
	Phone        string
	Email        string
	Relationship string
}

const (
	SOSAlertStatusOpen     = "open"
	SOSAlertStatusResolved = "resolved"
)

type SOSAlert struct {
	BaseModel
	AccountID     uuid.UUID
	Latitude      float64
	Longitude     float64
	Message       string
	Status        string
	NotifiedCount int
}
