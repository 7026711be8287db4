package db_models

import "github.com/google/uuid"

const (
	CostCategoryTransport     = "transport"
	CostCategoryAccommodation = "accommodation"
	CostCategoryFood          = "food"
	CostCategoryEntertainment = "entertainment"
	CostCategoryShopping      = "shopping"
	CostCategoryOther         = "other"
)

type Cost struct {
	BaseModel
	RouteID     uuid.UUID
	Title       string
	Description string
	Amount      float64
	Category    string
	Currency    string
}

func IsValidCostCategory(c string) bool {
	switch c {
	case CostCategoryTransport, CostCategoryAccommodation, CostCategoryFood,
		CostCategoryEntertainment, CostCategoryShopping, CostCategoryOther:
		return true
	}
	return false
}
