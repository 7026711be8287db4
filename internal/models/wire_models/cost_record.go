package wire_models

import (
	"wander/internal/models/db_models"
)

// CostRecord is the wire shape of an expense line. Older rows carry the
// amount under "cost" instead of "amount"; "amount" wins when both exist.
type CostRecord struct {
	ID          string   `json:"id"`
	RouteID     string   `json:"route_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Cost        *float64 `json:"cost"`
	Category    string   `json:"category"`
	Currency    string   `json:"currency"`
}

// Normalize maps the record onto the canonical cost shape. tripCurrency is
// the owning trip's currency, used when the record carries none; it itself
// falls back to VND. Amounts pass through unvalidated — positivity is
// enforced at the creation boundary, not here, because historical rows may
// legitimately hold zero or negative values.
func (c *CostRecord) Normalize(tripCurrency string) db_models.Cost {
	amount := 0.0
	switch {
	case c.Amount != nil:
		amount = *c.Amount
	case c.Cost != nil:
		amount = *c.Cost
	}

	// Missing or unrecognized categories collapse to "other".
	category := c.Category
	if !db_models.IsValidCostCategory(category) {
		category = db_models.CostCategoryOther
	}

	currency := c.Currency
	if currency == "" {
		currency = tripCurrency
	}
	if currency == "" {
		currency = db_models.DefaultCurrency
	}

	description := c.Description
	if description == "" {
		description = c.Title
	}

	return db_models.Cost{
		Title:       c.Title,
		Description: description,
		Amount:      amount,
		Category:    category,
		Currency:    currency,
	}
}
