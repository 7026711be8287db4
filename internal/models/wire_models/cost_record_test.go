package wire_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/db_models"
)

func TestCostNormalizeAmountFallback(t *testing.T) {
	var legacy CostRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Bus","cost":20000}`), &legacy))
	assert.Equal(t, 20000.0, legacy.Normalize("VND").Amount)

	var both CostRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Bus","amount":15000,"cost":20000}`), &both))
	assert.Equal(t, 15000.0, both.Normalize("VND").Amount, "amount wins over cost")

	var neither CostRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Bus"}`), &neither))
	assert.Equal(t, 0.0, neither.Normalize("VND").Amount)
}

func TestCostNormalizeDefaults(t *testing.T) {
	c := CostRecord{Title: "Taxi"}
	out := c.Normalize("")

	assert.Equal(t, db_models.CostCategoryOther, out.Category)
	assert.Equal(t, db_models.DefaultCurrency, out.Currency)
	assert.Equal(t, "Taxi", out.Description, "description falls back to title")
}

func TestCostNormalizeTripCurrencyFallback(t *testing.T) {
	c := CostRecord{Title: "Hotel", Category: "accommodation"}
	out := c.Normalize("USD")

	assert.Equal(t, "USD", out.Currency)
	assert.Equal(t, "accommodation", out.Category)
}

func TestCostNormalizePassesThroughNonPositiveAmounts(t *testing.T) {
	// Historical rows may hold refunds or zero amounts; normalization must not
	// reject them. Positivity is a creation-form rule only.
	zero := 0.0
	neg := -5000.0

	assert.Equal(t, 0.0, (&CostRecord{Title: "x", Amount: &zero}).Normalize("VND").Amount)
	assert.Equal(t, -5000.0, (&CostRecord{Title: "x", Amount: &neg}).Normalize("VND").Amount)
}
