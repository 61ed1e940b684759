package models

// SaleRecord is one row of the sales ledger: how many units of an item were
// sold on a given day. At most one record exists per (date, item) pair.
type SaleRecord struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Item string `json:"item" validate:"required"`
	Qty  int    `json:"qty" validate:"gte=0"`
}

// Recipe maps a dish to the ingredients needed to make one serving.
// Ingredient values are free-form "quantity unit" strings, e.g. "200 g".
type Recipe struct {
	Item        string            `json:"item" validate:"required"`
	Ingredients map[string]string `json:"ingredients" validate:"required,min=1"`
}

// DeleteSaleRequest identifies a ledger row to remove.
type DeleteSaleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Item string `json:"item" validate:"required"`
}

// DeleteRecipeRequest identifies a recipe to remove.
type DeleteRecipeRequest struct {
	Item string `json:"item"`
}

// PredictRequest carries the optional forecast horizon ("7d", "30d", "365d").
type PredictRequest struct {
	Horizon string `json:"horizon"`
}

// InsightsRequest asks for an AI summary of a forecast.
type InsightsRequest struct {
	Prompt  string `json:"prompt"`
	Horizon string `json:"horizon"`
}
