package handlers

import (
	"github.com/go-playground/validator/v10"

	"bistro/forecast"
	"bistro/store"
)

var (
	salesLedger *store.SalesLedger
	recipeBook  *store.RecipeBook
	forecaster  *forecast.Client

	validate = validator.New()
)

// Init wires the handlers to their stores and the predictor client. Called
// once from main (and from tests with temp-dir stores).
func Init(ledger *store.SalesLedger, book *store.RecipeBook, fc *forecast.Client) {
	salesLedger = ledger
	recipeBook = book
	forecaster = fc
}
