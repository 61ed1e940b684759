package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"bistro/models"

	"github.com/stretchr/testify/assert"
)

func TestRecipeAddAndList(t *testing.T) {
	app := setupApp(t, "")

	recipe := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "added", body["status"])
	assert.Equal(t, "Tofu Bowl", body["item"])

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/recipes", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var recipes []models.Recipe
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&recipes))
	assert.Equal(t, []models.Recipe{recipe}, recipes)
}

func TestRecipeAddDuplicateConflict(t *testing.T) {
	app := setupApp(t, "")

	recipe := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRecipeAddRejectsMissingIngredients(t *testing.T) {
	app := setupApp(t, "")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", models.Recipe{Item: "Tofu Bowl"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecipeUpdateReplacesIngredients(t *testing.T) {
	app := setupApp(t, "")

	recipe := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	updated := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "250 g", "scallions": "20 g"}}
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/v1/recipes", updated))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/recipes", nil))
	assert.NoError(t, err)

	var recipes []models.Recipe
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&recipes))
	assert.Equal(t, []models.Recipe{updated}, recipes)
}

func TestRecipeUpdateNotFound(t *testing.T) {
	app := setupApp(t, "")

	recipe := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipeDelete(t *testing.T) {
	app := setupApp(t, "")

	recipe := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/recipes", recipe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/recipes", models.DeleteRecipeRequest{Item: "Tofu Bowl"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "deleted", body["status"])
	assert.Equal(t, "Tofu Bowl", body["item"])
}

func TestRecipeDeleteMissingItemName(t *testing.T) {
	app := setupApp(t, "")

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/recipes", models.DeleteRecipeRequest{}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecipeDeleteNotFound(t *testing.T) {
	app := setupApp(t, "")

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/recipes", models.DeleteRecipeRequest{Item: "Tofu Bowl"}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
