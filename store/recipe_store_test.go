package store

import (
	"os"
	"path/filepath"
	"testing"

	"bistro/models"

	"github.com/stretchr/testify/assert"
)

func newTestBook(t *testing.T) (*RecipeBook, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	return NewRecipeBook(path), path
}

func TestAddThenListRoundTrip(t *testing.T) {
	book, _ := newTestBook(t)

	recipe := models.Recipe{
		Item:        "Tofu Bowl",
		Ingredients: map[string]string{"tofu": "200 g", "rice": "150 g"},
	}
	assert.NoError(t, book.Add(recipe))

	got, err := book.List()
	assert.NoError(t, err)
	assert.Equal(t, []models.Recipe{recipe}, got)
}

func TestAddDuplicateLeavesCollectionUnchanged(t *testing.T) {
	book, path := newTestBook(t)

	original := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}
	assert.NoError(t, book.Add(original))

	before, err := os.ReadFile(path)
	assert.NoError(t, err)

	err = book.Add(models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "500 g"}})
	assert.ErrorIs(t, err, ErrDuplicate)

	after, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddDuplicateIsCaseInsensitive(t *testing.T) {
	book, _ := newTestBook(t)

	assert.NoError(t, book.Add(models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}))

	err := book.Add(models.Recipe{Item: "tofu bowl", Ingredients: map[string]string{"tofu": "200 g"}})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestReplaceOverwritesIngredients(t *testing.T) {
	book, _ := newTestBook(t)

	assert.NoError(t, book.Add(models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}))

	updated := models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "250 g", "scallions": "20 g"}}
	assert.NoError(t, book.Replace(updated))

	got, err := book.List()
	assert.NoError(t, err)
	assert.Equal(t, []models.Recipe{updated}, got)
}

func TestReplaceNotFound(t *testing.T) {
	book, _ := newTestBook(t)

	err := book.Replace(models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveRecipe(t *testing.T) {
	book, _ := newTestBook(t)

	assert.NoError(t, book.Add(models.Recipe{Item: "Tofu Bowl", Ingredients: map[string]string{"tofu": "200 g"}}))
	assert.NoError(t, book.Add(models.Recipe{Item: "Ramen", Ingredients: map[string]string{"noodles": "120 g"}}))

	assert.NoError(t, book.Remove("Tofu Bowl"))

	got, err := book.List()
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Ramen", got[0].Item)
}

func TestRemoveNotFoundRecipe(t *testing.T) {
	book, _ := newTestBook(t)

	err := book.Remove("Tofu Bowl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMissingRecipeFileIsEmpty(t *testing.T) {
	book, _ := newTestBook(t)

	got, err := book.List()
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestListRejectsCorruptRecipeFile(t *testing.T) {
	book, path := newTestBook(t)

	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := book.List()
	assert.Error(t, err)
}
