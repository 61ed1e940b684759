package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"bistro/models"
)

// RecipeBook is a JSON-array-backed collection of recipes keyed by dish name.
// Dish names are matched case-insensitively, so "Tofu Bowl" and "tofu bowl"
// are the same key. Every operation is a full read-modify-write of the
// backing file, serialized behind a mutex.
type RecipeBook struct {
	mu   sync.Mutex
	path string
}

// NewRecipeBook returns a recipe book backed by the JSON file at path.
func NewRecipeBook(path string) *RecipeBook {
	return &RecipeBook{path: path}
}

// List returns all recipes. A missing file is an empty book, not an error.
func (b *RecipeBook) List() ([]models.Recipe, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readAll()
}

// Add appends a new recipe. Returns ErrDuplicate if a recipe with the same
// dish name already exists; the collection is left unchanged in that case.
func (b *RecipeBook) Add(r models.Recipe) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	recipes, err := b.readAll()
	if err != nil {
		return err
	}
	for _, existing := range recipes {
		if strings.EqualFold(existing.Item, r.Item) {
			return ErrDuplicate
		}
	}
	return b.writeAll(append(recipes, r))
}

// Replace overwrites the recipe with the same dish name wholesale. Returns
// ErrNotFound if no recipe matches.
func (b *RecipeBook) Replace(r models.Recipe) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	recipes, err := b.readAll()
	if err != nil {
		return err
	}
	for i := range recipes {
		if strings.EqualFold(recipes[i].Item, r.Item) {
			recipes[i] = r
			return b.writeAll(recipes)
		}
	}
	return ErrNotFound
}

// Remove deletes the recipe with the given dish name. Returns ErrNotFound if
// no recipe matches.
func (b *RecipeBook) Remove(item string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	recipes, err := b.readAll()
	if err != nil {
		return err
	}
	kept := recipes[:0]
	for _, r := range recipes {
		if strings.EqualFold(r.Item, item) {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == len(recipes) {
		return ErrNotFound
	}
	return b.writeAll(kept)
}

func (b *RecipeBook) readAll() ([]models.Recipe, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read recipe book: %w", err)
	}
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse recipe book: %w", err)
	}
	return recipes, nil
}

func (b *RecipeBook) writeAll(recipes []models.Recipe) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recipe book: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(b.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write recipe book: %w", err)
	}
	return nil
}
