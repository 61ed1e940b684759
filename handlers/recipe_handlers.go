package handlers

import (
	"errors"
	"fmt"
	"log"

	"bistro/models"
	"bistro/store"

	"github.com/gofiber/fiber/v2"
)

// HandleListRecipes returns the full recipe collection.
// GET /api/v1/recipes
func HandleListRecipes(c *fiber.Ctx) error {
	recipes, err := recipeBook.List()
	if err != nil {
		log.Printf("Error listing recipes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to read recipe book"})
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return c.JSON(recipes)
}

// HandleAddRecipe creates a new recipe. Dish names are unique
// (case-insensitive); a duplicate is rejected with 409.
// POST /api/v1/recipes
func HandleAddRecipe(c *fiber.Ctx) error {
	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(recipe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid recipe: %v", err)})
	}

	if err := recipeBook.Add(recipe); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Recipe %q already exists", recipe.Item)})
		}
		log.Printf("Error adding recipe: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to write recipe book"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "added", "item": recipe.Item})
}

// HandleUpdateRecipe replaces an existing recipe wholesale, keyed by dish
// name.
// PUT /api/v1/recipes
func HandleUpdateRecipe(c *fiber.Ctx) error {
	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(recipe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid recipe: %v", err)})
	}

	if err := recipeBook.Replace(recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Recipe not found"})
		}
		log.Printf("Error updating recipe: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to write recipe book"})
	}
	return c.JSON(fiber.Map{"status": "updated", "item": recipe.Item})
}

// HandleDeleteRecipe removes a recipe by dish name.
// DELETE /api/v1/recipes
func HandleDeleteRecipe(c *fiber.Ctx) error {
	var req models.DeleteRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Item == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing item name"})
	}

	if err := recipeBook.Remove(req.Item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Recipe not found"})
		}
		log.Printf("Error deleting recipe: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to write recipe book"})
	}
	return c.JSON(fiber.Map{"status": "deleted", "item": req.Item})
}
