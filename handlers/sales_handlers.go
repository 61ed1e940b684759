package handlers

import (
	"errors"
	"fmt"
	"log"

	"bistro/models"
	"bistro/store"

	"github.com/gofiber/fiber/v2"
)

// HandleListSales returns every row of the sales ledger in file order.
// GET /api/v1/sales
func HandleListSales(c *fiber.Ctx) error {
	sales, err := salesLedger.List()
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to read sales ledger"})
	}
	if sales == nil {
		sales = []models.SaleRecord{}
	}
	return c.JSON(fiber.Map{"sales": sales})
}

// HandleMergeSales appends new sale rows to the ledger, skipping rows whose
// (date, item) pair already exists for that day. When every row was skipped
// as a duplicate the response reports status "duplicate" with added 0.
// POST /api/v1/sales
func HandleMergeSales(c *fiber.Ctx) error {
	var input []models.SaleRecord
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if len(input) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No sale records provided"})
	}
	for _, rec := range input {
		if err := validate.Struct(rec); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid sale record: %v", err)})
		}
	}

	added, dups, err := salesLedger.Merge(input)
	if err != nil {
		log.Printf("Error merging sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to write sales ledger"})
	}

	if added == 0 && dups > 0 {
		return c.JSON(fiber.Map{"status": "duplicate", "added": 0})
	}
	return c.JSON(fiber.Map{"status": "success", "added": added})
}

// HandleUpdateSale replaces the quantity of an existing (date, item) row.
// PUT /api/v1/sales
func HandleUpdateSale(c *fiber.Ctx) error {
	var rec models.SaleRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid sale record: %v", err)})
	}

	if err := salesLedger.Update(rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Sale not found"})
		}
		log.Printf("Error updating sale: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update sale"})
	}
	return c.JSON(fiber.Map{"status": "updated", "sale": rec})
}

// HandleDeleteSale removes the (date, item) row named in the request body.
// DELETE /api/v1/sales
func HandleDeleteSale(c *fiber.Ctx) error {
	var req models.DeleteSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid delete request: %v", err)})
	}

	if err := salesLedger.Remove(req.Date, req.Item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Sale not found"})
		}
		log.Printf("Error deleting sale: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete sale"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
