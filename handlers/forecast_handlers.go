package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"bistro/forecast"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandlePredict runs a sales and inventory forecast over the requested
// horizon. The current ledger snapshot and recipe collection are sent to the
// external predictor; its validated response is returned unchanged.
// POST /api/v1/predict
func HandlePredict(c *fiber.Ctx) error {
	horizon, ok := parseHorizon(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Unknown horizon; expected 7d, 30d or 365d"})
	}

	result, err := runForecast(c.Context(), horizon)
	if err != nil {
		var schemaErr *forecast.SchemaError
		if errors.As(err, &schemaErr) {
			log.Printf("Predictor schema error: %v", schemaErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": schemaErr.Error()})
		}
		log.Printf("Forecast failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Forecasting service unavailable"})
	}
	return c.JSON(result)
}

// HandleForecastInsights runs a forecast and asks Gemini for a
// human-readable summary of the predicted sales and inventory needs.
// POST /api/v1/forecast/insights
func HandleForecastInsights(c *fiber.Ctx) error {
	horizon, ok := parseHorizon(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Unknown horizon; expected 7d, 30d or 365d"})
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
		}
	}

	result, err := runForecast(c.Context(), horizon)
	if err != nil {
		log.Printf("Forecast failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Forecasting service unavailable"})
	}

	analysis, err := generateForecastAnalysis(c.Context(), req.Prompt, horizon, result)
	if err != nil {
		log.Printf("Error generating forecast analysis: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate analysis"})
	}
	return c.JSON(fiber.Map{"status": "success", "horizon": horizon, "analysis": analysis})
}

// parseHorizon reads the optional horizon from the request body and
// normalizes it, defaulting to the weekly window.
func parseHorizon(c *fiber.Ctx) (string, bool) {
	var req struct {
		Horizon string `json:"horizon"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return "", false
		}
	}
	horizon, err := forecast.NormalizeHorizon(req.Horizon)
	if err != nil {
		return "", false
	}
	return horizon, true
}

// runForecast loads read snapshots of both stores and delegates to the
// predictor. The stores are never mutated here.
func runForecast(ctx context.Context, horizon string) (*forecast.Result, error) {
	salesCSV, err := salesLedger.Snapshot()
	if err != nil {
		return nil, err
	}
	recipes, err := recipeBook.List()
	if err != nil {
		return nil, err
	}
	return forecaster.Predict(ctx, salesCSV, recipes, horizon)
}

// generateForecastAnalysis uses Gemini to turn a raw forecast into advice
// for the kitchen.
func generateForecastAnalysis(ctx context.Context, userPrompt, horizon string, result *forecast.Result) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")

	jsonData, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to serialize forecast: %w", err)
	}
	if userPrompt == "" {
		userPrompt = "What should the kitchen prepare and restock?"
	}

	analysisPrompt := fmt.Sprintf(
		`You are a helpful AI assistant for a restaurant. The user asked: "%s". Below is a %s sales and inventory forecast produced from the restaurant's sales ledger and recipe book. Based on this data, provide a concise and helpful analysis:

		Data: %s`,
		userPrompt,
		horizon,
		string(jsonData),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(analysisPrompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}
	return fmt.Sprint(resp.Candidates[0].Content.Parts[0]), nil
}
