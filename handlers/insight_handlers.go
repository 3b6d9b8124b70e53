package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/models"
	"app/reports"
)

// HandleGetReportInsight asks Gemini for a short narrative over the current
// business summary. The rule-based recommendations never depend on this; a
// failing AI call only fails this endpoint.
// GET /api/v1/merchant/reports/insight?period=daily|weekly|monthly
func HandleGetReportInsight(c *fiber.Ctx) error {
	ctx := c.UserContext()

	summary, err := engine.BusinessSummary(ctx, c.Query("period", reports.PeriodMonthly))
	if err != nil {
		return reportError(c, "report insight", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(constructInsightPrompt(summary)))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Failed to generate insight from AI"})
	}

	insight, err := parseInsightResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": summary, "insight": insight}})
}

// constructInsightPrompt turns a business summary into a narration request.
func constructInsightPrompt(s *models.BusinessSummary) string {
	jsonFormat := `{"summary":"string","highlights":["string",...],"concerns":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Write a brief narrative for a shop owner from the figures below.

        **Period:** %s
        **Total sales:** %.2f across %d orders (average order %.2f)
        **Sales trend:** %s (%.2f%% growth between window halves)
        **Inventory:** %d products, %d low on stock, stock value %.2f

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, s.Period, s.Sales.TotalSales, s.Sales.TotalOrders, s.Sales.AverageOrderValue,
		s.Sales.Trend.Classification, s.Sales.Trend.Growth,
		s.Inventory.TotalProducts, s.Inventory.LowStockCount, s.Inventory.TotalValue,
		jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into a structured insight.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*models.ReportInsight, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}

	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var insight models.ReportInsight
	if err := json.Unmarshal([]byte(jsonStr), &insight); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI insight data")
	}
	return &insight, nil
}
