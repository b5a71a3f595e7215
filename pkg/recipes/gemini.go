package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
)

// RecipeGenerator is the external AI collaborator. It must return
// exactly two recipes in the requested language.
type RecipeGenerator interface {
	Generate(ctx context.Context, priority, supporting []string, lang entities.Language) ([]entities.Recipe, error)
}

type geminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiGenerator() RecipeGenerator {
	return &geminiGenerator{
		apiKey:  utils.GetConfig("GEMINI_API_KEY"),
		model:   utils.GetConfig("GEMINI_MODEL"),
		baseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func buildPrompt(priority, supporting []string, lang entities.Language) string {
	listExpiring := "None"
	if len(priority) > 0 {
		listExpiring = strings.Join(priority, ", ")
	}
	listOthers := strings.Join(supporting, ", ")
	language := lang.DisplayName()

	return fmt.Sprintf(
		"You are a world-class home chef and nutritionist. "+
			"CRITICAL REQUIREMENT: You MUST respond entirely in the %s language. "+
			"Fridge Content: "+
			"- Priority items (Use these first): %s "+
			"- Supporting items: %s "+
			"TASK: Suggest EXACTLY 2 delicious recipes. NO MORE, NO LESS. "+
			"Estimate the total calories (kcal) for one serving of each recipe. "+
			"Format your response ONLY as a JSON array of 2 objects with these fields: "+
			"id, name, ingredients (array of strings), instructions (array of strings, step by step), "+
			"reason (why this is good), calories (integer kcal). "+
			"Do not include any explanations or text outside of the JSON array.",
		language, listExpiring, listOthers,
	)
}

func (g *geminiGenerator) Generate(ctx context.Context, priority, supporting []string, lang entities.Language) ([]entities.Recipe, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY not set", domain.ErrGenerationFailed)
	}
	if g.model == "" {
		return nil, fmt.Errorf("%w: GEMINI_MODEL not set", domain.ErrGenerationFailed)
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": buildPrompt(priority, supporting, lang)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s - %s", domain.ErrGenerationFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecipes, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrMalformedRecipes
	}

	return decodeRecipes(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// decodeRecipes extracts the JSON array from the model's text output and
// checks the two-recipe contract.
func decodeRecipes(responseText string) ([]entities.Recipe, error) {
	responseText = strings.TrimSpace(responseText)

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, fmt.Errorf("%w: no JSON array in output", domain.ErrMalformedRecipes)
	}
	responseText = responseText[startIdx : endIdx+1]

	var recipes []entities.Recipe
	if err := json.Unmarshal([]byte(responseText), &recipes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecipes, err)
	}

	if len(recipes) != 2 {
		return nil, fmt.Errorf("%w: expected 2 recipes, got %d", domain.ErrMalformedRecipes, len(recipes))
	}

	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = fmt.Sprintf("recipe%d", i+1)
		}
		if recipes[i].Name == "" || len(recipes[i].Ingredients) == 0 || len(recipes[i].Instructions) == 0 {
			return nil, fmt.Errorf("%w: recipe %d incomplete", domain.ErrMalformedRecipes, i+1)
		}
	}

	return recipes, nil
}
