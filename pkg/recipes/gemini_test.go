package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

const validRecipesJSON = `[
	{"id":"recipe1","name":"Fried Rice","ingredients":["rice","egg"],"instructions":["fry"],"reason":"quick","calories":500},
	{"id":"recipe2","name":"Veggie Soup","ingredients":["spinach"],"instructions":["boil"],"reason":"light","calories":200}
]`

func TestDecodeRecipes(t *testing.T) {
	t.Parallel()

	recipes, err := decodeRecipes(validRecipesJSON)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Fried Rice", recipes[0].Name)
	assert.Equal(t, 200, recipes[1].Calories)
}

func TestDecodeRecipesStripsMarkdownFence(t *testing.T) {
	t.Parallel()

	wrapped := "Here are your recipes:\n```json\n" + validRecipesJSON + "\n```\nEnjoy!"

	recipes, err := decodeRecipes(wrapped)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestDecodeRecipesAssignsMissingIDs(t *testing.T) {
	t.Parallel()

	text := `[
		{"name":"Fried Rice","ingredients":["rice"],"instructions":["fry"]},
		{"name":"Veggie Soup","ingredients":["spinach"],"instructions":["boil"]}
	]`

	recipes, err := decodeRecipes(text)
	require.NoError(t, err)
	assert.Equal(t, "recipe1", recipes[0].ID)
	assert.Equal(t, "recipe2", recipes[1].ID)
}

func TestDecodeRecipesRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
	}{
		{"no array", "Sorry, I cannot help with that."},
		{"invalid json", "[{broken]"},
		{"one recipe", `[{"name":"Fried Rice","ingredients":["rice"],"instructions":["fry"]}]`},
		{"three recipes", `[{"name":"A","ingredients":["x"],"instructions":["y"]},{"name":"B","ingredients":["x"],"instructions":["y"]},{"name":"C","ingredients":["x"],"instructions":["y"]}]`},
		{"missing name", `[{"ingredients":["rice"],"instructions":["fry"]},{"name":"B","ingredients":["x"],"instructions":["y"]}]`},
		{"missing instructions", `[{"name":"A","ingredients":["rice"]},{"name":"B","ingredients":["x"],"instructions":["y"]}]`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeRecipes(tc.text)
			assert.ErrorIs(t, err, domain.ErrMalformedRecipes)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt([]string{"Old Yogurt"}, []string{"Rice", "Egg"}, entities.LanguageVietnamese)
	assert.Contains(t, prompt, "Vietnamese (Tiếng Việt)")
	assert.Contains(t, prompt, "Old Yogurt")
	assert.Contains(t, prompt, "Rice, Egg")
	assert.Contains(t, prompt, "EXACTLY 2")

	// an empty fridge section is spelled out rather than left blank
	prompt = buildPrompt(nil, []string{"Rice"}, entities.LanguageEnglish)
	assert.Contains(t, prompt, "None")
}

func geminiBody(text string) string {
	payload := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestGeminiGeneratorGenerate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		fmt.Fprint(w, geminiBody(validRecipesJSON))
	}))
	defer server.Close()

	generator := &geminiGenerator{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: server.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	recipes, err := generator.Generate(context.Background(), []string{"Old Yogurt"}, []string{"Rice"}, entities.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Veggie Soup", recipes[1].Name)
}

func TestGeminiGeneratorUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	generator := &geminiGenerator{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: server.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	_, err := generator.Generate(context.Background(), nil, []string{"Rice"}, entities.LanguageEnglish)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGeminiGeneratorEmptyCandidates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	generator := &geminiGenerator{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: server.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	_, err := generator.Generate(context.Background(), nil, []string{"Rice"}, entities.LanguageEnglish)
	assert.ErrorIs(t, err, domain.ErrMalformedRecipes)
}

func TestGeminiGeneratorRequiresCredentials(t *testing.T) {
	t.Parallel()

	generator := &geminiGenerator{client: &http.Client{}}

	_, err := generator.Generate(context.Background(), nil, nil, entities.LanguageEnglish)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}
