package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodconnect-backend/internal/utils"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
	defaultMaxTags = 8
	maxPantryImgs  = 6
)

type (
	PantryRecipe struct {
		Title       string   `json:"title"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}

	// Suggester is the capability boundary for the generative upstream; the
	// core never sees provider request/response shapes.
	Suggester interface {
		SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error)
		RecipeFromPantry(ctx context.Context, imagesBase64 []string, pantryItems []string) (PantryRecipe, error)
	}

	geminiSuggester struct {
		apiKey       string
		model        string
		baseURL      string
		textClient   *http.Client
		visionClient *http.Client
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func NewGeminiSuggester() Suggester {
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	baseURL := utils.GetConfig("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return newGeminiSuggester(utils.GetConfig("GEMINI_API_KEY"), model, baseURL)
}

func newGeminiSuggester(apiKey, model, baseURL string) *geminiSuggester {
	return &geminiSuggester{
		apiKey:       apiKey,
		model:        model,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		textClient:   &http.Client{Timeout: 30 * time.Second},
		visionClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *geminiSuggester) generate(ctx context.Context, client *http.Client, parts []map[string]any) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	requestBody := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a ```json / ``` wrapper when the model ignores the
// plain-JSON instruction.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func (g *geminiSuggester) SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error) {
	if maxTags <= 0 {
		maxTags = defaultMaxTags
	}

	prompt := fmt.Sprintf(
		"Suggest concise, lowercase tags (1-2 words) for the following food listing. "+
			"Return only a JSON array of strings with at most %d items.\n\nText:\n%s",
		maxTags, text,
	)

	responseText, err := g.generate(ctx, g.textClient, []map[string]any{{"text": prompt}})
	if err != nil {
		return nil, err
	}
	responseText = stripFences(responseText)

	var arr []string
	if err := json.Unmarshal([]byte(responseText), &arr); err == nil {
		tags := make([]string, 0, len(arr))
		for _, t := range arr {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) > maxTags {
			tags = tags[:maxTags]
		}
		return tags, nil
	}

	// Fallback: split the raw text on commas and newlines.
	tags := make([]string, 0, maxTags)
	for _, p := range strings.Split(strings.ReplaceAll(responseText, "\n", ","), ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tags = append(tags, p)
		}
		if len(tags) == maxTags {
			break
		}
	}
	return tags, nil
}

func (g *geminiSuggester) RecipeFromPantry(ctx context.Context, imagesBase64 []string, pantryItems []string) (PantryRecipe, error) {
	parts := []map[string]any{
		{"text": "Given these pantry images and list of items, extract recognizable ingredients and propose a simple, " +
			"cookable recipe (title, ingredients, steps). Respond strictly as JSON with keys: title (string), " +
			"ingredients (array of strings), steps (array of strings)."},
	}
	if len(pantryItems) > 0 {
		parts = append(parts, map[string]any{
			"text": "Pantry items (user provided): " + strings.Join(pantryItems, ", "),
		})
	}
	if len(imagesBase64) > maxPantryImgs {
		imagesBase64 = imagesBase64[:maxPantryImgs]
	}
	for _, b64 := range imagesBase64 {
		parts = append(parts, map[string]any{
			"inline_data": map[string]any{
				"mime_type": "image/jpeg",
				"data":      b64,
			},
		})
	}

	responseText, err := g.generate(ctx, g.visionClient, parts)
	if err != nil {
		return PantryRecipe{}, err
	}
	responseText = stripFences(responseText)

	var recipe PantryRecipe
	if err := json.Unmarshal([]byte(responseText), &recipe); err != nil {
		// Fallback: keep whatever the model said as a single step.
		return PantryRecipe{
			Title:       "AI Recipe",
			Ingredients: pantryItems,
			Steps:       []string{responseText},
		}, nil
	}

	if strings.TrimSpace(recipe.Title) == "" {
		recipe.Title = "AI Recipe"
	}
	recipe.Ingredients = cleanList(recipe.Ingredients)
	recipe.Steps = cleanList(recipe.Steps)
	return recipe, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
