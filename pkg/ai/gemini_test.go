package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "contents")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]any{{"text": responseText}},
				}},
			},
		})
	}))
}

func TestSuggestTagsParsesJSONArray(t *testing.T) {
	server := newStubServer(t, `["Vegan", "halal", " spicy "]`)
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	tags, err := suggester.SuggestTags(context.Background(), "spicy vegan curry", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegan", "halal", "spicy"}, tags)
}

func TestSuggestTagsStripsCodeFences(t *testing.T) {
	server := newStubServer(t, "```json\n[\"vegan\"]\n```")
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	tags, err := suggester.SuggestTags(context.Background(), "vegan bowl", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegan"}, tags)
}

func TestSuggestTagsFallsBackToSplitting(t *testing.T) {
	server := newStubServer(t, "vegan, halal\nspicy")
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	tags, err := suggester.SuggestTags(context.Background(), "some dish", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegan", "halal", "spicy"}, tags)
}

func TestSuggestTagsCapsResultCount(t *testing.T) {
	server := newStubServer(t, `["a","b","c","d"]`)
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	tags, err := suggester.SuggestTags(context.Background(), "some dish", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)
}

func TestSuggestTagsRequiresAPIKey(t *testing.T) {
	suggester := newGeminiSuggester("", "gemini-1.5-flash", "http://unused.test")
	_, err := suggester.SuggestTags(context.Background(), "some dish", 8)
	assert.Error(t, err)
}

func TestSuggestTagsSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	_, err := suggester.SuggestTags(context.Background(), "some dish", 8)
	assert.Error(t, err)
}

func TestRecipeFromPantryParsesJSON(t *testing.T) {
	server := newStubServer(t, `{"title":"Fried Rice","ingredients":["rice","egg"," soy sauce "],"steps":["cook rice","fry everything"]}`)
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	recipe, err := suggester.RecipeFromPantry(context.Background(), nil, []string{"rice", "egg"})
	require.NoError(t, err)

	assert.Equal(t, "Fried Rice", recipe.Title)
	assert.Equal(t, []string{"rice", "egg", "soy sauce"}, recipe.Ingredients)
	assert.Len(t, recipe.Steps, 2)
}

func TestRecipeFromPantryFallsBackOnProse(t *testing.T) {
	server := newStubServer(t, "Just stir fry whatever you have.")
	defer server.Close()

	suggester := newGeminiSuggester("test-key", "gemini-1.5-flash", server.URL)
	recipe, err := suggester.RecipeFromPantry(context.Background(), nil, []string{"noodles"})
	require.NoError(t, err)

	assert.Equal(t, "AI Recipe", recipe.Title)
	assert.Equal(t, []string{"noodles"}, recipe.Ingredients)
	require.Len(t, recipe.Steps, 1)
	assert.Equal(t, "Just stir fry whatever you have.", recipe.Steps[0])
}
