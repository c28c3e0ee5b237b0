package apihandlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexis/internal/apihandlers"
	"lexis/internal/app"
	"lexis/internal/lexicon"
	"lexis/internal/services"
	"lexis/internal/store"
	"lexis/internal/wiki"
)

func newTestRouter(t *testing.T, lookup *services.LookupService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lex, err := lexicon.Builtin()
	require.NoError(t, err)

	testApp := &app.App{
		Lexicon:        lex,
		Disambiguation: services.NewDisambiguationService(lex),
		Lookup:         lookup,
	}
	handler := apihandlers.NewAPIHandler(testApp)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/disambiguate", handler.DisambiguateHandler)
	v1.GET("/words", handler.ListWordsHandler)
	v1.GET("/words/:word", handler.GetWordHandler)
	v1.GET("/categories", handler.ListCategoriesHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestDisambiguateHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/disambiguate",
		`{"sentence": "I wrote a python script to debug the loop", "word": "python"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Word            string         `json:"word"`
		DetectedContext string         `json:"detected_context"`
		Gloss           string         `json:"gloss"`
		Scores          map[string]int `json:"scores"`
		Fallback        bool           `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "python", data.Word)
	assert.Equal(t, "programming", data.DetectedContext)
	assert.NotEmpty(t, data.Gloss)
	assert.False(t, data.Fallback)
	assert.Contains(t, data.Scores, "programming")
}

func TestDisambiguateHandler_UnknownWord(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/disambiguate",
		`{"sentence": "some sentence", "word": "zeppelin"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(envelope["error"], &apiErr))
	assert.Equal(t, "unknown_word", apiErr.Code)
	assert.Contains(t, apiErr.Message, "zeppelin")
}

func TestDisambiguateHandler_MissingWord(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/disambiguate",
		`{"sentence": "no word supplied"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDisambiguateHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/disambiguate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDisambiguateHandler_WithLookup(t *testing.T) {
	// Wikipedia is stubbed with a local server; the summary must ride along
	// in the response.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "api.php") || r.URL.Query().Get("action") == "query" {
			w.Write([]byte(`{"query":{"search":[{"title":"Python (programming language)"}]}}`))
			return
		}
		w.Write([]byte(`{"extract":"Python is a high-level language."}`))
	}))
	t.Cleanup(srv.Close)

	lex, err := lexicon.Builtin()
	require.NoError(t, err)
	cache, err := store.NewSQLiteSummaryCache(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	client := wiki.NewClient(srv.URL+"/w/api.php", srv.URL+"/api/rest_v1/page/summary")
	lookup := services.NewLookupService(client, cache, lex, 0)
	router := newTestRouter(t, lookup)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/disambiguate",
		`{"sentence": "I wrote a python script to debug the loop", "word": "python", "lookup": true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "Python is a high-level language.", data.Summary)

	// The summary is now cached.
	cached, ok, err := cache.Get(context.Background(), services.CacheKey("python", "programming"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Python is a high-level language.", cached)
}

func TestListWordsHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/words", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		Word     string   `json:"word"`
		Contexts []string `json:"contexts"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &items))
	require.NotEmpty(t, items)

	found := false
	for _, item := range items {
		if item.Word == "python" {
			found = true
			assert.Equal(t, []string{"programming", "biology"}, item.Contexts)
		}
	}
	assert.True(t, found)
}

func TestGetWordHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/words/bank", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entry struct {
		Word   string `json:"word"`
		Senses []struct {
			Context string `json:"context"`
			Gloss   string `json:"gloss"`
		} `json:"senses"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &entry))
	assert.Equal(t, "bank", entry.Word)
	require.Len(t, entry.Senses, 2)
	assert.Equal(t, "finance", entry.Senses[0].Context)
}

func TestGetWordHandler_Unknown(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/words/zeppelin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategoriesHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		Label        string `json:"label"`
		TriggerCount int    `json:"trigger_count"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &items))
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEmpty(t, item.Label)
		assert.Positive(t, item.TriggerCount)
	}
}
