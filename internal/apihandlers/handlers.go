package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lexis/internal/app"
	"lexis/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

type DisambiguateRequest struct {
	Sentence string `json:"sentence"`
	Word     string `json:"word"`
	// Lookup asks the server to also run the external knowledge lookup
	// and attach the summary. Off by default to keep responses fast.
	Lookup bool `json:"lookup"`
}

type DisambiguateResponse struct {
	models.Resolution
	Summary string `json:"summary,omitempty"`
}

// DisambiguateHandler runs the pipeline for one sentence/word pair.
// Unsupported words are a 404, not a 500: the inventory is finite and
// the caller is expected to tell the user rather than retry.
func (h *APIHandler) DisambiguateHandler(c *gin.Context) {
	var req DisambiguateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Word == "" {
		BadRequest(c, "missing required field: word")
		return
	}

	res, err := h.App.Disambiguation.Disambiguate(req.Sentence, req.Word)
	if err != nil {
		if errors.Is(err, models.ErrUnknownWord) {
			NotFound(c, "unknown_word", fmt.Sprintf("word %q is not in the supported inventory", req.Word))
			return
		}
		Internal(c, "disambiguation failed: "+err.Error())
		return
	}

	resp := DisambiguateResponse{Resolution: res}
	if req.Lookup && h.App.Lookup != nil && res.LookupRecommended {
		summary, err := h.App.Lookup.Enrich(c.Request.Context(), res, req.Sentence)
		if err != nil {
			// The resolution is still valid without the summary; degrade
			// instead of failing the whole request.
			log.WithError(err).WithField("word", res.Word).Warn("lookup enrichment failed")
		} else {
			resp.Summary = summary
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListWordsHandler returns the supported word inventory.
func (h *APIHandler) ListWordsHandler(c *gin.Context) {
	words := h.App.Lexicon.Words()
	items := make([]gin.H, 0, len(words))
	for _, w := range words {
		contexts := make([]string, 0, len(w.Senses))
		for _, s := range w.Senses {
			contexts = append(contexts, s.Context)
		}
		items = append(items, gin.H{"word": w.Word, "contexts": contexts})
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetWordHandler returns the full sense table for one word.
func (h *APIHandler) GetWordHandler(c *gin.Context) {
	word := c.Param("word")
	entry, err := h.App.Lexicon.Word(word)
	if err != nil {
		NotFound(c, "unknown_word", fmt.Sprintf("word %q is not in the supported inventory", word))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

// ListCategoriesHandler returns the context category inventory with
// trigger counts. The trigger lists themselves are large and mostly
// interesting to operators, so only counts are exposed here.
func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	cats := h.App.Lexicon.Categories()
	items := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		items = append(items, gin.H{"label": cat.Label, "trigger_count": len(cat.Triggers)})
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}
