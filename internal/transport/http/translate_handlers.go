package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/babelchat/babelchat-server/internal/lang"
	"github.com/babelchat/babelchat-server/internal/translate"
)

// TranslateHandlers provides the unauthenticated translation helper
// endpoints used for testing a deployment by hand.
type TranslateHandlers struct {
	adapter    *translate.Adapter
	normalizer *lang.Normalizer
	log        *zerolog.Logger
}

// NewTranslateHandlers creates a new translate handlers instance.
func NewTranslateHandlers(adapter *translate.Adapter, normalizer *lang.Normalizer, logger *zerolog.Logger) *TranslateHandlers {
	return &TranslateHandlers{adapter: adapter, normalizer: normalizer, log: logger}
}

// Languages returns the provider's supported-languages table.
// GET /languages
func (h *TranslateHandlers) Languages(c *gin.Context) {
	table, err := h.adapter.Languages(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load language table")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "language table unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"supported_languages": table})
}

// Translate renders one text into one normalized target language.
// GET /translate?text=...&target=...
func (h *TranslateHandlers) Translate(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	target := c.DefaultQuery("target", "fr")
	code, ok := h.normalizer.Normalize(c.Request.Context(), target)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown target '" + target + "'"})
		return
	}

	translated, err := h.adapter.Translate(c.Request.Context(), code, text)
	if err != nil {
		h.log.Warn().Err(err).Str("target", code).Msg("translation failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "translation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"target":     code,
		"original":   text,
		"translated": translated,
	})
}
