// Package server exposes the translation engine over HTTP. Routes
// mirror the JSON API consumed by the web client: translation in three
// modes, batch translation, the bounded translation history, and the
// prompt library CRUD.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PolyglotLabs/mjtrans"
	"github.com/PolyglotLabs/mjtrans/history"
	"github.com/PolyglotLabs/mjtrans/store"
)

// Server wires the translator, history buffer and prompt store into a
// gin router.
type Server struct {
	translator *mjtrans.Translator
	history    *history.Store
	prompts    store.PromptStore
	logger     *zap.Logger
	production bool
}

// Config holds the server's collaborators.
type Config struct {
	Translator *mjtrans.Translator
	History    *history.Store
	Prompts    store.PromptStore
	Logger     *zap.Logger
	Production bool // Hide internal error details in responses
}

// New creates a Server. Nil collaborators get working defaults.
func New(cfg Config) *Server {
	s := &Server{
		translator: cfg.Translator,
		history:    cfg.History,
		prompts:    cfg.Prompts,
		logger:     cfg.Logger,
		production: cfg.Production,
	}
	if s.history == nil {
		s.history = history.NewStore(history.DefaultCapacity)
	}
	if s.prompts == nil {
		s.prompts = store.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/translate", s.handleTranslate)
		api.POST("/translate/interactive", s.handleInteractive)
		api.POST("/translate/analyze-phrases", s.handleAnalyzePhrases)
		api.POST("/translate/batch", s.handleBatch)
		api.GET("/translate/history", s.handleHistory)
		api.GET("/translate/search", s.handleHistorySearch)
		api.DELETE("/translate/history/:id", s.handleHistoryDelete)

		api.GET("/prompts", s.handlePromptList)
		api.GET("/prompts/:id", s.handlePromptGet)
		api.POST("/prompts", s.handlePromptCreate)
		api.PUT("/prompts/:id", s.handlePromptUpdate)
		api.DELETE("/prompts/:id", s.handlePromptDelete)
		api.POST("/prompts/:id/use", s.handlePromptUse)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   mjtrans.Version,
	})
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	Provider       string `json:"provider"`
	SaveToHistory  bool   `json:"saveToHistory"`
}

func (s *Server) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Text == "" {
		badRequest(c, "translation text must not be empty")
		return
	}

	result, err := s.translator.Translate(c.Request.Context(), mjtrans.Request{
		Text:       req.Text,
		TargetLang: req.TargetLanguage,
		Mode:       mjtrans.ModePlain,
		Provider:   mjtrans.Provider(req.Provider),
	})
	if err != nil {
		s.translationError(c, err)
		return
	}

	body := gin.H{"success": true, "data": result}
	if req.SaveToHistory && result.Translated != "" {
		rec := s.history.Append(result.Original, result.Translated, result.Language)
		body["saved"] = true
		body["recordId"] = rec.ID
	}

	c.JSON(http.StatusOK, body)
}

func (s *Server) handleInteractive(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Text == "" {
		badRequest(c, "translation text must not be empty")
		return
	}

	result, err := s.translator.Translate(c.Request.Context(), mjtrans.Request{
		Text:       req.Text,
		TargetLang: req.TargetLanguage,
		Mode:       mjtrans.ModeInteractive,
		Provider:   mjtrans.Provider(req.Provider),
	})
	if err != nil {
		s.translationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type analyzeRequest struct {
	Original       string `json:"original"`
	Translated     string `json:"translated"`
	TargetLanguage string `json:"targetLanguage"`
	Provider       string `json:"provider"`
}

func (s *Server) handleAnalyzePhrases(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Original == "" {
		badRequest(c, "original text must not be empty")
		return
	}
	if req.Translated == "" {
		badRequest(c, "translated text must not be empty")
		return
	}

	result, err := s.translator.AnalyzePhrases(c.Request.Context(),
		req.Original, req.Translated, req.TargetLanguage, mjtrans.Provider(req.Provider))
	if err != nil {
		s.translationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

type batchRequest struct {
	Texts          []string `json:"texts"`
	TargetLanguage string   `json:"targetLanguage"`
}

func (s *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if len(req.Texts) == 0 {
		badRequest(c, "texts must be a non-empty array")
		return
	}
	if len(req.Texts) > mjtrans.MaxBatchSize {
		badRequest(c, "batch translation supports at most "+strconv.Itoa(mjtrans.MaxBatchSize)+" texts")
		return
	}

	items, err := s.translator.TranslateBatch(c.Request.Context(), req.Texts, req.TargetLanguage)
	if err != nil {
		s.translationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (s *Server) handleHistory(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)
	category := c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.history.List(category, page, limit),
	})
}

func (s *Server) handleHistorySearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		badRequest(c, "search query must not be empty")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.history.Search(q, intQuery(c, "page", 1), intQuery(c, "limit", 20)),
	})
}

func (s *Server) handleHistoryDelete(c *gin.Context) {
	if !s.history.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "history record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handlePromptList(c *gin.Context) {
	page, err := s.prompts.List(c.Request.Context(), store.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "limit", 20),
	})
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

func (s *Server) handlePromptGet(c *gin.Context) {
	p, err := s.prompts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.promptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

type promptCreateRequest struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	Language       string   `json:"language"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	IsPublic       bool     `json:"isPublic"`
}

func (s *Server) handlePromptCreate(c *gin.Context) {
	var req promptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.OriginalText == "" || req.TranslatedText == "" {
		badRequest(c, "originalText and translatedText are required")
		return
	}

	p := &store.Prompt{
		OriginalText:   req.OriginalText,
		TranslatedText: req.TranslatedText,
		Language:       req.Language,
		Category:       req.Category,
		Tags:           req.Tags,
		IsPublic:       req.IsPublic,
	}
	if err := s.prompts.Create(c.Request.Context(), p); err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

type promptUpdateRequest struct {
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	IsPublic *bool     `json:"isPublic"`
}

func (s *Server) handlePromptUpdate(c *gin.Context) {
	var req promptUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	p, err := s.prompts.Update(c.Request.Context(), c.Param("id"), store.Update{
		Category: req.Category,
		Tags:     req.Tags,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		s.promptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (s *Server) handlePromptDelete(c *gin.Context) {
	if err := s.prompts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.promptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handlePromptUse(c *gin.Context) {
	if err := s.prompts.IncrementUsage(c.Request.Context(), c.Param("id")); err != nil {
		s.promptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// translationError maps the failure taxonomy onto HTTP statuses without
// leaking internals in production.
func (s *Server) translationError(c *gin.Context, err error) {
	code := mjtrans.CodeOf(err)
	status := http.StatusBadGateway

	switch code {
	case mjtrans.CodeEmptyInput, mjtrans.CodeUnsupportedProvider:
		status = http.StatusBadRequest
	case mjtrans.CodeRateLimited:
		status = http.StatusTooManyRequests
	case mjtrans.CodeTimeout:
		status = http.StatusGatewayTimeout
	case mjtrans.CodeNotConfigured, mjtrans.CodeInvalidCredentials:
		status = http.StatusBadGateway
	}

	s.logger.Error("translation request failed",
		zap.String("code", string(code)),
		zap.Error(err))

	msg := err.Error()
	if s.production {
		if mjtrans.IsConfigProblem(err) {
			msg = "translation service is misconfigured"
		} else {
			msg = "translation service is temporarily unavailable, please retry later"
		}
	}

	c.JSON(status, gin.H{"success": false, "error": msg, "code": string(code)})
}

func (s *Server) promptError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prompt not found"})
		return
	}
	s.internalError(c, err)
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error("request failed", zap.Error(err))
	msg := err.Error()
	if s.production {
		msg = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
