package mjtrans

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the interface for LLM completion backends.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest carries one outbound prompt to a provider.
type CompletionRequest struct {
	System string // System instruction
	User   string // User message
	Mode   Mode   // Operation mode; clients size output budgets by it
}

// TranslationCache is the interface for caching plain translations.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator orchestrates prompt construction, provider invocation,
// response parsing and one-shot failover between providers.
type Translator struct {
	clients         map[Provider]Client
	defaultProvider Provider
	cache           TranslationCache
	logger          *zap.Logger
	pause           time.Duration
	now             func() time.Time
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithClient registers a client for a provider.
func WithClient(p Provider, c Client) Option {
	return func(t *Translator) {
		t.clients[p] = c
	}
}

// WithDefaultProvider sets the provider used when a request carries no
// override.
func WithDefaultProvider(p Provider) Option {
	return func(t *Translator) {
		if p.Valid() {
			t.defaultProvider = p
		}
	}
}

// WithCache sets the plain-translation cache.
func WithCache(cache TranslationCache) Option {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithBatchPause overrides the delay between sequential batch items.
func WithBatchPause(d time.Duration) Option {
	return func(t *Translator) {
		if d >= 0 {
			t.pause = d
		}
	}
}

// NewTranslator creates a Translator. At least one client should be
// registered with WithClient for translation to succeed.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		clients:         make(map[Provider]Client),
		defaultProvider: ProviderDeepSeek,
		logger:          zap.NewNop(),
		pause:           batchPause,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// DefaultProvider returns the configured default provider.
func (t *Translator) DefaultProvider() Provider {
	return t.defaultProvider
}

// Translate runs a single translation request through the selected
// provider, failing over once to the alternate provider if the first
// attempt fails. The returned error carries the most recent failure.
func (t *Translator) Translate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}
	if req.Mode == ModePhraseAnalysis && strings.TrimSpace(req.Translated) == "" {
		return nil, &TranslationError{
			Code:    CodeEmptyInput,
			Message: "translated text must not be empty",
		}
	}
	if req.Mode == "" {
		req.Mode = ModePlain
	}

	lang := NormalizeLang(req.TargetLang)
	if lang == "" || !IsSupportedLang(lang) {
		lang = DefaultTargetLang
	}
	req.TargetLang = lang

	primary := req.Provider
	if primary == "" {
		primary = t.defaultProvider
	}
	if !primary.Valid() {
		return nil, &TranslationError{
			Code:    CodeUnsupportedProvider,
			Message: fmt.Sprintf("unsupported translation provider: %s", primary),
		}
	}

	if req.Mode == ModePlain && t.cache != nil {
		key := CacheKey(req.Text, lang, primary)
		if cached, ok := t.cache.Get(key); ok {
			t.logger.Debug("translation cache hit", zap.String("lang", lang))
			return t.newResult(req, cached, primary, nil), nil
		}
	}

	result, err := t.attempt(ctx, primary, req)
	if err == nil {
		return result, nil
	}

	alt, ok := t.alternate(primary)
	if !ok {
		return nil, err
	}

	t.logger.Warn("provider failed, failing over",
		zap.String("provider", string(primary)),
		zap.String("fallback", string(alt)),
		zap.Error(err))

	result, altErr := t.attempt(ctx, alt, req)
	if altErr != nil {
		return nil, altErr
	}
	return result, nil
}

// AnalyzePhrases extracts aligned key phrases from an already-translated
// pair without performing a translation.
func (t *Translator) AnalyzePhrases(ctx context.Context, original, translated, targetLang string, override Provider) (*Result, error) {
	return t.Translate(ctx, Request{
		Text:       original,
		Translated: translated,
		TargetLang: targetLang,
		Mode:       ModePhraseAnalysis,
		Provider:   override,
	})
}

// TranslateBatch translates up to MaxBatchSize texts sequentially in
// plain mode, pausing between items to respect upstream rate limits.
// A failed item carries its error instead of aborting the batch.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]BatchItem, error) {
	if len(texts) == 0 {
		return nil, &TranslationError{
			Code:    CodeEmptyInput,
			Message: "batch translation requires at least one text",
		}
	}
	if len(texts) > MaxBatchSize {
		return nil, &TranslationError{
			Code:    CodeEmptyInput,
			Message: fmt.Sprintf("batch translation supports at most %d texts", MaxBatchSize),
		}
	}

	items := make([]BatchItem, 0, len(texts))
	for i, text := range texts {
		if i > 0 && t.pause > 0 {
			select {
			case <-ctx.Done():
				return items, ctx.Err()
			case <-time.After(t.pause):
			}
		}

		result, err := t.Translate(ctx, Request{
			Text:       text,
			TargetLang: targetLang,
			Mode:       ModePlain,
		})
		if err != nil {
			t.logger.Warn("batch item failed",
				zap.Int("index", i),
				zap.Error(err))
			items = append(items, BatchItem{Original: text, Err: err.Error()})
			continue
		}
		items = append(items, BatchItem{Original: text, Result: result})
	}

	return items, nil
}

// attempt runs the full build → complete → parse sequence against one
// provider.
func (t *Translator) attempt(ctx context.Context, p Provider, req Request) (*Result, error) {
	client, ok := t.clients[p]
	if !ok {
		return nil, &ProviderError{
			Provider: p,
			Code:     CodeNotConfigured,
			Message:  "no client registered",
		}
	}

	prompt := BuildPrompt(req)
	raw, err := client.Complete(ctx, CompletionRequest{
		System: prompt.System,
		User:   prompt.User,
		Mode:   req.Mode,
	})
	if err != nil {
		return nil, err
	}

	switch req.Mode {
	case ModeInteractive:
		translated, phrases := ParseInteractive(raw)
		return t.newResult(req, translated, p, phrases), nil
	case ModePhraseAnalysis:
		translated, phrases := ParsePhraseAnalysis(raw, req.Translated)
		return t.newResult(req, translated, p, phrases), nil
	default:
		translated := ParsePlain(raw)
		if t.cache != nil {
			// Ignore cache set errors
			_ = t.cache.Set(CacheKey(req.Text, req.TargetLang, p), translated)
		}
		return t.newResult(req, translated, p, nil), nil
	}
}

// alternate returns the other registered provider, if any.
func (t *Translator) alternate(primary Provider) (Provider, bool) {
	for _, p := range []Provider{ProviderDeepSeek, ProviderGemini} {
		if p != primary {
			if _, ok := t.clients[p]; ok {
				return p, true
			}
		}
	}
	return "", false
}

func (t *Translator) newResult(req Request, translated string, p Provider, phrases []KeyPhrase) *Result {
	if phrases == nil {
		phrases = []KeyPhrase{}
	}
	return &Result{
		Original:   req.Text,
		Translated: translated,
		Language:   req.TargetLang,
		Provider:   p,
		Timestamp:  t.now().UTC().Format(time.RFC3339),
		KeyPhrases: phrases,
	}
}
