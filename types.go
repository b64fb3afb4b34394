package mjtrans

import "time"

// Provider identifies an LLM translation backend.
type Provider string

const (
	// ProviderDeepSeek is the DeepSeek chat-completion API.
	ProviderDeepSeek Provider = "deepseek"
	// ProviderGemini is the Google Gemini generative API.
	ProviderGemini Provider = "gemini"
)

// Valid reports whether p names a known provider.
func (p Provider) Valid() bool {
	return p == ProviderDeepSeek || p == ProviderGemini
}

// Mode selects the translation operation.
type Mode string

const (
	// ModePlain translates the prompt and returns text only.
	ModePlain Mode = "plain"
	// ModeInteractive translates and extracts aligned key phrases.
	ModeInteractive Mode = "interactive"
	// ModePhraseAnalysis extracts key phrases from an existing
	// original/translated pair without translating.
	ModePhraseAnalysis Mode = "phrase_analysis"
)

// Request contains the parameters for a translation call.
type Request struct {
	Text       string   // Source prompt text
	TargetLang string   // Target language code (e.g., "zh-CN")
	Mode       Mode     // Operation mode (default: ModePlain)
	Provider   Provider // Optional provider override ("" = configured default)

	// Translated carries the already-known translation for
	// ModePhraseAnalysis; ignored in other modes.
	Translated string
}

// KeyPhrase is an aligned (source, target) substring pair with character
// offsets, used for highlighting. Offsets are half-open ranges as
// reported by the model; they are not re-validated against the text.
type KeyPhrase struct {
	ID          int    `json:"id"`
	SourceText  string `json:"en"`
	TargetText  string `json:"zh"`
	SourceStart int    `json:"enStart"`
	SourceEnd   int    `json:"enEnd"`
	TargetStart int    `json:"zhStart"`
	TargetEnd   int    `json:"zhEnd"`
}

// Result is the outcome of a translation operation. It is immutable
// once produced.
type Result struct {
	Original   string      `json:"original"`
	Translated string      `json:"translated"`
	Language   string      `json:"language"`
	Provider   Provider    `json:"provider"`
	Timestamp  string      `json:"timestamp"` // RFC 3339
	KeyPhrases []KeyPhrase `json:"keyPhrases,omitempty"`
}

// BatchItem is one entry of a batch translation result. Exactly one of
// Result and Err is set.
type BatchItem struct {
	Original string  `json:"original"`
	Result   *Result `json:"result,omitempty"`
	Err      string  `json:"error,omitempty"`
}

// MaxBatchSize caps the number of texts accepted by TranslateBatch.
const MaxBatchSize = 10

// batchPause is the fixed delay between sequential batch items to keep
// upstream rate limits comfortable.
const batchPause = 1 * time.Second
