package mjtrans

import (
	"encoding/json"
	"strings"
)

// interactivePayload is the JSON shape the model is asked to emit in
// interactive and phrase-analysis modes.
type interactivePayload struct {
	Translated string      `json:"translated"`
	KeyPhrases []KeyPhrase `json:"keyPhrases"`
}

// ParsePlain normalizes a plain-mode response. The trimmed text is the
// translation verbatim; there is no failure mode.
func ParsePlain(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseInteractive decodes an interactive-mode response into a
// translation plus key phrases. LLM output is semi-structured: when the
// payload is not valid JSON, or is missing required fields, the raw
// text is returned as a degraded plain translation with no phrases.
// Phrase extraction is a value-add, so this never fails.
func ParseInteractive(raw string) (translated string, phrases []KeyPhrase) {
	raw = strings.TrimSpace(raw)

	var payload interactivePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return raw, []KeyPhrase{}
	}
	if payload.Translated == "" || payload.KeyPhrases == nil {
		return raw, []KeyPhrase{}
	}

	return payload.Translated, assignPhraseIDs(payload.KeyPhrases)
}

// ParsePhraseAnalysis decodes a phrase-analysis response. The
// translation is already known, so a malformed payload degrades to the
// known translation with an empty phrase list.
func ParsePhraseAnalysis(raw, translated string) (string, []KeyPhrase) {
	raw = strings.TrimSpace(raw)

	var payload interactivePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return translated, []KeyPhrase{}
	}
	if payload.KeyPhrases == nil {
		return translated, []KeyPhrase{}
	}

	return translated, assignPhraseIDs(payload.KeyPhrases)
}

// assignPhraseIDs numbers phrases 1-based in model-returned order. The
// model never assigns IDs itself.
func assignPhraseIDs(phrases []KeyPhrase) []KeyPhrase {
	out := make([]KeyPhrase, len(phrases))
	for i, p := range phrases {
		p.ID = i + 1
		out[i] = p
	}
	return out
}
