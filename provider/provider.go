// Package provider implements the LLM completion backends (DeepSeek,
// Gemini) used for prompt translation.
package provider

import "github.com/PolyglotLabs/mjtrans"

// Client is the interface for LLM completion backends.
// This is an alias to the main package interface for convenience.
type Client = mjtrans.Client

// CompletionRequest is an alias to the main package type.
type CompletionRequest = mjtrans.CompletionRequest
