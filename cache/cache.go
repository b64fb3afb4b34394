// Package cache stores plain-mode translation results keyed by source
// text hash, target language and provider.
package cache

// TranslationCache is the read-through cache consulted before a
// provider call.
type TranslationCache interface {
	// Get returns the cached translation for a key, or false on a miss
	// or expired entry.
	Get(key string) (string, bool)

	// Set stores a translation. Backends may apply a TTL.
	Set(key string, value string) error
}
