package mjtrans

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a translation-cache key from the source text,
// target language and provider. Mode is excluded because only plain
// translations are cached.
func CacheKey(text, targetLang string, p Provider) string {
	return HashText(text) + ":" + NormalizeLang(targetLang) + ":" + string(p)
}
