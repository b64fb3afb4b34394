package mjtrans

import "strings"

// Supported target language codes.
const (
	LangChinese  = "zh-CN"
	LangEnglish  = "en-US"
	LangJapanese = "ja-JP"
	LangKorean   = "ko-KR"
)

// DefaultTargetLang is used when a caller omits the target language.
const DefaultTargetLang = LangChinese

// LanguageNames maps supported codes to human-readable names for
// prompts and UI lists.
var LanguageNames = map[string]string{
	LangChinese:  "Chinese (Simplified)",
	LangEnglish:  "English (United States)",
	LangJapanese: "Japanese (Japan)",
	LangKorean:   "Korean (South Korea)",
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	if name, ok := LanguageNames[NormalizeLang(langCode)]; ok {
		return name
	}
	return langCode
}

// IsSupportedLang reports whether langCode is a supported target.
func IsSupportedLang(langCode string) bool {
	_, ok := LanguageNames[NormalizeLang(langCode)]
	return ok
}

// NormalizeLang converts a language code to the canonical hyphenated
// form (e.g., "zh_CN" → "zh-CN", "ZH-cn" → "zh-CN"). Bare base codes
// expand to their default region ("ja" → "ja-JP").
func NormalizeLang(langCode string) string {
	code := strings.ReplaceAll(strings.TrimSpace(langCode), "_", "-")
	parts := strings.SplitN(code, "-", 2)
	base := strings.ToLower(parts[0])
	if len(parts) == 2 {
		return base + "-" + strings.ToUpper(parts[1])
	}
	switch base {
	case "zh":
		return LangChinese
	case "en":
		return LangEnglish
	case "ja":
		return LangJapanese
	case "ko":
		return LangKorean
	}
	return base
}
