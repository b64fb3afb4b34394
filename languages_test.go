package mjtrans

import "testing"

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zh-CN", "zh-CN"},
		{"zh_CN", "zh-CN"},
		{"ZH-cn", "zh-CN"},
		{"en-US", "en-US"},
		{"ja", "ja-JP"},
		{"ko", "ko-KR"},
		{"zh", "zh-CN"},
		{"en", "en-US"},
		{" ja-JP ", "ja-JP"},
		{"fr", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLang(tt.input); got != tt.want {
				t.Errorf("NormalizeLang(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSupportedLang(t *testing.T) {
	for _, lang := range []string{LangChinese, LangEnglish, LangJapanese, LangKorean, "zh_CN", "ko"} {
		if !IsSupportedLang(lang) {
			t.Errorf("%q should be supported", lang)
		}
	}
	for _, lang := range []string{"fr-FR", "de", "", "xx-YY"} {
		if IsSupportedLang(lang) {
			t.Errorf("%q should not be supported", lang)
		}
	}
}

func TestGetLanguageName(t *testing.T) {
	if got := GetLanguageName("zh-CN"); got != "Chinese (Simplified)" {
		t.Errorf("Unexpected name: %q", got)
	}
	if got := GetLanguageName("ko"); got != "Korean (South Korea)" {
		t.Errorf("Short code should resolve, got %q", got)
	}
	// Unknown codes fall back to the code itself
	if got := GetLanguageName("tlh"); got != "tlh" {
		t.Errorf("Unknown code should pass through, got %q", got)
	}
}
