package mjtrans

import "fmt"

// PromptPair is the (system instruction, user message) pair sent to a
// provider. Construction is pure string work with no I/O.
type PromptPair struct {
	System string
	User   string
}

// plainTemplates holds the fixed system instruction per target
// language for plain translation.
var plainTemplates = map[string]string{
	LangChinese: `You are a professional Midjourney prompt translator. Translate the prompt into Simplified Chinese.
Requirements:
1. Keep technical terms accurate (e.g., photorealistic, cinematic, octane render)
2. Preserve the structure and order of the prompt
3. Use clear and concise Chinese phrasing
4. Keep important technical parameters and style descriptors
5. Return only the translation, with no explanations or extra content`,

	LangEnglish: `You are a professional Midjourney prompt translator. Translate the prompt into English.
Requirements:
1. Keep technical terms accurate
2. Preserve the structure and order of the prompt
3. Use clear and concise English phrasing
4. Keep important technical parameters and style descriptors
5. Return only the translation, with no explanations or extra content`,

	LangJapanese: `You are a professional Midjourney prompt translator. Translate the prompt into Japanese.
Requirements:
1. Keep technical terms accurate
2. Preserve the structure and order of the prompt
3. Use clear and concise Japanese phrasing
4. Keep important technical parameters and style descriptors
5. Return only the translation, with no explanations or extra content`,

	LangKorean: `You are a professional Midjourney prompt translator. Translate the prompt into Korean.
Requirements:
1. Keep technical terms accurate
2. Preserve the structure and order of the prompt
3. Use clear and concise Korean phrasing
4. Keep important technical parameters and style descriptors
5. Return only the translation, with no explanations or extra content`,
}

const interactiveTemplate = `You are a professional Midjourney prompt translator. Translate the prompt into %s and extract 2-3 important key-phrase pairs.

Requirements:
1. The translation must be accurate and natural
2. Extract the 2-3 most important phrases (nouns, adjectives, or short phrases)
3. Return strict JSON containing the translation and the phrase alignments

Response format example:
{
  "translated": "美丽的樱花在春天盛开",
  "keyPhrases": [
    {
      "en": "beautiful",
      "zh": "美丽的",
      "enStart": 0,
      "enEnd": 9,
      "zhStart": 0,
      "zhEnd": 3
    },
    {
      "en": "sakura blossoms",
      "zh": "樱花",
      "enStart": 10,
      "enEnd": 25,
      "zhStart": 4,
      "zhEnd": 6
    }
  ]
}

Notes:
- Return JSON only, nothing else
- Character offsets must be exact
- Pick the phrases with the highest learning value`

const phraseAnalysisTemplate = `You are an expert at aligning phrases between a source text and its %s translation. Analyze the given original and translated text and extract the 2-3 most important phrase pairs.

Requirements:
1. Extract the 2-3 phrases with the highest learning value (nouns, adjectives, or short phrases)
2. Each phrase must occur in both the original and the translation
3. Return strict JSON with the phrase pairs and their character positions

Response format example:
{
  "keyPhrases": [
    {
      "en": "beautiful",
      "zh": "美丽的",
      "enStart": 0,
      "enEnd": 9,
      "zhStart": 0,
      "zhEnd": 3
    },
    {
      "en": "sunset",
      "zh": "日落",
      "enStart": 10,
      "enEnd": 16,
      "zhStart": 4,
      "zhEnd": 6
    }
  ]
}

Notes:
- Return JSON only, nothing else
- Positions are character offsets and must be exact
- Pick the phrases with the highest learning value`

// BuildPrompt constructs the provider prompt for a request. Unrecognized
// target languages fall back to the Chinese template in plain mode.
func BuildPrompt(req Request) PromptPair {
	lang := NormalizeLang(req.TargetLang)
	if lang == "" || !IsSupportedLang(lang) {
		lang = DefaultTargetLang
	}

	switch req.Mode {
	case ModeInteractive:
		return PromptPair{
			System: fmt.Sprintf(interactiveTemplate, GetLanguageName(lang)),
			User:   fmt.Sprintf("Translate the following Midjourney prompt and extract the key-phrase alignments:\n\n%s", req.Text),
		}
	case ModePhraseAnalysis:
		return PromptPair{
			System: fmt.Sprintf(phraseAnalysisTemplate, GetLanguageName(lang)),
			User:   fmt.Sprintf("Analyze the phrase alignments of the following texts:\n\nOriginal: %s\nTranslation: %s", req.Text, req.Translated),
		}
	default:
		tpl, ok := plainTemplates[lang]
		if !ok {
			tpl = plainTemplates[LangChinese]
		}
		return PromptPair{
			System: tpl,
			User:   fmt.Sprintf("Translate the following Midjourney prompt, keeping technical terms accurate:\n\n%s", req.Text),
		}
	}
}
