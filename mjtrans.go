// Package mjtrans translates Midjourney-style image-generation prompts
// between Chinese, English, Japanese and Korean using LLM providers
// (DeepSeek, Gemini) with automatic failover and optional key-phrase
// alignment extraction.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/PolyglotLabs/mjtrans"
//	    "github.com/PolyglotLabs/mjtrans/provider"
//	)
//
//	func main() {
//	    ds := provider.NewDeepSeekClient(provider.DeepSeekConfig{
//	        APIKey: os.Getenv("DEEPSEEK_API_KEY"),
//	    })
//
//	    t := mjtrans.NewTranslator(
//	        mjtrans.WithClient(mjtrans.ProviderDeepSeek, ds),
//	    )
//
//	    result, err := t.Translate(context.Background(), mjtrans.Request{
//	        Text:       "a beautiful sunset, photorealistic, cinematic",
//	        TargetLang: mjtrans.LangChinese,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Translated)
//	}
package mjtrans
