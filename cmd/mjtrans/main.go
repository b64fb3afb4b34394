// Command mjtrans translates Midjourney prompts from the command line.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PolyglotLabs/mjtrans"
	"github.com/PolyglotLabs/mjtrans/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mjtrans", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", mjtrans.DefaultTargetLang, "Target language code (zh-CN, en-US, ja-JP, ko-KR)")
	providerName := fs.String("provider", "", "Provider override (deepseek or gemini)")
	interactive := fs.Bool("interactive", false, "Extract aligned key phrases alongside the translation")
	batch := fs.Bool("batch", false, "Read one prompt per stdin line and translate sequentially (max 10)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	deepseekKey := fs.String("deepseek-key", "", "DeepSeek API key (default: DEEPSEEK_API_KEY env)")
	geminiKey := fs.String("gemini-key", "", "Gemini API key (default: GEMINI_API_KEY env)")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "mjtrans %s\n", mjtrans.FullVersion())
		return nil
	}

	ctx := context.Background()

	translator, closeFn, err := buildTranslator(ctx, *deepseekKey, *geminiKey)
	if err != nil {
		return err
	}
	defer closeFn()

	if *batch {
		return runBatch(ctx, translator, *targetLang, stdin, stdout, *jsonOutput)
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		return fmt.Errorf("no prompt given; usage: mjtrans [flags] <prompt text>")
	}

	mode := mjtrans.ModePlain
	if *interactive {
		mode = mjtrans.ModeInteractive
	}

	result, err := translator.Translate(ctx, mjtrans.Request{
		Text:       text,
		TargetLang: *targetLang,
		Mode:       mode,
		Provider:   mjtrans.Provider(*providerName),
	})
	if err != nil {
		return err
	}

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(stdout, result.Translated)
	for _, phrase := range result.KeyPhrases {
		fmt.Fprintf(stdout, "  %d. %s -> %s\n", phrase.ID, phrase.SourceText, phrase.TargetText)
	}
	return nil
}

func runBatch(ctx context.Context, translator *mjtrans.Translator, targetLang string, stdin io.Reader, stdout io.Writer, jsonOutput bool) error {
	var texts []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	items, err := translator.TranslateBatch(ctx, texts, targetLang)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, item := range items {
		if item.Err != "" {
			fmt.Fprintf(stdout, "! %s: %s\n", item.Original, item.Err)
			continue
		}
		fmt.Fprintf(stdout, "%s -> %s\n", item.Original, item.Result.Translated)
	}
	return nil
}

func buildTranslator(ctx context.Context, deepseekKey, geminiKey string) (*mjtrans.Translator, func(), error) {
	if deepseekKey == "" {
		deepseekKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if geminiKey == "" {
		geminiKey = os.Getenv("GEMINI_API_KEY")
	}

	deepseek := provider.NewDeepSeekClient(provider.DeepSeekConfig{
		APIKey:  deepseekKey,
		BaseURL: os.Getenv("DEEPSEEK_API_URL"),
	})
	gemini, err := provider.NewGeminiClient(ctx, provider.GeminiConfig{APIKey: geminiKey})
	if err != nil {
		return nil, nil, err
	}

	defaultProvider := mjtrans.Provider(os.Getenv("DEFAULT_TRANSLATE_PROVIDER"))
	if !defaultProvider.Valid() {
		defaultProvider = mjtrans.ProviderDeepSeek
	}

	translator := mjtrans.NewTranslator(
		mjtrans.WithClient(mjtrans.ProviderDeepSeek, deepseek),
		mjtrans.WithClient(mjtrans.ProviderGemini, gemini),
		mjtrans.WithDefaultProvider(defaultProvider),
	)

	return translator, func() { _ = gemini.Close() }, nil
}
