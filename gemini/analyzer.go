// Package gemini implements pattern analysis of page components with
// Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pagecomp"
	"google.golang.org/genai"
)

// DefaultTemperature is used when the config leaves temperature unset.
const DefaultTemperature = float32(0.4)

// Generator sends a single content generation request.
// *genai.Models satisfies it; tests substitute a fake.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure the genai client satisfies Generator at compile time.
var _ Generator = (*genai.Models)(nil)

// Ensure Analyzer implements pagecomp.Analyzer at compile time.
var _ pagecomp.Analyzer = (*Analyzer)(nil)

// Analyzer implements pagecomp.Analyzer using Google Gemini.
type Analyzer struct {
	gen         Generator
	model       string
	temperature float32
}

// NewAnalyzer creates a new Analyzer that sends requests through gen with
// the model and temperature from cfg.
func NewAnalyzer(gen Generator, cfg pagecomp.GeminiConfig) *Analyzer {
	a := &Analyzer{
		gen:         gen,
		model:       cfg.Model,
		temperature: DefaultTemperature,
	}
	if a.model == "" {
		a.model = pagecomp.DefaultModel
	}
	if cfg.Temperature != nil {
		a.temperature = *cfg.Temperature
	}
	return a
}

// Analyze sends a digest of the summary as one prompt and returns the
// model's answer verbatim. The request is not retried.
func (a *Analyzer) Analyze(ctx context.Context, summary pagecomp.PageSummary) (string, error) {
	if len(summary) == 0 {
		return pagecomp.NothingToAnalyze, nil
	}

	prompt, err := BuildUserPrompt(summary)
	if err != nil {
		return "", err
	}

	result, err := a.gen.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, "user")},
		BuildConfig(a.temperature),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagecomp.Errorf(pagecomp.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: "You are a helpful assistant."}},
		},
		Temperature: &temperature,
	}
}

// BuildUserPrompt builds the analysis instruction followed by the digest
// of every page as indented JSON.
func BuildUserPrompt(summary pagecomp.PageSummary) (string, error) {
	var digest strings.Builder
	if err := pagecomp.EncodeJSON(&digest, pagecomp.NewDigestSet(summary)); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are a senior UI/UX architect.\n\n")
	sb.WriteString("Given summaries of up to 5 HTML pages, identify reusable component models, ")
	sb.WriteString("common patterns, unique elements, and how many component types cover 90% ")
	sb.WriteString("of the content.\n\n")
	sb.WriteString("Component summaries:\n")
	sb.WriteString(strings.TrimSuffix(digest.String(), "\n"))
	return sb.String(), nil
}
