package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ironsheep/element-lens/internal/elements"
	"github.com/ironsheep/element-lens/internal/ocr"
	"github.com/ironsheep/element-lens/internal/responder"
)

// PromptTemplate is the question sent to the model for a matched element.
const PromptTemplate = "Please provide detailed information about the element: %s"

// Kind is the terminal outcome of one analysis.
type Kind int

const (
	// KindDone means the model described the element.
	KindDone Kind = iota
	// KindNoText means OCR found nothing to look up.
	KindNoText
	// KindNotFound means the OCR text is not a known element symbol.
	KindNotFound
	// KindQueryFailed means the element matched but the model call failed.
	KindQueryFailed
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindNoText:
		return "no_text"
	case KindNotFound:
		return "not_found"
	case KindQueryFailed:
		return "query_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of Analyze. Every Kind is a normal result; only engine
// failures during extraction are returned as errors.
type Result struct {
	Kind Kind

	// Text is the raw OCR output.
	Text string

	// Symbol is Text trimmed and uppercased. Empty for KindNoText.
	Symbol string

	// Record is set for KindDone and KindQueryFailed.
	Record elements.Record

	// Prompt is the question sent to the model, if one was sent.
	Prompt string

	// Details is the model's answer for KindDone.
	Details string

	// Err is the model failure for KindQueryFailed.
	Err error
}

// Element renders the matched element as "Iron (FE)".
func (r Result) Element() string {
	return r.Record.Label()
}

// Message renders the result as the command-line flow prints it.
func (r Result) Message() string {
	switch r.Kind {
	case KindDone:
		return r.Details
	case KindNoText:
		return "No element symbol detected in the image."
	case KindNotFound:
		return fmt.Sprintf("Element symbol '%s' not found in the dictionary.", r.Symbol)
	case KindQueryFailed:
		return fmt.Sprintf("Error while getting data from Gemini: %v", r.Err)
	default:
		return fmt.Sprintf("unexpected result %s", r.Kind)
	}
}

// Analyzer runs extract, normalize, lookup and ask in that order.
//
// An Analyzer holds no per-request state and may be shared between goroutines
// as long as its Extractor and Responder are.
type Analyzer struct {
	extractor ocr.Extractor
	table     *elements.Table
	responder responder.Responder
	logger    *slog.Logger
}

// New wires an Analyzer. A nil table selects elements.Default and a nil logger
// discards log output.
func New(extractor ocr.Extractor, table *elements.Table, resp responder.Responder, logger *slog.Logger) *Analyzer {
	if table == nil {
		table = elements.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		extractor: extractor,
		table:     table,
		responder: resp,
		logger:    logger,
	}
}

// Analyze identifies the element pictured at imagePath and asks the model to
// describe it.
//
// The only error return is an extraction failure, passed through unchanged so
// callers can match ocr.ErrImageNotFound, ocr.ErrImageDecode and ocr.ErrEngine.
// Every later outcome, including a failed model call, is reported through
// Result.Kind.
func (a *Analyzer) Analyze(ctx context.Context, imagePath string) (Result, error) {
	text, err := a.extractor.Extract(ctx, imagePath)
	if err != nil {
		return Result{}, err
	}

	res := Result{Text: text}
	if strings.TrimSpace(text) == "" || text == ocr.NoTextDetected {
		res.Kind = KindNoText
		a.logger.Info("no element symbol detected", "image", imagePath)
		return res, nil
	}

	res.Symbol = Normalize(text)
	a.logger.Debug("detected element symbol", "text", text, "symbol", res.Symbol)

	rec, ok := a.table.Lookup(res.Symbol)
	if !ok {
		res.Kind = KindNotFound
		a.logger.Info("element symbol not found", "symbol", res.Symbol)
		return res, nil
	}
	res.Record = rec
	res.Prompt = BuildPrompt(rec.Name)

	details, err := a.responder.Ask(ctx, res.Prompt)
	if err != nil {
		res.Kind = KindQueryFailed
		res.Err = err
		a.logger.Warn("model query failed", "symbol", rec.Symbol, "error", err)
		return res, nil
	}

	res.Kind = KindDone
	res.Details = details
	a.logger.Info("element described", "symbol", rec.Symbol, "element", rec.Name)
	return res, nil
}

// Normalize trims surrounding whitespace and uppercases OCR output.
func Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// BuildPrompt returns the model question for an element display name.
func BuildPrompt(name string) string {
	return fmt.Sprintf(PromptTemplate, name)
}
