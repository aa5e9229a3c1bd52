package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
	"github.com/datum-redsoft/expense-backend/internal/platform/config"
)

// jsonObjectRe matches the first balanced JSON object in model output,
// tolerating one level of nesting. Models often wrap the JSON in commentary.
var jsonObjectRe = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)

// fallbackJSON is substituted when the model answers but no JSON object can
// be recovered from its output.
const fallbackJSON = `{"vendor_name":"Error al procesar","invoice_date":"Not found","total_amount":"0","currency":"Not found"}`

const promptTemplate = `You are an AI assistant that extracts information from invoices and receipts.

Extract ONLY the following 4 fields from this invoice/receipt text and return a valid JSON object:

Text: %s

Extract these fields:
- vendor_name: Name of the business/company that issued the invoice
- invoice_date: Date of the invoice (format YYYY-MM-DD)
- total_amount: Total amount (numbers only, no currency symbols)
- currency: Currency used (USD, EUR, MXN, PEN, etc.)

Return ONLY this JSON format, no other text:
{"vendor_name":"...","invoice_date":"...","total_amount":"...","currency":"..."}

Use "Not found" for missing information.`

// Extractor extracts invoice fields from OCR text through an OpenAI-compatible
// chat completion endpoint.
type Extractor struct {
	cfg    config.LLMConfig
	client *openai.Client

	// sleep is replaceable in tests to avoid real backoff delays.
	sleep func(time.Duration)
}

func NewExtractor(cfg config.LLMConfig) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.Token)
	if cfg.APIURL != "" {
		clientCfg.BaseURL = cfg.APIURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Extractor{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
		sleep:  time.Sleep,
	}
}

func (e *Extractor) IsAvailable() bool {
	return e.cfg.IsValid()
}

func (e *Extractor) Method() string {
	return "AI"
}

// ExtractFields sends the OCR text to the model and parses its answer into
// the four invoice fields. Transport failures are retried with linearly
// increasing backoff; a reply with no recoverable JSON yields the fallback
// outcome rather than an error.
func (e *Extractor) ExtractFields(ctx context.Context, ocrText string) (services.ExtractionOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(ocrText) == "" {
		return services.ExtractionOutcome{}, fmt.Errorf("%w: ocr text is empty", apperrors.ErrExtraction)
	}

	prompt := fmt.Sprintf(promptTemplate, strings.ReplaceAll(ocrText, `"`, `\"`))

	content, err := e.completeWithRetry(ctx, prompt)
	if err != nil {
		return services.ExtractionOutcome{}, fmt.Errorf("%w: %v", apperrors.ErrExtraction, err)
	}

	raw := jsonObjectRe.FindString(content)
	fallback := false
	if raw == "" {
		logger.Warn("No JSON object found in model output, using fallback", "output_length", len(content))
		raw = fallbackJSON
		fallback = true
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logger.Warn("Model JSON failed to decode, using fallback", "error", err)
		parsed = nil
		fallback = true
		if err := json.Unmarshal([]byte(fallbackJSON), &parsed); err != nil {
			return services.ExtractionOutcome{}, fmt.Errorf("%w: decoding fallback: %v", apperrors.ErrExtraction, err)
		}
	}

	return services.ExtractionOutcome{
		Fields: services.InvoiceData{
			VendorName:  valueOrDefault(parsed, "vendor_name", "Not found"),
			InvoiceDate: valueOrDefault(parsed, "invoice_date", "Not found"),
			TotalAmount: valueOrDefault(parsed, "total_amount", "0"),
			Currency:    valueOrDefault(parsed, "currency", "Not found"),
		},
		Fallback:   fallback,
		RawContent: content,
	}, nil
}

// completeWithRetry runs the chat completion up to MaxRetryAttempts times,
// sleeping RetryDelay*attempt between failures.
func (e *Extractor) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// A misconfigured attempt count must not skip the loop entirely.
	maxAttempts := e.cfg.MaxRetryAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: e.cfg.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   e.cfg.MaxTokens,
			Temperature: e.cfg.Temperature,
			Stream:      false,
		})
		if err != nil {
			lastErr = err
			logger.Warn("Chat completion request failed", "attempt", attempt, "max_attempts", maxAttempts, "error", err)
			if attempt < maxAttempts {
				e.sleep(e.cfg.RetryDelay * time.Duration(attempt))
			}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("chat completion returned no choices")
			logger.Warn("Chat completion returned no choices", "attempt", attempt)
			if attempt < maxAttempts {
				e.sleep(e.cfg.RetryDelay * time.Duration(attempt))
			}
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

func valueOrDefault(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return def
}
