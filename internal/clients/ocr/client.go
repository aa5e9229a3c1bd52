package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
	"github.com/datum-redsoft/expense-backend/internal/platform/config"
)

const apiVersion = "2024-11-30"

// analyzeRequest is the document payload sent to the analysis endpoint.
type analyzeRequest struct {
	Base64Source string `json:"base64Source"`
}

type analyzeResult struct {
	Content string `json:"content"`
	Pages   []struct {
		Lines []struct {
			Content string `json:"content"`
		} `json:"lines"`
	} `json:"pages"`
}

type analyzeOperation struct {
	Status        string         `json:"status"`
	AnalyzeResult *analyzeResult `json:"analyzeResult"`
	Error         *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client extracts text from documents through a Document Intelligence style
// read API. Analysis is a long-running job: the submit call returns an
// operation URL which is polled until the job settles.
type Client struct {
	cfg config.OCRConfig

	initOnce   sync.Once
	httpClient *http.Client
}

func NewClient(cfg config.OCRConfig) *Client {
	return &Client{cfg: cfg}
}

// IsAvailable reports configuration completeness only; no network call.
func (c *Client) IsAvailable() bool {
	return c.cfg.IsValid()
}

func (c *Client) client() *http.Client {
	c.initOnce.Do(func() {
		c.httpClient = &http.Client{Timeout: c.cfg.Timeout}
	})
	return c.httpClient
}

// ExtractText submits the document for analysis and blocks until the job
// completes. The full-document content is preferred; when the engine returns
// none, per-page lines are joined by newlines instead.
func (c *Client) ExtractText(ctx context.Context, document []byte) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operationURL, err := c.submitAnalysis(ctx, document)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrOCR, err)
	}

	result, err := c.pollOperation(ctx, operationURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrOCR, err)
	}

	text := result.Content
	if text == "" {
		var sb strings.Builder
		for _, page := range result.Pages {
			for _, line := range page.Lines {
				sb.WriteString(line.Content)
				sb.WriteString("\n")
			}
		}
		text = sb.String()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text recognized in document", apperrors.ErrOCR)
	}

	logger.Info("OCR text extracted", "length", len(text))
	return text, nil
}

// submitAnalysis starts the analysis job and returns the operation URL from
// the Operation-Location header.
func (c *Client) submitAnalysis(ctx context.Context, document []byte) (string, error) {
	endpoint := strings.TrimSuffix(c.cfg.Endpoint, "/")
	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		endpoint, c.cfg.Model, apiVersion)

	body, err := json.Marshal(analyzeRequest{
		Base64Source: base64.StdEncoding.EncodeToString(document),
	})
	if err != nil {
		return "", fmt.Errorf("encoding analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("submitting document for analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("analysis submit returned HTTP %d: %s", resp.StatusCode, string(payload))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("analysis submit response missing Operation-Location header")
	}
	return operationURL, nil
}

// pollOperation polls the operation URL until the job succeeds or fails.
func (c *Client) pollOperation(ctx context.Context, operationURL string) (*analyzeResult, error) {
	ticker := time.NewTicker(c.cfg.RetryDelay)
	defer ticker.Stop()

	for attempt := 1; attempt <= c.cfg.MaxRetryAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		op, err := c.fetchOperation(ctx, operationURL)
		if err != nil {
			return nil, err
		}

		switch op.Status {
		case "succeeded":
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("analysis succeeded without a result payload")
			}
			return op.AnalyzeResult, nil
		case "failed":
			if op.Error != nil {
				return nil, fmt.Errorf("analysis failed: %s: %s", op.Error.Code, op.Error.Message)
			}
			return nil, fmt.Errorf("analysis failed without error detail")
		}
		// running / notStarted: keep polling
	}
	return nil, fmt.Errorf("analysis did not complete after %d polls", c.cfg.MaxRetryAttempts)
}

func (c *Client) fetchOperation(ctx context.Context, operationURL string) (*analyzeOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("polling analysis operation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("analysis poll returned HTTP %d: %s", resp.StatusCode, string(payload))
	}

	var op analyzeOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, fmt.Errorf("decoding analysis operation: %w", err)
	}
	return &op, nil
}
