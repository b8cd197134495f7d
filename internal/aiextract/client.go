package aiextract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
)

// Default review threshold for AI-derived results: stricter than the rule
// engine, reflecting the weaker per-field provenance of a single model
// response.
const defaultReviewThreshold = 75.0

// Config for the AI extractor client.
type Config struct {
	APIKey          string        // if empty, falls back to env AI_API_KEY
	BaseURL         string        // default https://api.openai.com/v1
	Model           string        // e.g., "gpt-4o-mini"
	Temperature     float32       // 0..2
	Timeout         time.Duration // http client timeout
	ReviewThreshold float64       // confidence floor, default 75
}

// Client implements extractor.FieldExtractor against a chat-completions API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.ReviewThreshold <= 0 || cfg.ReviewThreshold > 100 {
		cfg.ReviewThreshold = defaultReviewThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Available reports whether the AI path is configured at all.
func (c *Client) Available() bool {
	return c.cfg.APIKey != ""
}

// response is the wire shape the model must return.
type response struct {
	Fields          map[string]string `json:"fields"`
	Confidence      float64           `json:"confidence"`
	Analysis        string            `json:"analysis,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	RiskLevel       string            `json:"risk_level,omitempty"`
}

// ExtractFields sends the document text to the model and converts the
// validated response into the shared extractor outcome. Any failure here is
// returned to the caller, which falls back to the rule engine.
func (c *Client) ExtractFields(ctx context.Context, docType constants.DocType, text string) (extractor.Outcome, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("aiextract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"doc_type", docType,
		"text_len", len(text),
	)

	schema := BuildResponseSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(docType)},
			{"role": "user", "content": buildUserPrompt(docType, text) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("aiextract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extractor.Outcome{}, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("aiextract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extractor.Outcome{}, fmt.Errorf("decode model response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("aiextract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extractor.Outcome{}, fmt.Errorf("no choices in model response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("aiextract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extractor.Outcome{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var out response
	if err := json.Unmarshal(content, &out); err != nil {
		return extractor.Outcome{}, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("aiextract.ok",
		"req_id", rid,
		"doc_type", docType,
		"fields", len(out.Fields),
		"confidence", out.Confidence,
		"risk_level", out.RiskLevel,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return c.toOutcome(docType, out), nil
}

// toOutcome maps the model response onto the shared contract. Every field
// carries the run's overall confidence: the model reports one number for
// the whole response.
func (c *Client) toOutcome(docType constants.DocType, r response) extractor.Outcome {
	out := extractor.Outcome{
		Confidence: r.Confidence,
		Source:     "ai",
	}
	for name, value := range r.Fields {
		v := strings.TrimSpace(value)
		if v == "" {
			continue
		}
		out.Fields = append(out.Fields, extractor.FieldValue{
			Name:       name,
			Value:      v,
			Type:       guessFieldType(name),
			Confidence: r.Confidence,
			Method:     constants.MethodAI,
		})
	}
	if r.Analysis != "" {
		out.Notes = append(out.Notes, "analysis: "+r.Analysis)
	}
	if r.RiskLevel != "" {
		out.Notes = append(out.Notes, "risk_level: "+r.RiskLevel)
	}
	out.Notes = append(out.Notes, r.Recommendations...)
	out.NeedsReview = out.Confidence < c.cfg.ReviewThreshold ||
		len(out.Fields) < constants.MinFieldCount(docType)
	return out
}

func guessFieldType(name string) constants.FieldType {
	switch {
	case strings.Contains(name, "date"):
		return constants.FieldDate
	case strings.Contains(name, "income"), strings.Contains(name, "balance"),
		strings.Contains(name, "payment"), strings.Contains(name, "salary"):
		return constants.FieldCurrency
	case strings.Contains(name, "count"), strings.Contains(name, "number"):
		return constants.FieldNumber
	default:
		return constants.FieldText
	}
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("ai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
