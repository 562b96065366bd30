package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Backend endpoints.
const (
	endpointHealth            = "/api/health"
	endpointSyllabus          = "/api/syllabus"
	endpointGenerateContent   = "/api/generate-content"
	endpointGenerateQuiz      = "/api/generate-quiz"
	endpointChat              = "/api/chat"
	endpointImageSolve        = "/api/image-solve"
	endpointStudyPlanChat     = "/api/study-plan-chat"
	endpointGenerateStudyPlan = "/api/generate-study-plan"
	endpointTrackUsage        = "/api/track-usage"
)

// Backend is the remote Praxis API consumed by the domain services.
// The production implementation is Client; tests use Mock.
type Backend interface {
	Health(ctx context.Context) error
	Syllabus(ctx context.Context) ([]SyllabusSubject, error)
	GenerateContent(ctx context.Context, req GenerateContentRequest) (ContentPayload, error)
	GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (QuizPayload, error)
	Chat(ctx context.Context, req ChatRequest) (string, error)
	SolveImage(ctx context.Context, req ImageSolveRequest) (string, error)
	StudyPlanChat(ctx context.Context, req StudyPlanChatRequest) (string, error)
	GenerateStudyPlan(ctx context.Context, req GenerateStudyPlanRequest) (StudyPlan, error)
	TrackUsage(ctx context.Context, req TrackUsageRequest) (TrackUsageResponse, error)
}

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds a single attempt.
	Timeout time.Duration

	// RetryAttempts is the total number of attempts per request.
	RetryAttempts int

	// RetryDelay is the base backoff; attempt n waits RetryDelay×n.
	RetryDelay time.Duration

	// Token, when set, supplies the bearer token attached to requests.
	Token func() string
}

// DefaultConfig returns the client defaults: a short timeout and a single
// retry so the UI falls back to canned content quickly.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://praxis-ai.fly.dev",
		Timeout:       5 * time.Second,
		RetryAttempts: 1,
		RetryDelay:    500 * time.Millisecond,
	}
}

// Client talks to the Praxis backend over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client. Zero config fields fall back to DefaultConfig.
func New(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = def.RetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	return &Client{cfg: cfg, http: &http.Client{}}
}

func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, endpointHealth, nil)
	return err
}

func (c *Client) Syllabus(ctx context.Context) ([]SyllabusSubject, error) {
	raw, err := c.do(ctx, http.MethodGet, endpointSyllabus, nil)
	if err != nil {
		return nil, err
	}
	var env struct {
		Syllabus []SyllabusSubject `json:"syllabus"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return env.Syllabus, nil
}

func (c *Client) GenerateContent(ctx context.Context, req GenerateContentRequest) (ContentPayload, error) {
	raw, err := c.do(ctx, http.MethodPost, endpointGenerateContent, req)
	if err != nil {
		return ContentPayload{}, err
	}
	var env struct {
		Content ContentPayload `json:"content"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ContentPayload{}, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return env.Content, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (QuizPayload, error) {
	raw, err := c.do(ctx, http.MethodPost, endpointGenerateQuiz, req)
	if err != nil {
		return QuizPayload{}, err
	}
	var env struct {
		Quiz json.RawMessage `json:"quiz"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Quiz == nil {
		return QuizPayload{}, &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("missing quiz payload: %v", err)}
	}
	if err := validatePayload(quizPayloadSchema, env.Quiz); err != nil {
		return QuizPayload{}, err
	}
	var quiz QuizPayload
	if err := json.Unmarshal(env.Quiz, &quiz); err != nil {
		return QuizPayload{}, &ErrInvalidPayload{Content: env.Quiz, Err: err}
	}
	return quiz, nil
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	return c.textResponse(ctx, endpointChat, req, "response")
}

func (c *Client) SolveImage(ctx context.Context, req ImageSolveRequest) (string, error) {
	return c.textResponse(ctx, endpointImageSolve, req, "solution")
}

func (c *Client) StudyPlanChat(ctx context.Context, req StudyPlanChatRequest) (string, error) {
	return c.textResponse(ctx, endpointStudyPlanChat, req, "response")
}

func (c *Client) GenerateStudyPlan(ctx context.Context, req GenerateStudyPlanRequest) (StudyPlan, error) {
	raw, err := c.do(ctx, http.MethodPost, endpointGenerateStudyPlan, req)
	if err != nil {
		return StudyPlan{}, err
	}
	var env struct {
		StudyPlan json.RawMessage `json:"study_plan"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.StudyPlan == nil {
		return StudyPlan{}, &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("missing study plan: %v", err)}
	}
	if err := validatePayload(studyPlanSchema, env.StudyPlan); err != nil {
		return StudyPlan{}, err
	}
	var plan StudyPlan
	if err := json.Unmarshal(env.StudyPlan, &plan); err != nil {
		return StudyPlan{}, &ErrInvalidPayload{Content: env.StudyPlan, Err: err}
	}
	return plan, nil
}

func (c *Client) TrackUsage(ctx context.Context, req TrackUsageRequest) (TrackUsageResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, endpointTrackUsage, req)
	if err != nil {
		return TrackUsageResponse{}, err
	}
	var resp TrackUsageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return TrackUsageResponse{}, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return resp, nil
}

// textResponse posts req and extracts a single string field from the body.
func (c *Client) textResponse(ctx context.Context, endpoint string, req any, field string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return "", err
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", &ErrInvalidPayload{Content: raw, Err: err}
	}
	var text string
	if err := json.Unmarshal(env[field], &text); err != nil {
		return "", &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("missing %q field: %w", field, err)}
	}
	return text, nil
}

// do performs one request with per-attempt timeout and linear backoff
// between attempts. Context cancellation is never retried.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		raw, err := c.attempt(ctx, method, path, payload)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt == c.cfg.RetryAttempts {
			break
		}

		wait := time.Duration(attempt) * c.cfg.RetryDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, &ErrUnavailable{Err: lastErr}
}

func (c *Client) attempt(ctx context.Context, method, path string, payload []byte) (json.RawMessage, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != nil {
		if tok := c.cfg.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrBadStatus{Status: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
