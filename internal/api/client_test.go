package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:       srv.URL,
		Timeout:       2 * time.Second,
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	})
}

func TestGenerateQuizValidPayload(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-quiz" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req GenerateQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Subject != "Physics" || req.QuestionCount != 5 {
			t.Errorf("request = %+v", req)
		}
		w.Write([]byte(`{"quiz":{"questions":[
			{"question":"Q1","options":["a","b"],"correct_answer":1,"explanation":"because"}
		]}}`))
	}))

	quiz, err := c.GenerateQuiz(context.Background(), GenerateQuizRequest{
		UserID: "u1", Subject: "Physics", Chapter: "Gravitation",
		Topic: "Kepler's Laws", Difficulty: "medium", QuestionCount: 5,
	})
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(quiz.Questions) != 1 || quiz.Questions[0].CorrectAnswer != 1 {
		t.Errorf("quiz = %+v", quiz)
	}
}

func TestGenerateQuizRejectsMalformedPayload(t *testing.T) {
	cases := map[string]string{
		"missing questions": `{"quiz":{}}`,
		"one option":        `{"quiz":{"questions":[{"question":"Q","options":["a"],"correct_answer":0,"explanation":""}]}}`,
		"no quiz key":       `{"data":{}}`,
		"not json":          `garbage`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(body))
			}))
			_, err := c.GenerateQuiz(context.Background(), GenerateQuizRequest{})
			if err == nil {
				t.Fatal("expected payload rejection")
			}
			var inv *ErrInvalidPayload
			var unavail *ErrUnavailable
			if !errors.As(err, &inv) && !errors.As(err, &unavail) {
				t.Errorf("unexpected error type: %v", err)
			}
		})
	}
}

func TestRetryThenSuccess(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"response":"hello"}`))
	}))

	got, err := c.Chat(context.Background(), ChatRequest{UserID: "u1", SessionID: "s1", Message: "hi"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "hello" {
		t.Errorf("response = %q", got)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestExhaustedRetriesReturnUnavailable(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected failure")
	}
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *ErrUnavailable", err)
	}
	var status *ErrBadStatus
	if !errors.As(err, &status) || status.Status != http.StatusInternalServerError {
		t.Errorf("cause = %v, want wrapped bad status", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want all attempts used", calls.Load())
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(Config{
		BaseURL:       srv.URL,
		Timeout:       time.Second,
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
		Token:         func() string { return "tok-123" },
	})
	if err := c.Health(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestContextCancellationIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Health(ctx)
	if err == nil {
		t.Fatal("expected failure")
	}
	if calls.Load() > 1 {
		t.Errorf("calls = %d, cancelled context must not retry", calls.Load())
	}
}

func TestGenerateStudyPlanValidation(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"study_plan":{
			"id":"plan-1","title":"12-week JEE plan","description":"","duration":"12 weeks",
			"subjects":["Physics"],"goals":["Master mechanics"],
			"schedule":[{"week":1,"topics":["Kinematics"],"goals":["NCERT Ch 3"]}],
			"created_at":"2025-09-15T10:00:00Z"
		}}`))
	}))

	plan, err := c.GenerateStudyPlan(context.Background(), GenerateStudyPlanRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("GenerateStudyPlan: %v", err)
	}
	if plan.Title != "12-week JEE plan" || len(plan.Schedule) != 1 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestGenerateStudyPlanRejectsMissingSchedule(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"study_plan":{"title":"no schedule"}}`))
	}))

	_, err := c.GenerateStudyPlan(context.Background(), GenerateStudyPlanRequest{})
	if err == nil {
		t.Fatal("expected schema rejection")
	}
}
