package api

import (
	"context"
	"sync"
)

// Mock is a deterministic Backend for tests. Per-method response queues
// are consumed FIFO; an empty queue yields ErrUnavailable. All calls are
// recorded.
type Mock struct {
	mu sync.Mutex

	SyllabusResponses []MockResult[[]SyllabusSubject]
	QuizResponses     []MockResult[QuizPayload]
	ContentResponses  []MockResult[ContentPayload]
	ChatResponses     []MockResult[string]
	PlanChats         []MockResult[string]
	Plans             []MockResult[StudyPlan]
	TrackResults      []MockResult[TrackUsageResponse]
	HealthErr         error

	SyllabusCalls int
	QuizCalls     []GenerateQuizRequest
	ContentCalls  []GenerateContentRequest
	ChatCalls     []ChatRequest
	PlanChatReqs  []StudyPlanChatRequest
	PlanCalls     []GenerateStudyPlanRequest
	TrackCalls    []TrackUsageRequest
}

// MockResult is one canned response: a value or an error.
type MockResult[T any] struct {
	Value T
	Err   error
}

// NewMock creates an empty Mock; every call fails until responses are
// queued.
func NewMock() *Mock {
	return &Mock{}
}

func pop[T any](queue *[]MockResult[T]) (T, error) {
	if len(*queue) == 0 {
		var zero T
		return zero, &ErrUnavailable{}
	}
	head := (*queue)[0]
	*queue = (*queue)[1:]
	return head.Value, head.Err
}

func (m *Mock) Health(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HealthErr
}

func (m *Mock) Syllabus(context.Context) ([]SyllabusSubject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SyllabusCalls++
	return pop(&m.SyllabusResponses)
}

func (m *Mock) GenerateContent(_ context.Context, req GenerateContentRequest) (ContentPayload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContentCalls = append(m.ContentCalls, req)
	return pop(&m.ContentResponses)
}

func (m *Mock) GenerateQuiz(_ context.Context, req GenerateQuizRequest) (QuizPayload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuizCalls = append(m.QuizCalls, req)
	return pop(&m.QuizResponses)
}

func (m *Mock) Chat(_ context.Context, req ChatRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls = append(m.ChatCalls, req)
	return pop(&m.ChatResponses)
}

func (m *Mock) SolveImage(_ context.Context, req ImageSolveRequest) (string, error) {
	return "", &ErrUnavailable{}
}

func (m *Mock) StudyPlanChat(_ context.Context, req StudyPlanChatRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanChatReqs = append(m.PlanChatReqs, req)
	return pop(&m.PlanChats)
}

func (m *Mock) GenerateStudyPlan(_ context.Context, req GenerateStudyPlanRequest) (StudyPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanCalls = append(m.PlanCalls, req)
	return pop(&m.Plans)
}

func (m *Mock) TrackUsage(_ context.Context, req TrackUsageRequest) (TrackUsageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrackCalls = append(m.TrackCalls, req)
	return pop(&m.TrackResults)
}
