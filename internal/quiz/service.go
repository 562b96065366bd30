package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/usage"
)

// Feature is the quota feature name charged per generated quiz.
const Feature = "quiz_generation"

// defaultQuestionCount is requested from the backend when the caller
// doesn't ask for a specific length.
const defaultQuestionCount = 5

// Quota gates quota-consuming actions. Satisfied by *usage.Tracker.
type Quota interface {
	TryConsumeSession(ctx context.Context, user auth.User, feature, sessionID string) bool
}

// Recorder receives quiz lifecycle events for the local activity log.
// Satisfied by store.EventRepo.
type Recorder interface {
	AppendQuizEvent(ctx context.Context, data store.QuizEventData) error
}

// Service generates quizzes and runs their sessions. Generation charges
// the daily quota before calling the backend; a failed or malformed
// backend response falls back to the static sample set so the student
// always gets a playable quiz.
type Service struct {
	backend api.Backend
	quota   Quota
	events  Recorder // optional
}

// NewService creates a quiz Service. events may be nil to disable the
// local activity log.
func NewService(backend api.Backend, quota Quota, events Recorder) *Service {
	return &Service{backend: backend, quota: quota, events: events}
}

// Started is a freshly generated quiz session.
type Started struct {
	SessionID string
	Ref       syllabus.TopicRef
	Session   *Session

	// Fallback reports that the static sample set was used because the
	// backend was unreachable or returned a malformed quiz.
	Fallback bool
}

// Generate charges one quota use and builds a quiz session for the
// topic. Returns usage.ErrQuotaExceeded without side effects when the
// user is out of quota.
func (s *Service) Generate(ctx context.Context, user auth.User, ref syllabus.TopicRef) (*Started, error) {
	sessionID := uuid.NewString()

	if !s.quota.TryConsumeSession(ctx, user, Feature, sessionID) {
		return nil, usage.ErrQuotaExceeded
	}

	questions, fellBack := s.fetch(ctx, user, ref)
	sess, err := NewSession(questions)
	if err != nil {
		// Unreachable while the fallback set is non-empty.
		return nil, err
	}

	s.record(ctx, store.QuizEventData{
		SessionID: sessionID,
		Kind:      "started",
		Subject:   ref.Subject,
		Topic:     ref.Topic.ID,
	})

	return &Started{
		SessionID: sessionID,
		Ref:       ref,
		Session:   sess,
		Fallback:  fellBack,
	}, nil
}

// RecordAnswer logs one revealed answer to the local activity log.
func (s *Service) RecordAnswer(ctx context.Context, sessionID string, questionIndex int, correct bool) {
	s.record(ctx, store.QuizEventData{
		SessionID:     sessionID,
		Kind:          "answered",
		QuestionIndex: questionIndex,
		Correct:       correct,
	})
}

// RecordCompletion logs the final score to the local activity log.
func (s *Service) RecordCompletion(ctx context.Context, sessionID string, sum Summary) {
	s.record(ctx, store.QuizEventData{
		SessionID: sessionID,
		Kind:      "completed",
		Score:     sum.Score,
		Total:     sum.Total,
	})
}

// fetch asks the backend for questions, falling back to the sample set
// on any transport or validation failure.
func (s *Service) fetch(ctx context.Context, user auth.User, ref syllabus.TopicRef) ([]Question, bool) {
	payload, err := s.backend.GenerateQuiz(ctx, api.GenerateQuizRequest{
		UserID:        user.ID,
		Subject:       ref.Subject,
		Chapter:       ref.Chapter,
		Topic:         ref.Topic.Name,
		QuestionCount: defaultQuestionCount,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: generate quiz: %v\n", err)
		return FallbackQuestions(ref.Subject, ref.Topic.Name), true
	}

	questions := make([]Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		converted := Question{
			Prompt:       q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
			Explanation:  q.Explanation,
		}
		if err := converted.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: generated quiz rejected: %v\n", err)
			return FallbackQuestions(ref.Subject, ref.Topic.Name), true
		}
		questions = append(questions, converted)
	}
	if len(questions) == 0 {
		return FallbackQuestions(ref.Subject, ref.Topic.Name), true
	}
	return questions, false
}

// record appends to the activity log, best effort.
func (s *Service) record(ctx context.Context, data store.QuizEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendQuizEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record quiz event: %v\n", err)
	}
}
