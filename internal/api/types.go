package api

// Wire types for the Praxis backend API. Field names follow the backend's
// snake_case JSON contract; domain packages convert to their own types.

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// QuizPayload is the generated quiz.
type QuizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuizRequest asks the backend to generate a quiz for a topic.
type GenerateQuizRequest struct {
	UserID        string `json:"user_id"`
	Subject       string `json:"subject"`
	Chapter       string `json:"chapter"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty,omitempty"`
	QuestionCount int    `json:"question_count,omitempty"`
}

// ContentPayload is generated study content for a topic.
type ContentPayload struct {
	Learn  string `json:"learn"`
	Revise string `json:"revise"`
}

// GenerateContentRequest asks the backend for study content.
type GenerateContentRequest struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Topic   string `json:"topic"`
}

// ContextMessage is one prior chat turn sent as conversation context.
type ContextMessage struct {
	Type    string `json:"type"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is one tutoring chat turn.
type ChatRequest struct {
	UserID    string           `json:"user_id"`
	SessionID string           `json:"session_id"`
	Message   string           `json:"message"`
	Context   []ContextMessage `json:"context,omitempty"`
}

// ImageSolveRequest asks the backend to solve a problem from an image.
type ImageSolveRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	ImageData string `json:"image_data"` // base64
	Question  string `json:"question,omitempty"`
}

// WeekPlan is one week of a study plan schedule.
type WeekPlan struct {
	Week   int      `json:"week"`
	Topics []string `json:"topics"`
	Goals  []string `json:"goals"`
}

// StudyPlan is a generated study plan.
type StudyPlan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Subjects    []string   `json:"subjects"`
	Goals       []string   `json:"goals"`
	Schedule    []WeekPlan `json:"schedule"`
	CreatedAt   string     `json:"created_at"`
}

// StudyPlanChatRequest is one study-plan chat turn.
type StudyPlanChatRequest struct {
	UserID      string           `json:"user_id"`
	Message     string           `json:"message"`
	Context     []ContextMessage `json:"context,omitempty"`
	CurrentPlan *StudyPlan       `json:"current_plan,omitempty"`
}

// PlanPreferences describe the plan the student wants generated.
type PlanPreferences struct {
	Subjects  []string `json:"subjects"`
	Duration  string   `json:"duration"`
	Intensity string   `json:"intensity"`
}

// GenerateStudyPlanRequest asks the backend to turn a plan chat into a plan.
type GenerateStudyPlanRequest struct {
	UserID      string           `json:"user_id"`
	ChatHistory []ContextMessage `json:"chat_history"`
	Preferences PlanPreferences  `json:"preferences"`
}

// TrackUsageRequest mirrors one local quota consumption to the backend.
type TrackUsageRequest struct {
	UserID      string `json:"user_id"`
	FeatureName string `json:"feature_name"`
	SessionID   string `json:"session_id,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC 3339
}

// TrackUsageResponse reports the backend's view of the counter.
type TrackUsageResponse struct {
	Success    bool `json:"success"`
	UsageCount int  `json:"usage_count"`
	UsageLimit int  `json:"usage_limit"`
}

// SyllabusSubject et al. mirror the backend's syllabus tree.
type SyllabusSubject struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Chapters []SyllabusChapter `json:"chapters"`
}

type SyllabusChapter struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Class  int             `json:"class"`
	Topics []SyllabusTopic `json:"topics"`
}

type SyllabusTopic struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Subtopics []string `json:"subtopics,omitempty"`
}
