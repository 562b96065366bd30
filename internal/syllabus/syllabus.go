package syllabus

import "fmt"

// Class is the school class a chapter belongs to.
type Class int

const (
	Class11 Class = 11
	Class12 Class = 12
)

// Subject is a top-level syllabus subject (Physics, Chemistry, Mathematics).
type Subject struct {
	ID       string
	Name     string
	Chapters []Chapter
}

// Chapter groups topics within a subject.
type Chapter struct {
	ID     string
	Name   string
	Class  Class
	Topics []Topic
}

// Topic is a study unit. Content and quizzes are generated per topic.
type Topic struct {
	ID        string
	Name      string
	Subtopics []string
}

// TopicRef locates a topic within the tree, carrying the display names
// needed by content and quiz generation requests.
type TopicRef struct {
	Subject string // subject name
	Chapter string // chapter name
	Topic   Topic
}

// tree holds the syllabus with precomputed indices.
type tree struct {
	subjects  []Subject
	byID      map[string]*Subject
	topicByID map[string]TopicRef
}

// t is the package-level tree singleton, set by init() in seed.go.
var t *tree

func buildTree(subjects []Subject) *tree {
	tr := &tree{
		subjects:  subjects,
		byID:      make(map[string]*Subject, len(subjects)),
		topicByID: make(map[string]TopicRef),
	}
	for i := range tr.subjects {
		s := &tr.subjects[i]
		tr.byID[s.ID] = s
		for _, ch := range s.Chapters {
			for _, tp := range ch.Topics {
				tr.topicByID[tp.ID] = TopicRef{
					Subject: s.Name,
					Chapter: ch.Name,
					Topic:   tp,
				}
			}
		}
	}
	return tr
}

// Subjects returns all subjects in display order.
func Subjects() []Subject {
	return t.subjects
}

// GetSubject returns the subject with the given ID.
func GetSubject(id string) (Subject, error) {
	s, ok := t.byID[id]
	if !ok {
		return Subject{}, fmt.Errorf("unknown subject: %q", id)
	}
	return *s, nil
}

// FindTopic returns the topic with the given ID along with its subject
// and chapter names.
func FindTopic(id string) (TopicRef, error) {
	ref, ok := t.topicByID[id]
	if !ok {
		return TopicRef{}, fmt.Errorf("unknown topic: %q", id)
	}
	return ref, nil
}

// TopicCount returns the total number of topics in the tree.
func TopicCount() int {
	return len(t.topicByID)
}
