package syllabus

import (
	"fmt"

	"github.com/praxisprep/praxis/internal/api"
)

// FromAPI converts the backend's syllabus payload into the domain tree,
// rejecting trees that fail validation so a broken payload can never
// displace the seed.
func FromAPI(subjects []api.SyllabusSubject) ([]Subject, error) {
	out := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		subject := Subject{
			ID:       s.ID,
			Name:     s.Name,
			Chapters: make([]Chapter, 0, len(s.Chapters)),
		}
		for _, ch := range s.Chapters {
			chapter := Chapter{
				ID:     ch.ID,
				Name:   ch.Name,
				Class:  Class(ch.Class),
				Topics: make([]Topic, 0, len(ch.Topics)),
			}
			for _, tp := range ch.Topics {
				chapter.Topics = append(chapter.Topics, Topic{
					ID:        tp.ID,
					Name:      tp.Name,
					Subtopics: tp.Subtopics,
				})
			}
			subject.Chapters = append(subject.Chapters, chapter)
		}
		out = append(out, subject)
	}

	if err := Validate(out); err != nil {
		return nil, fmt.Errorf("remote syllabus rejected: %w", err)
	}
	return out, nil
}
