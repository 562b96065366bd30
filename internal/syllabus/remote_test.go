package syllabus

import (
	"testing"

	"github.com/praxisprep/praxis/internal/api"
)

func TestFromAPIConverts(t *testing.T) {
	subjects, err := FromAPI([]api.SyllabusSubject{{
		ID: "physics", Name: "Physics",
		Chapters: []api.SyllabusChapter{{
			ID: "optics", Name: "Optics", Class: 12,
			Topics: []api.SyllabusTopic{{
				ID: "refraction-basics", Name: "Refraction",
				Subtopics: []string{"Snell's Law", "Total Internal Reflection"},
			}},
		}},
	}})
	if err != nil {
		t.Fatalf("FromAPI: %v", err)
	}

	if len(subjects) != 1 {
		t.Fatalf("len(subjects) = %d, want 1", len(subjects))
	}
	ch := subjects[0].Chapters[0]
	if ch.Class != Class12 {
		t.Errorf("Class = %d, want %d", ch.Class, Class12)
	}
	tp := ch.Topics[0]
	if tp.Name != "Refraction" || len(tp.Subtopics) != 2 {
		t.Errorf("topic = %+v", tp)
	}
}

func TestFromAPIRejectsInvalidTree(t *testing.T) {
	if _, err := FromAPI(nil); err == nil {
		t.Error("expected empty tree to be rejected")
	}

	if _, err := FromAPI([]api.SyllabusSubject{{
		ID: "physics", Name: "Physics",
	}}); err == nil {
		t.Error("expected subject with no chapters to be rejected")
	}
}
