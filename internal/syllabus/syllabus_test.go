package syllabus

import "testing"

func TestSeedIsValid(t *testing.T) {
	if err := Validate(Subjects()); err != nil {
		t.Fatalf("seed syllabus invalid: %v", err)
	}
}

func TestSubjectsOrder(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != 3 {
		t.Fatalf("len(Subjects()) = %d, want 3", len(subjects))
	}

	want := []string{"Physics", "Chemistry", "Mathematics"}
	for i, s := range subjects {
		if s.Name != want[i] {
			t.Errorf("subject[%d] = %q, want %q", i, s.Name, want[i])
		}
	}
}

func TestGetSubject(t *testing.T) {
	s, err := GetSubject("physics")
	if err != nil {
		t.Fatalf("GetSubject(physics): %v", err)
	}
	if s.Name != "Physics" {
		t.Errorf("Name = %q, want Physics", s.Name)
	}

	if _, err := GetSubject("astrology"); err == nil {
		t.Error("expected error for unknown subject")
	}
}

func TestFindTopic(t *testing.T) {
	ref, err := FindTopic("gravitation-basics")
	if err != nil {
		t.Fatalf("FindTopic: %v", err)
	}
	if ref.Subject != "Physics" {
		t.Errorf("Subject = %q, want Physics", ref.Subject)
	}
	if ref.Chapter != "Gravitation" {
		t.Errorf("Chapter = %q, want Gravitation", ref.Chapter)
	}
	if len(ref.Topic.Subtopics) == 0 {
		t.Error("expected subtopics")
	}

	if _, err := FindTopic("nope"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	bad := []Subject{
		{
			ID: "s", Name: "S",
			Chapters: []Chapter{
				{ID: "c", Name: "C", Class: Class11, Topics: []Topic{{ID: "t", Name: "T"}}},
				{ID: "c", Name: "C2", Class: Class12, Topics: []Topic{{ID: "t2", Name: "T2"}}},
			},
		},
	}
	if err := Validate(bad); err == nil {
		t.Error("expected duplicate chapter ID to fail validation")
	}
}

func TestValidateRejectsEmptyChapter(t *testing.T) {
	bad := []Subject{
		{ID: "s", Name: "S", Chapters: []Chapter{{ID: "c", Name: "C", Class: Class11}}},
	}
	if err := Validate(bad); err == nil {
		t.Error("expected chapter with no topics to fail validation")
	}
}
