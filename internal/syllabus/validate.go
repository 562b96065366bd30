package syllabus

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a syllabus tree.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(subjects []Subject) error {
	var errs []string

	if len(subjects) == 0 {
		errs = append(errs, "syllabus has no subjects")
	}

	subjectIDs := make(map[string]bool, len(subjects))
	chapterIDs := make(map[string]bool)
	topicIDs := make(map[string]bool)

	for _, s := range subjects {
		if s.ID == "" || s.Name == "" {
			errs = append(errs, fmt.Sprintf("subject %q has an empty ID or name", s.ID))
		}
		if subjectIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate subject ID: %q", s.ID))
		}
		subjectIDs[s.ID] = true

		if len(s.Chapters) == 0 {
			errs = append(errs, fmt.Sprintf("subject %q has no chapters", s.ID))
		}

		for _, ch := range s.Chapters {
			if ch.ID == "" || ch.Name == "" {
				errs = append(errs, fmt.Sprintf("chapter %q in subject %q has an empty ID or name", ch.ID, s.ID))
			}
			if chapterIDs[ch.ID] {
				errs = append(errs, fmt.Sprintf("duplicate chapter ID: %q", ch.ID))
			}
			chapterIDs[ch.ID] = true

			if ch.Class != Class11 && ch.Class != Class12 {
				errs = append(errs, fmt.Sprintf("chapter %q has invalid class %d", ch.ID, ch.Class))
			}
			if len(ch.Topics) == 0 {
				errs = append(errs, fmt.Sprintf("chapter %q has no topics", ch.ID))
			}

			for _, tp := range ch.Topics {
				if tp.ID == "" || tp.Name == "" {
					errs = append(errs, fmt.Sprintf("topic %q in chapter %q has an empty ID or name", tp.ID, ch.ID))
				}
				if topicIDs[tp.ID] {
					errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", tp.ID))
				}
				topicIDs[tp.ID] = true
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("syllabus validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
