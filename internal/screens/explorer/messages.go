package explorer

import "github.com/praxisprep/praxis/internal/syllabus"

// syllabusReadyMsg carries the result of the backend syllabus fetch.
type syllabusReadyMsg struct {
	Subjects []syllabus.Subject
	Err      error
}
