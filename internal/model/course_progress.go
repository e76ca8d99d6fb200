package model

import "time"

// CourseProgress is the server-side mirror of a learner's progress on one
// course, keyed by the email carried in the login token.  Rows are written by
// the client's fire-and-forget progress updates; last write wins.
type CourseProgress struct {
	UserEmail        string    // course_progress.user_email
	CourseID         string    // course_progress.course_id
	Progress         int       // course_progress.progress (0-100)
	CompletedLessons int       // course_progress.completed_lessons
	UpdatedAt        time.Time // course_progress.updated_at
}
