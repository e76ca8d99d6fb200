package course

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Fixed progress increments awarded outside of lesson completion.
const (
	QuizBonus      = 25
	FlashcardBonus = 15
)

// ErrLessonIndex is returned when a lesson index is outside the lesson list.
var ErrLessonIndex = errors.New("lesson index out of range")

// Clamp bounds p to [0, 100].
func Clamp(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// LessonProgress is round(100 * completed / total) clamped to [0, 100].  A
// course without lessons has no progress.
func LessonProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return Clamp(int(math.Round(100 * float64(completed) / float64(total))))
}

// CompleteLesson marks lesson i completed and recomputes progress from the
// completed count.  The denominator is TotalLessons (the advertised size of
// the course) and falls back to the number of loaded lessons when unset.
func CompleteLesson(c Course, i int, now time.Time) (Course, error) {
	if i < 0 || i >= len(c.Lessons) {
		return c, fmt.Errorf("%w: %d of %d", ErrLessonIndex, i, len(c.Lessons))
	}
	out := c.Clone()
	out.Lessons[i].IsCompleted = true

	completed := 0
	for _, l := range out.Lessons {
		if l.IsCompleted {
			completed++
		}
	}
	total := out.TotalLessons
	if total <= 0 {
		total = len(out.Lessons)
	}
	out.CompletedLessons = completed
	out.Progress = LessonProgress(completed, total)
	out.LastAccessed = &now
	return out, nil
}

// CompleteQuiz adds QuizBonus to progress.  The score is recorded on the
// first quiz that has no score yet.
func CompleteQuiz(c Course, score int, now time.Time) Course {
	out := c.Clone()
	for i := range out.Quizzes {
		if out.Quizzes[i].Score == nil {
			s := score
			t := now
			out.Quizzes[i].Score = &s
			out.Quizzes[i].CompletedAt = &t
			break
		}
	}
	out.Progress = Clamp(out.Progress + QuizBonus)
	out.LastAccessed = &now
	return out
}

// CompleteFlashcards adds FlashcardBonus to progress after a full deck review.
func CompleteFlashcards(c Course, now time.Time) Course {
	out := c.Clone()
	for i := range out.Flashcards {
		t := now
		out.Flashcards[i].LastReviewed = &t
		out.Flashcards[i].ReviewCount++
	}
	out.Progress = Clamp(out.Progress + FlashcardBonus)
	out.LastAccessed = &now
	return out
}

// Stats summarises a course list the way the learner dashboard shows it.
type Stats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	AverageProgress  int `json:"averageProgress"`
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
}

func Summarize(courses []Course) Stats {
	var s Stats
	sum := 0
	for _, c := range courses {
		s.TotalCourses++
		if c.Progress == 100 {
			s.CompletedCourses++
		}
		sum += c.Progress
		s.TotalLessons += len(c.Lessons)
		for _, l := range c.Lessons {
			if l.IsCompleted {
				s.CompletedLessons++
			}
		}
	}
	if s.TotalCourses > 0 {
		s.AverageProgress = int(math.Round(float64(sum) / float64(s.TotalCourses)))
	}
	return s
}
