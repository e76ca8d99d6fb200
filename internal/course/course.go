// Package course models an owned course instance and the progress rules
// applied when a learner completes lessons, quizzes and flashcard decks.
package course

import (
	"slices"
	"time"
)

// Level is the declared difficulty of a course.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// Course is an enrolled or created course owned by the current session.
// Lessons, notes, quizzes and flashcards are owned by the course and go away
// with it.  JSON names match the stored client records.
type Course struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Source           string      `json:"source"` // youtube | pdf
	SourceURL        string      `json:"sourceUrl,omitempty"`
	FileName         string      `json:"fileName,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	Duration         string      `json:"duration"`
	Topics           []string    `json:"topics"`
	Progress         int         `json:"progress"`
	Notes            []Note      `json:"notes"`
	Quizzes          []Quiz      `json:"quizzes"`
	Flashcards       []Flashcard `json:"flashcards"`
	Summary          string      `json:"summary"`
	Lessons          []Lesson    `json:"lessons"`
	Instructor       string      `json:"instructor"`
	Rating           float64     `json:"rating"`
	StudentsEnrolled int         `json:"studentsEnrolled"`
	Level            Level       `json:"level"`
	Category         string      `json:"category"`
	Thumbnail        string      `json:"thumbnail"`
	TotalLessons     int         `json:"totalLessons"`
	CompletedLessons int         `json:"completedLessons"`
	Certificate      bool        `json:"certificate"`
	LastAccessed     *time.Time  `json:"lastAccessed,omitempty"`
}

type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Content     string     `json:"content"`
	IsCompleted bool       `json:"isCompleted"`
	Order       int        `json:"order"`
	Resources   []Resource `json:"resources"`
	Transcript  string     `json:"transcript,omitempty"`
}

// Resource is a downloadable or linked lesson attachment.
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"` // pdf | link | code | image
	URL   string `json:"url"`
	Size  string `json:"size,omitempty"`
}

type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp,omitempty"`
	Topics    []string `json:"topics"`
}

type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Questions   []QuizQuestion `json:"questions"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Score       *int           `json:"score,omitempty"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"` // multiple-choice | true-false | fill-blank | coding
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

type Flashcard struct {
	ID           string     `json:"id"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Difficulty   string     `json:"difficulty"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`
	ReviewCount  int        `json:"reviewCount"`
}

// Clone returns a deep copy so updates never alias the caller's slices.
func (c Course) Clone() Course {
	out := c
	out.Topics = slices.Clone(c.Topics)
	out.LastAccessed = cloneTime(c.LastAccessed)
	if c.Notes != nil {
		out.Notes = make([]Note, len(c.Notes))
		for i, n := range c.Notes {
			n.Topics = slices.Clone(n.Topics)
			out.Notes[i] = n
		}
	}
	if c.Quizzes != nil {
		out.Quizzes = make([]Quiz, len(c.Quizzes))
		for i, q := range c.Quizzes {
			out.Quizzes[i] = q.clone()
		}
	}
	if c.Flashcards != nil {
		out.Flashcards = make([]Flashcard, len(c.Flashcards))
		for i, f := range c.Flashcards {
			f.LastReviewed = cloneTime(f.LastReviewed)
			f.NextReview = cloneTime(f.NextReview)
			out.Flashcards[i] = f
		}
	}
	if c.Lessons != nil {
		out.Lessons = make([]Lesson, len(c.Lessons))
		for i, l := range c.Lessons {
			l.Resources = slices.Clone(l.Resources)
			out.Lessons[i] = l
		}
	}
	return out
}

func (q Quiz) clone() Quiz {
	out := q
	out.CompletedAt = cloneTime(q.CompletedAt)
	if q.Score != nil {
		s := *q.Score
		out.Score = &s
	}
	if q.Questions != nil {
		out.Questions = make([]QuizQuestion, len(q.Questions))
		for i, qq := range q.Questions {
			qq.Options = slices.Clone(qq.Options)
			out.Questions[i] = qq
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
