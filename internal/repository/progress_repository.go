package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/edusynth/internal/model"
)

// ProgressRepo persists per-user course progress sent by the learner client.
type ProgressRepo struct{ DB *sql.DB }

func NewProgressRepo(db *sql.DB) *ProgressRepo { return &ProgressRepo{DB: db} }

// Upsert writes the latest progress for (email, course).  Last write wins.
func (r *ProgressRepo) Upsert(ctx context.Context, p model.CourseProgress) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO course_progress (user_email, course_id, progress, completed_lessons)
		 VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE progress=VALUES(progress), completed_lessons=VALUES(completed_lessons)`,
		NormalizeEmail(p.UserEmail), p.CourseID, p.Progress, p.CompletedLessons)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// ListByUser returns all progress rows of one user ordered by most recent update.
func (r *ProgressRepo) ListByUser(ctx context.Context, email string) ([]model.CourseProgress, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT user_email, course_id, progress, completed_lessons, updated_at
		 FROM course_progress WHERE user_email=? ORDER BY updated_at DESC, course_id`,
		NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	out := []model.CourseProgress{}
	for rows.Next() {
		var p model.CourseProgress
		if err := rows.Scan(&p.UserEmail, &p.CourseID, &p.Progress, &p.CompletedLessons, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return out, nil
}
