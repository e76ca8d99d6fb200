package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/course"
	"github.com/iliyamo/edusynth/internal/middleware"
	"github.com/iliyamo/edusynth/internal/model"
)

// ProgressStore is the server-side progress mirror.
type ProgressStore interface {
	Upsert(ctx context.Context, p model.CourseProgress) error
	ListByUser(ctx context.Context, email string) ([]model.CourseProgress, error)
}

// ProgressHandler receives the client's background progress pushes.
type ProgressHandler struct {
	Store ProgressStore
}

func NewProgressHandler(s ProgressStore) *ProgressHandler {
	return &ProgressHandler{Store: s}
}

type progressReq struct {
	Progress         *int `json:"progress"`
	CompletedLessons int  `json:"completedLessons"`
}

type progressItem struct {
	CourseID         string    `json:"courseId"`
	Progress         int       `json:"progress"`
	CompletedLessons int       `json:"completedLessons"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Update stores progress for PUT /api/courses/:id.  Values outside 0-100
// are clamped.
func (h *ProgressHandler) Update(c echo.Context) error {
	cl := middleware.ClaimsFrom(c)
	if cl == nil {
		return fail(c, http.StatusUnauthorized, "unauthorized", "missing token")
	}
	id := strings.TrimSpace(c.Param("id"))
	var req progressReq
	if err := c.Bind(&req); err != nil || id == "" || req.Progress == nil {
		return fail(c, http.StatusBadRequest, CodeInvalidInput, "course id and progress required")
	}
	if req.CompletedLessons < 0 {
		return fail(c, http.StatusBadRequest, CodeInvalidInput, "completedLessons must not be negative")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p := model.CourseProgress{
		UserEmail:        cl.Email,
		CourseID:         id,
		Progress:         course.Clamp(*req.Progress),
		CompletedLessons: req.CompletedLessons,
	}
	if err := h.Store.Upsert(ctx, p); err != nil {
		c.Logger().Errorf("progress update %s/%s: %v", cl.Email, id, err)
		return fail(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"message":          "progress saved",
		"courseId":         id,
		"progress":         p.Progress,
		"completedLessons": p.CompletedLessons,
	})
}

// List returns every progress row of the caller.
func (h *ProgressHandler) List(c echo.Context) error {
	cl := middleware.ClaimsFrom(c)
	if cl == nil {
		return fail(c, http.StatusUnauthorized, "unauthorized", "missing token")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Store.ListByUser(ctx, cl.Email)
	if err != nil {
		c.Logger().Errorf("progress list %s: %v", cl.Email, err)
		return fail(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
	out := make([]progressItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, progressItem{
			CourseID:         r.CourseID,
			Progress:         r.Progress,
			CompletedLessons: r.CompletedLessons,
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
