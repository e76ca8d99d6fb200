// Package catalog serves the read-only seed catalog of courses a learner can
// enroll in, with the search, filter and sort rules of the catalog page.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/iliyamo/edusynth/internal/course"
)

// Item is a catalog entry: a course template plus marketing copy.  Dates are
// only set once the item is materialised into an owned course.
type Item struct {
	course.Course
	WhatYouLearn []string `json:"whatYouLearn"`
	Requirements []string `json:"requirements"`
}

// Materialize turns the catalog entry into a course owned by the current
// session.  The course keeps the catalog id so enrollment lookups work.
func (it Item) Materialize(now time.Time) course.Course {
	c := it.Course.Clone()
	c.CreatedAt = now
	last := now
	c.LastAccessed = &last
	return c
}

// Sort orders accepted by Filter.
const (
	SortPopular = "popular"
	SortRating  = "rating"
	SortNewest  = "newest"
)

// Query narrows the catalog.  Empty or "All" category/level match everything.
type Query struct {
	Search   string
	Category string
	Level    string
	Sort     string
}

// Catalog is an immutable list of items.
type Catalog struct {
	items []Item
}

// New copies items so later mutation of the slice cannot leak in.
func New(items []Item) *Catalog {
	return &Catalog{items: append([]Item(nil), items...)}
}

// Default returns the built-in seed catalog.
func Default() *Catalog { return New(seed) }

// All returns every item in seed order.
func (c *Catalog) All() []Item {
	return append([]Item(nil), c.items...)
}

// ByID looks up one item.
func (c *Catalog) ByID(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ByCategory returns items whose category matches exactly.
func (c *Catalog) ByCategory(category string) []Item {
	out := []Item{}
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Filter applies a case-insensitive search over title, description and
// instructor, then the category and level filters, then the sort order.
func (c *Catalog) Filter(q Query) []Item {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := []Item{}
	for _, it := range c.items {
		if needle != "" &&
			!strings.Contains(strings.ToLower(it.Title), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) &&
			!strings.Contains(strings.ToLower(it.Instructor), needle) {
			continue
		}
		if !matchesAll(q.Category, it.Category) || !matchesAll(q.Level, string(it.Level)) {
			continue
		}
		out = append(out, it)
	}

	switch q.Sort {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		// seed data has no publish date; keep catalog order
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StudentsEnrolled > out[j].StudentsEnrolled })
	}
	return out
}

func matchesAll(want, got string) bool {
	return want == "" || strings.EqualFold(want, "All") || want == got
}
