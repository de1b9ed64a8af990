// Package memory provides the development/testing persistence backend.
// All repositories share one explicit Store passed in by the composition
// root; tests get isolation by constructing a fresh Store instead of
// resetting ambient globals.
package memory

import (
	"sync"
	"time"

	"go-golf-advising-backend/internal/domain"
)

// Store holds every in-memory table behind a single mutex. Suitable for a
// single dev process; a production deployment uses the postgres backend.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User    // keyed by email, case-sensitive
	profiles     map[string]*domain.Profile // keyed by userID
	testimonials []domain.Testimonial
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		profiles: make(map[string]*domain.Profile),
	}
}

// NewSeededStore returns a store preloaded with marketing testimonials so
// the public page has content before anyone submits feedback.
func NewSeededStore() *Store {
	s := NewStore()
	now := time.Now()
	role := func(r string) *string { return &r }
	s.testimonials = []domain.Testimonial{
		{
			ID:          "t1",
			UserName:    "Ava Johnson",
			Rating:      5,
			Feedback:    "Improved my consistency and finally broke 80! The drills are spot on.",
			Role:        role("Weekend golfer"),
			SubmittedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:          "t2",
			UserName:    "Liam Chen",
			Rating:      4,
			Feedback:    "Great analytics - dispersion charts helped me club down confidently.",
			Role:        role("Mid-handicap"),
			SubmittedAt: now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:          "t3",
			UserName:    "Sophia Reyes",
			Rating:      5,
			Feedback:    "Short game matrix is a game-changer. My up-and-down rate soared.",
			Role:        role("Scratch golfer"),
			SubmittedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:          "t4",
			UserName:    "Noah Patel",
			Rating:      3,
			Feedback:    "Helpful fundamentals. Would love more left-handed specific drills.",
			Role:        role("High-handicap"),
			SubmittedAt: now.Add(-1 * 24 * time.Hour),
		},
	}
	return s
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
