// Package store persists in-progress wizard drafts so a visitor can leave
// and resume. Drafts are deliberately partial: the citation image reference
// is stripped before saving and must be re-uploaded on resume.
package store

import (
	"context"
	"time"

	"intake-gateway/internal/wizard"
)

// DraftStore saves and restores wizard state between visits.
type DraftStore interface {
	// Save persists the state under its ID, replacing any prior draft.
	// The citation image reference is never persisted.
	Save(ctx context.Context, state *wizard.State) error
	// Find returns the draft for id, or sentinel.ErrNotFound.
	Find(ctx context.Context, id string) (*wizard.State, error)
	// Delete removes the draft for id. Deleting a missing draft is not an
	// error.
	Delete(ctx context.Context, id string) error
}

// sanitize returns a copy of state safe to persist.
func sanitize(state *wizard.State) wizard.State {
	draft := *state
	draft.Citation.ImageRef = ""
	return draft
}

// expired reports whether a draft saved at updatedAt has outlived ttl.
func expired(updatedAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(updatedAt) > ttl
}
