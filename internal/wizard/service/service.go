// Package service coordinates wizard sessions: creating them, applying step
// transitions, and keeping the draft store in sync.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"intake-gateway/internal/pricing"
	"intake-gateway/internal/wizard"
	"intake-gateway/internal/wizard/store"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/sentinel"
)

type Service struct {
	drafts store.DraftStore
	logger *slog.Logger
	now    func() time.Time
}

func New(drafts store.DraftStore, logger *slog.Logger) *Service {
	return &Service{
		drafts: drafts,
		logger: logger,
		now:    time.Now,
	}
}

// Start creates a fresh session at the upload step and persists an initial
// draft so the ID is immediately resumable.
func (s *Service) Start(ctx context.Context, brandKey string) (*wizard.State, error) {
	state := &wizard.State{
		ID:        uuid.NewString(),
		BrandKey:  brandKey,
		Step:      wizard.StepUpload,
		UpdatedAt: s.now(),
	}
	if err := s.drafts.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to start intake")
	}
	return state, nil
}

// Resume returns the saved draft for id. Completed sessions are gone: their
// drafts were cleared at confirmation.
func (s *Service) Resume(ctx context.Context, id string) (*wizard.State, error) {
	state, err := s.drafts.Find(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "no saved intake found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load intake")
	}
	return state, nil
}

// Advance applies one step submission. Reaching confirmation clears the
// draft; every other transition re-persists it.
func (s *Service) Advance(ctx context.Context, id string, in wizard.Input) (*wizard.State, error) {
	state, err := s.Resume(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := state.Advance(in, pricing.ForBrand(state.BrandKey), s.now()); err != nil {
		return nil, err
	}
	if state.Step == wizard.StepConfirmation {
		if err := s.drafts.Delete(ctx, id); err != nil {
			// The session still completed; a stale draft will age out.
			s.logger.Warn("failed to clear completed draft", "session_id", id, "error", err)
		}
		return state, nil
	}
	if err := s.drafts.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save intake progress")
	}
	return state, nil
}

// Back steps the session backward without validation.
func (s *Service) Back(ctx context.Context, id string) (*wizard.State, error) {
	state, err := s.Resume(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := state.Back(s.now()); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save intake progress")
	}
	return state, nil
}

// Reset discards all entered data and returns the session to the upload
// step under the same ID.
func (s *Service) Reset(ctx context.Context, id string) (*wizard.State, error) {
	state, err := s.Resume(ctx, id)
	if err != nil {
		return nil, err
	}
	fresh := &wizard.State{
		ID:        state.ID,
		BrandKey:  state.BrandKey,
		Step:      wizard.StepUpload,
		UpdatedAt: s.now(),
	}
	if err := s.drafts.Save(ctx, fresh); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset intake")
	}
	return fresh, nil
}
