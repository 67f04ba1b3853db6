package services

import (
	"context"
	"fmt"
	"log/slog"

	"bemviver/internal/core"
	"bemviver/internal/log"
	"bemviver/internal/store"
)

// Tracker orchestrates the profile and activity write paths: validation
// first, then the store. Validation failures never reach the database.
type Tracker struct {
	store store.Store
}

func NewTracker(s store.Store) *Tracker {
	return &Tracker{store: s}
}

// SaveProfile validates and upserts the single user profile, returning
// the stored id.
func (t *Tracker) SaveProfile(ctx context.Context, u core.User) (int64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}

	id, err := t.store.UpsertUser(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("save profile: %w", err)
	}

	slog.InfoContext(ctx, "Profile saved",
		log.FieldComponent, log.ComponentTracker,
		log.FieldOperation, log.OpUpsert,
		log.FieldUserID, id)

	return id, nil
}

// Profile returns the stored user, or core.ErrUserNotFound.
func (t *Tracker) Profile(ctx context.Context) (core.User, error) {
	return t.store.GetUser(ctx)
}

// RegisterActivity validates and stores one activity for the current
// user. A missing profile surfaces as core.ErrProfileRequired.
func (t *Tracker) RegisterActivity(ctx context.Context, a core.Activity) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	id, err := t.store.AddActivity(ctx, a)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Activity registered",
		log.FieldComponent, log.ComponentTracker,
		log.FieldOperation, log.OpCreate,
		"id", id,
		log.FieldActivityType, a.Type,
		log.FieldDurationMinutes, a.DurationMinutes,
		log.FieldIntensity, a.Intensity,
		log.FieldActivityDate, a.Date.ISO())

	return id, nil
}
