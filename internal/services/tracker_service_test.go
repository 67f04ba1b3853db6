package services

import (
	"context"
	"errors"
	"testing"

	"bemviver/internal/core"
	"bemviver/internal/memory"
)

func TestSaveProfileValidates(t *testing.T) {
	svc := NewTracker(memory.New())
	ctx := context.Background()

	if _, err := svc.SaveProfile(ctx, core.User{Name: "", Age: 70, WeightKg: 60, HeightCm: 150}); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("got %v, want ErrEmptyName", err)
	}

	// Nothing may be written on a validation failure.
	if _, err := svc.Profile(ctx); !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("validation failure must not write, got %v", err)
	}

	id, err := svc.SaveProfile(ctx, core.User{Name: "Maria", Age: 72, WeightKg: 68, HeightCm: 160})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected assigned id, got %d", id)
	}
}

func TestRegisterActivity(t *testing.T) {
	store := memory.New()
	svc := NewTracker(store)
	ctx := context.Background()

	act := core.Activity{UserID: 1, Type: "caminhada", DurationMinutes: 30, Intensity: core.Light, Date: core.NewDate(2024, 6, 12)}

	// No profile yet: referential error guides the user back to the
	// profile screen.
	if _, err := svc.RegisterActivity(ctx, act); !errors.Is(err, core.ErrProfileRequired) {
		t.Fatalf("got %v, want ErrProfileRequired", err)
	}

	id, err := svc.SaveProfile(ctx, core.User{Name: "Maria", Age: 72, WeightKg: 68, HeightCm: 160})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	act.UserID = id
	if _, err := svc.RegisterActivity(ctx, act); err != nil {
		t.Fatalf("register activity: %v", err)
	}

	bad := act
	bad.DurationMinutes = 0
	if _, err := svc.RegisterActivity(ctx, bad); !errors.Is(err, core.ErrInvalidDuration) {
		t.Fatalf("got %v, want ErrInvalidDuration", err)
	}
}
