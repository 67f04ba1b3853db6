package store

import (
	"context"

	"bemviver/internal/core"
)

// Ports for outbound storage adapters.
type (
	// ProfileWriter upserts the single tracked user. An id of zero inserts
	// and returns the assigned id; a non-zero id updates in place (a stale
	// id is a silent no-op, mirroring the save path of the profile screen).
	ProfileWriter interface {
		UpsertUser(ctx context.Context, u core.User) (int64, error)
	}

	// ProfileReader returns the stored user, or core.ErrUserNotFound when
	// no profile has been saved yet.
	ProfileReader interface {
		GetUser(ctx context.Context) (core.User, error)
	}

	ActivityWriter interface {
		// AddActivity inserts an activity tied to an existing user and
		// returns the assigned id. A missing user surfaces as
		// core.ErrProfileRequired.
		AddActivity(ctx context.Context, a core.Activity) (int64, error)
	}

	// ActivityLister returns activities within an inclusive date range,
	// ordered by activity date descending. start > end yields an empty
	// result, no swapping.
	ActivityLister interface {
		ListBetween(ctx context.Context, start, end core.Date) ([]core.Activity, error)
	}

	// SummaryReader aggregates the Monday-Sunday week containing ref.
	SummaryReader interface {
		WeeklySummary(ctx context.Context, ref core.Date) (core.WeeklySummary, error)
	}
)

// Store is the unified storage surface the rest of the application
// programs against.
type Store interface {
	ProfileWriter
	ProfileReader
	ActivityWriter
	ActivityLister
	SummaryReader
}
