package memory

import (
	"context"
	"sort"
	"sync"

	"bemviver/internal/core"
)

// Store is an in-memory implementation of store.Store. It backs the
// "memory" data backend and serves as the test double for the HTTP and
// service layers. Semantics match the SQLite repository: single-user
// upsert with silent no-op on stale ids, inclusive date ranges ordered
// descending, distinct-day weekly counts.
type Store struct {
	mu         sync.Mutex
	user       *core.User
	activities []core.Activity
	nextUserID int64
	nextActID  int64
}

func New() *Store {
	return &Store{nextUserID: 1, nextActID: 1}
}

// UpsertUser implements store.ProfileWriter.
func (s *Store) UpsertUser(_ context.Context, u core.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID > 0 {
		// Stale or unknown id: no-op, echo the id back.
		if s.user != nil && s.user.ID == u.ID {
			copied := u
			s.user = &copied
		}
		return u.ID, nil
	}

	copied := u
	copied.ID = s.nextUserID
	s.nextUserID++
	s.user = &copied
	return copied.ID, nil
}

// GetUser implements store.ProfileReader.
func (s *Store) GetUser(_ context.Context) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return core.User{}, core.ErrUserNotFound
	}
	return *s.user, nil
}

// DeleteUser removes the user and cascades to its activities.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != id {
		return nil
	}
	s.user = nil
	kept := s.activities[:0]
	for _, a := range s.activities {
		if a.UserID != id {
			kept = append(kept, a)
		}
	}
	s.activities = kept
	return nil
}

// AddActivity implements store.ActivityWriter.
func (s *Store) AddActivity(_ context.Context, a core.Activity) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != a.UserID {
		return 0, core.ErrProfileRequired
	}

	a.ID = s.nextActID
	s.nextActID++
	s.activities = append(s.activities, a)
	return a.ID, nil
}

// ListBetween implements store.ActivityLister.
func (s *Store) ListBetween(_ context.Context, start, end core.Date) ([]core.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]core.Activity, 0)
	for _, a := range s.activities {
		iso := a.Date.ISO()
		if iso >= start.ISO() && iso <= end.ISO() {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.ISO() > items[j].Date.ISO()
	})
	return items, nil
}

// WeeklySummary implements store.SummaryReader.
func (s *Store) WeeklySummary(_ context.Context, ref core.Date) (core.WeeklySummary, error) {
	week := core.WeekOf(ref)

	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	days := make(map[string]struct{})
	for _, a := range s.activities {
		iso := a.Date.ISO()
		if iso >= week.Start.ISO() && iso <= week.End.ISO() {
			total += a.DurationMinutes
			days[iso] = struct{}{}
		}
	}
	return core.WeeklySummary{
		Week:         week,
		TotalMinutes: total,
		DaysCount:    len(days),
	}, nil
}
