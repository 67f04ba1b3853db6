package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bemviver/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable store for the single user profile and
// its logged activities. One connection, sequential access: the app is a
// single local process and each statement is its own atomic unit.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// foreign_keys must be set per connection for the cascade-delete
	// invariant to hold.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertUser implements store.ProfileWriter. A present id updates the
// matching row; an unknown id is a silent no-op and the id is returned
// unchanged (the profile screen always loads the existing user first, so
// a stale id cannot occur in normal use).
func (r *SQLiteRepository) UpsertUser(ctx context.Context, u core.User) (int64, error) {
	notes := sql.NullString{String: u.HealthNotes, Valid: u.HealthNotes != ""}

	if u.ID > 0 {
		err := r.queries.UpdateUser(ctx, UpdateUserParams{
			Name:        u.Name,
			Age:         int64(u.Age),
			Weight:      u.WeightKg,
			Height:      float64(u.HeightCm),
			HealthNotes: notes,
			ID:          u.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("update user: %w", err)
		}
		slog.InfoContext(ctx, "Profile updated in SQLite", "id", u.ID, "name", u.Name)
		return u.ID, nil
	}

	created, err := r.queries.CreateUser(ctx, CreateUserParams{
		Name:        u.Name,
		Age:         int64(u.Age),
		Weight:      u.WeightKg,
		Height:      float64(u.HeightCm),
		HealthNotes: notes,
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "Profile saved to SQLite",
		"id", created.ID,
		"name", created.Name,
		"age", created.Age)

	return created.ID, nil
}

// GetUser implements store.ProfileReader.
func (r *SQLiteRepository) GetUser(ctx context.Context) (core.User, error) {
	u, err := r.queries.GetUser(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return userToCore(u), nil
}

// DeleteUser removes the user row; the schema cascades the delete to all
// owned activities. Not reachable from the UI, kept for the schema
// invariant and its tests.
func (r *SQLiteRepository) DeleteUser(ctx context.Context, id int64) error {
	if err := r.queries.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	slog.InfoContext(ctx, "Profile deleted from SQLite", "id", id)
	return nil
}

// AddActivity implements store.ActivityWriter.
func (r *SQLiteRepository) AddActivity(ctx context.Context, a core.Activity) (int64, error) {
	created, err := r.queries.CreateActivity(ctx, CreateActivityParams{
		UserID:          a.UserID,
		Type:            a.Type,
		DurationMinutes: int64(a.DurationMinutes),
		Intensity:       string(a.Intensity),
		ActivityDate:    a.Date.ISO(),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, core.ErrProfileRequired
		}
		return 0, fmt.Errorf("create activity: %w", err)
	}

	slog.InfoContext(ctx, "Activity saved to SQLite",
		"id", created.ID,
		"type", created.Type,
		"duration_minutes", created.DurationMinutes,
		"intensity", created.Intensity,
		"activity_date", created.ActivityDate)

	return created.ID, nil
}

// ListBetween implements store.ActivityLister.
func (r *SQLiteRepository) ListBetween(ctx context.Context, start, end core.Date) ([]core.Activity, error) {
	rows, err := r.queries.ListActivitiesBetween(ctx, ListActivitiesBetweenParams{
		StartDate: start.ISO(),
		EndDate:   end.ISO(),
	})
	if err != nil {
		return nil, fmt.Errorf("list activities between %s and %s: %w", start.ISO(), end.ISO(), err)
	}

	items := make([]core.Activity, 0, len(rows))
	for _, a := range rows {
		ca, err := activityToCore(a)
		if err != nil {
			return nil, fmt.Errorf("decode activity %d: %w", a.ID, err)
		}
		items = append(items, ca)
	}
	return items, nil
}

// WeeklySummary implements store.SummaryReader.
func (r *SQLiteRepository) WeeklySummary(ctx context.Context, ref core.Date) (core.WeeklySummary, error) {
	week := core.WeekOf(ref)
	totals, err := r.queries.GetWeeklyTotals(ctx, GetWeeklyTotalsParams{
		StartDate: week.Start.ISO(),
		EndDate:   week.End.ISO(),
	})
	if err != nil {
		return core.WeeklySummary{}, fmt.Errorf("weekly totals %s..%s: %w", week.Start.ISO(), week.End.ISO(), err)
	}
	return core.WeeklySummary{
		Week:         week,
		TotalMinutes: int(totals.TotalMinutes),
		DaysCount:    int(totals.DaysCount),
	}, nil
}

// CountActivities returns how many activities a user owns. Used by the
// cascade-delete tests.
func (r *SQLiteRepository) CountActivities(ctx context.Context, userID int64) (int64, error) {
	return r.queries.CountActivitiesByUser(ctx, userID)
}

// CountUsers reports the number of user rows; by convention at most one
// ever exists.
func (r *SQLiteRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.queries.CountUsers(ctx)
}

func userToCore(u User) core.User {
	return core.User{
		ID:          u.ID,
		Name:        u.Name,
		Age:         int(u.Age),
		WeightKg:    u.Weight,
		HeightCm:    int(u.Height),
		HealthNotes: u.HealthNotes.String,
	}
}

func activityToCore(a Activity) (core.Activity, error) {
	d, err := core.ParseDate(a.ActivityDate)
	if err != nil {
		return core.Activity{}, err
	}
	return core.Activity{
		ID:              a.ID,
		UserID:          a.UserID,
		Type:            a.Type,
		DurationMinutes: int(a.DurationMinutes),
		Intensity:       core.Intensity(a.Intensity),
		Date:            d,
	}, nil
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
