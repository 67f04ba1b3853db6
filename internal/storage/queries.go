package storage

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB / *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries groups the SQL statements against the wellness schema.
type Queries struct {
	db DBTX
}

const createUser = `
INSERT INTO users (name, age, weight, height, health_notes)
VALUES (?, ?, ?, ?, ?)
RETURNING id, name, age, weight, height, health_notes
`

type CreateUserParams struct {
	Name        string
	Age         int64
	Weight      float64
	Height      float64
	HealthNotes sql.NullString
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.Name, arg.Age, arg.Weight, arg.Height, arg.HealthNotes)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Age, &u.Weight, &u.Height, &u.HealthNotes)
	return u, err
}

const updateUser = `
UPDATE users SET name = ?, age = ?, weight = ?, height = ?, health_notes = ?
WHERE id = ?
`

type UpdateUserParams struct {
	Name        string
	Age         int64
	Weight      float64
	Height      float64
	HealthNotes sql.NullString
	ID          int64
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) error {
	_, err := q.db.ExecContext(ctx, updateUser,
		arg.Name, arg.Age, arg.Weight, arg.Height, arg.HealthNotes, arg.ID)
	return err
}

const getUser = `
SELECT id, name, age, weight, height, health_notes FROM users LIMIT 1
`

func (q *Queries) GetUser(ctx context.Context) (User, error) {
	row := q.db.QueryRowContext(ctx, getUser)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Age, &u.Weight, &u.Height, &u.HealthNotes)
	return u, err
}

const countUsers = `
SELECT COUNT(*) FROM users
`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}

const deleteUser = `
DELETE FROM users WHERE id = ?
`

func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUser, id)
	return err
}

const createActivity = `
INSERT INTO activities (user_id, type, duration_minutes, intensity, activity_date)
VALUES (?, ?, ?, ?, ?)
RETURNING id, user_id, type, duration_minutes, intensity, activity_date
`

type CreateActivityParams struct {
	UserID          int64
	Type            string
	DurationMinutes int64
	Intensity       string
	ActivityDate    string
}

func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) (Activity, error) {
	row := q.db.QueryRowContext(ctx, createActivity,
		arg.UserID, arg.Type, arg.DurationMinutes, arg.Intensity, arg.ActivityDate)
	var a Activity
	err := row.Scan(&a.ID, &a.UserID, &a.Type, &a.DurationMinutes, &a.Intensity, &a.ActivityDate)
	return a, err
}

const listActivitiesBetween = `
SELECT id, user_id, type, duration_minutes, intensity, activity_date
FROM activities
WHERE activity_date BETWEEN ? AND ?
ORDER BY activity_date DESC
`

type ListActivitiesBetweenParams struct {
	StartDate string
	EndDate   string
}

func (q *Queries) ListActivitiesBetween(ctx context.Context, arg ListActivitiesBetweenParams) ([]Activity, error) {
	rows, err := q.db.QueryContext(ctx, listActivitiesBetween, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.DurationMinutes, &a.Intensity, &a.ActivityDate); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const getWeeklyTotals = `
SELECT
    COALESCE(SUM(duration_minutes), 0) AS total_minutes,
    COUNT(DISTINCT activity_date) AS days_count
FROM activities
WHERE activity_date BETWEEN ? AND ?
`

type GetWeeklyTotalsParams struct {
	StartDate string
	EndDate   string
}

func (q *Queries) GetWeeklyTotals(ctx context.Context, arg GetWeeklyTotalsParams) (WeeklyTotals, error) {
	row := q.db.QueryRowContext(ctx, getWeeklyTotals, arg.StartDate, arg.EndDate)
	var t WeeklyTotals
	err := row.Scan(&t.TotalMinutes, &t.DaysCount)
	return t, err
}

const countActivitiesByUser = `
SELECT COUNT(*) FROM activities WHERE user_id = ?
`

func (q *Queries) CountActivitiesByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countActivitiesByUser, userID).Scan(&n)
	return n, err
}
