package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// SQLite-backed implementation of the PlanStore port.
// Plans are stored as JSON text; created_at is unix nanoseconds.
type SqlitePlanStore struct{ DB *sql.DB }

func NewSqlitePlanStore(db *sql.DB) *SqlitePlanStore {
	return &SqlitePlanStore{DB: db}
}

func (s *SqlitePlanStore) SavePlan(
	ctx context.Context,
	userID string,
	plan domain.TripPlan,
) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.sqlite.SavePlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("sqlite plan store: DB is nil")
	}

	if strings.TrimSpace(userID) == "" {
		return domain.SavedPlan{}, errors.New("save plan: user id must not be empty")
	}

	saved, payload, err := newPlanRecord(userID, plan, time.Now())
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("save plan: %w", err)
	}

	query := `
	INSERT INTO plans (
		id,
		user_id,
		trip_name,
		payload,
		created_at
	)
	VALUES (?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, saved.ID, userID, plan.TripName, string(payload), saved.CreatedAt.UnixNano()); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("save plan: insert id=%s: %w", saved.ID, err)
	}

	return saved, nil
}

// UpsertPlan stores plan under a fixed id, replacing the user, name and
// payload of an existing row. created_at keeps its first value.
func (s *SqlitePlanStore) UpsertPlan(
	ctx context.Context,
	id string,
	userID string,
	plan domain.TripPlan,
) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.sqlite.UpsertPlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("sqlite plan store: DB is nil")
	}

	if strings.TrimSpace(id) == "" || strings.TrimSpace(userID) == "" {
		return domain.SavedPlan{}, errors.New("upsert plan: id and user id must not be empty")
	}

	saved, payload, err := planRecord(id, userID, plan, time.Now())
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("upsert plan: %w", err)
	}

	query := `
	INSERT INTO plans (
		id,
		user_id,
		trip_name,
		payload,
		created_at
	)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET user_id = excluded.user_id,
		trip_name = excluded.trip_name,
		payload = excluded.payload;
	`
	if _, err := s.DB.ExecContext(ctx, query, id, userID, plan.TripName, string(payload), saved.CreatedAt.UnixNano()); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("upsert plan: id=%s: %w", id, err)
	}

	return saved, nil
}

// Return a user's plans, newest first.
func (s *SqlitePlanStore) ListPlans(ctx context.Context, userID string) (_ []domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.sqlite.ListPlans")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite plan store: DB is nil")
	}

	query := `
	SELECT
		id,
		user_id,
		payload,
		created_at
	FROM plans
	WHERE user_id = ?
	ORDER BY created_at DESC, rowid DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: query plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.SavedPlan, 0, 16)
	for rows.Next() {
		var id, uid, payload string
		var created int64
		if err := rows.Scan(&id, &uid, &payload, &created); err != nil {
			return nil, fmt.Errorf("list plans: scan row: %w", err)
		}

		p, err := decodePlan(id, uid, time.Unix(0, created), []byte(payload))
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}

	return plans, nil
}

func (s *SqlitePlanStore) GetPlan(ctx context.Context, id string) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.sqlite.GetPlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("sqlite plan store: DB is nil")
	}

	query := `
	SELECT
		id,
		user_id,
		payload,
		created_at
	FROM plans
	WHERE id = ?;
	`
	var pid, uid, payload string
	var created int64
	err = s.DB.QueryRowContext(ctx, query, id).Scan(&pid, &uid, &payload, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SavedPlan{}, fmt.Errorf("get plan id=%s: %w", id, ports.ErrPlanNotFound)
	}
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("get plan id=%s: %w", id, err)
	}

	return decodePlan(pid, uid, time.Unix(0, created), []byte(payload))
}
