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

// Postgres-backed implementation of the PlanStore port.
// Expects a *sql.DB opened with the pgx stdlib driver; plans live in JSONB.
type PostgresPlanStore struct{ DB *sql.DB }

func NewPostgresPlanStore(db *sql.DB) *PostgresPlanStore {
	return &PostgresPlanStore{DB: db}
}

func (s *PostgresPlanStore) SavePlan(
	ctx context.Context,
	userID string,
	plan domain.TripPlan,
) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.postgres.SavePlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("postgres plan store: DB is nil")
	}

	if strings.TrimSpace(userID) == "" {
		return domain.SavedPlan{}, errors.New("save plan: user id must not be empty")
	}

	saved, payload, err := newPlanRecord(userID, plan, time.Now())
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("save plan: %w", err)
	}

	query := `
	INSERT INTO plans (id, user_id, trip_name, payload, created_at)
	VALUES ($1, $2, $3, $4::jsonb, $5);
	`
	if _, err := s.DB.ExecContext(ctx, query, saved.ID, userID, plan.TripName, string(payload), saved.CreatedAt); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("save plan: insert id=%s: %w", saved.ID, err)
	}

	return saved, nil
}

// UpsertPlan stores plan under a fixed id, replacing the user, name and
// payload of an existing row. created_at keeps its first value.
func (s *PostgresPlanStore) UpsertPlan(
	ctx context.Context,
	id string,
	userID string,
	plan domain.TripPlan,
) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.postgres.UpsertPlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("postgres plan store: DB is nil")
	}

	if strings.TrimSpace(id) == "" || strings.TrimSpace(userID) == "" {
		return domain.SavedPlan{}, errors.New("upsert plan: id and user id must not be empty")
	}

	saved, payload, err := planRecord(id, userID, plan, time.Now())
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("upsert plan: %w", err)
	}

	query := `
	INSERT INTO plans (id, user_id, trip_name, payload, created_at)
	VALUES ($1, $2, $3, $4::jsonb, $5)
	ON CONFLICT (id) DO UPDATE
	SET user_id = EXCLUDED.user_id,
		trip_name = EXCLUDED.trip_name,
		payload = EXCLUDED.payload;
	`
	if _, err := s.DB.ExecContext(ctx, query, id, userID, plan.TripName, string(payload), saved.CreatedAt); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("upsert plan: id=%s: %w", id, err)
	}

	return saved, nil
}

func (s *PostgresPlanStore) ListPlans(ctx context.Context, userID string) (_ []domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.postgres.ListPlans")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres plan store: DB is nil")
	}

	query := `
	SELECT id, user_id, payload, created_at
	FROM plans
	WHERE user_id = $1
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: query plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.SavedPlan, 0, 16)
	for rows.Next() {
		var id, uid string
		var payload []byte
		var created time.Time
		if err := rows.Scan(&id, &uid, &payload, &created); err != nil {
			return nil, fmt.Errorf("list plans: scan row: %w", err)
		}

		p, err := decodePlan(id, uid, created, payload)
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

func (s *PostgresPlanStore) GetPlan(ctx context.Context, id string) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "plans.postgres.GetPlan")(&err)

	if s.DB == nil {
		return domain.SavedPlan{}, errors.New("postgres plan store: DB is nil")
	}

	query := `
	SELECT id, user_id, payload, created_at
	FROM plans
	WHERE id = $1;
	`
	var pid, uid string
	var payload []byte
	var created time.Time
	err = s.DB.QueryRowContext(ctx, query, id).Scan(&pid, &uid, &payload, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SavedPlan{}, fmt.Errorf("get plan id=%s: %w", id, ports.ErrPlanNotFound)
	}
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("get plan id=%s: %w", id, err)
	}

	return decodePlan(pid, uid, created, payload)
}
