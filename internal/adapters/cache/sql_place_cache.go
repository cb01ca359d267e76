package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// SQLPlaceCache is a SQL-backed cache for place search results, used when
// Redis is not configured. Rows live in the place_cache table created by
// repositories.InitSchema.
type SQLPlaceCache struct {
	DB      *sql.DB
	Dialect repositories.Dialect
	TTL     time.Duration
	Now     func() time.Time
}

func NewSQLPlaceCache(db *sql.DB, dialect repositories.Dialect, ttl time.Duration) *SQLPlaceCache {
	return &SQLPlaceCache{DB: db, Dialect: dialect, TTL: ttl, Now: time.Now}
}

func (s *SQLPlaceCache) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Fetch cached places for a query. Expired rows count as a miss.
func (s *SQLPlaceCache) Get(ctx context.Context, query string) (_ []domain.Landmark, ok bool, err error) {
	defer obs.Time(ctx, "places.sqlcache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("place cache: db is nil")
	}
	if strings.TrimSpace(query) == "" {
		return nil, false, errors.New("place cache: empty query")
	}

	q := `
	SELECT payload
    FROM place_cache
    WHERE query = ? AND expires_at > ?;
	`
	if s.Dialect == repositories.DialectPostgres {
		q = `
		SELECT payload
	    FROM place_cache
	    WHERE query = $1 AND expires_at > $2;
		`
	}

	var payload string
	err = s.DB.QueryRowContext(ctx, q, query, s.now().UnixNano()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get place cache query=%q: %w", query, err)
	}

	var out []domain.Landmark
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, false, fmt.Errorf("get place cache query=%q: decode: %w", query, err)
	}
	return out, true, nil
}

// Store the places for a query, replacing any previous entry.
// Entries never expire when TTL is zero or negative.
func (s *SQLPlaceCache) Put(ctx context.Context, query string, places []domain.Landmark) (err error) {
	defer obs.Time(ctx, "places.sqlcache.Put")(&err)

	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}
	if strings.TrimSpace(query) == "" {
		return errors.New("insert place cache: empty query key")
	}
	if places == nil {
		places = []domain.Landmark{}
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("insert place cache query=%q: encode: %w", query, err)
	}

	q := `
	INSERT INTO place_cache (query, payload, expires_at)
    VALUES (?, ?, ?)
	ON CONFLICT (query) DO UPDATE
	SET payload = excluded.payload,
		expires_at = excluded.expires_at;
	`
	if s.Dialect == repositories.DialectPostgres {
		q = `
		INSERT INTO place_cache (query, payload, expires_at)
	    VALUES ($1, $2, $3)
		ON CONFLICT (query) DO UPDATE
		SET payload = EXCLUDED.payload,
			expires_at = EXCLUDED.expires_at;
		`
	}

	// A non-positive TTL means no expiry, matching RedisPlaceCache.
	expiresAt := int64(math.MaxInt64)
	if s.TTL > 0 {
		expiresAt = s.now().Add(s.TTL).UnixNano()
	}
	if _, err := s.DB.ExecContext(ctx, q, query, string(payload), expiresAt); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}
	return nil
}
