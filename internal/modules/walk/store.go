// README: Walk store backed by Postgres.
package walk

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pawtrail/internal/types"
)

// Store handles walks persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert persists a new walk and fills in its row id and creation time.
func (s *Store) Insert(ctx context.Context, w *Walk) error {
	w.CreatedAt = time.Now()
	return s.db.QueryRow(ctx, `
		INSERT INTO walks (owner_uid, name, distance_km, duration_minutes, difficulty, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, string(w.OwnerUID), w.Name, w.DistanceKm, w.DurationMinutes, string(w.Difficulty), w.Notes, w.CreatedAt).Scan(&w.ID)
}

// ListByOwner returns the owner's saved walks, newest first.
func (s *Store) ListByOwner(ctx context.Context, owner types.ID) ([]Walk, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, owner_uid, name, distance_km, duration_minutes, difficulty, notes, created_at
		FROM walks
		WHERE owner_uid = $1
		ORDER BY created_at DESC
	`, string(owner))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var walks []Walk
	for rows.Next() {
		var w Walk
		var ownerUID, difficulty string
		if err := rows.Scan(&w.ID, &ownerUID, &w.Name, &w.DistanceKm, &w.DurationMinutes, &difficulty, &w.Notes, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.OwnerUID = types.ID(ownerUID)
		w.Difficulty = Difficulty(difficulty)
		walks = append(walks, w)
	}
	return walks, rows.Err()
}
