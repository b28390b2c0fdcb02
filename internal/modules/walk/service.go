// README: Walk service converts recommendations to records and persists them.
package walk

import (
	"context"
	"log"

	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

// Storage persists walk records. *Store is the production implementation;
// tests supply stubs.
type Storage interface {
	Insert(ctx context.Context, w *Walk) error
	ListByOwner(ctx context.Context, owner types.ID) ([]Walk, error)
}

type Service struct {
	store Storage
}

func NewService(store Storage) *Service {
	return &Service{store: store}
}

// SaveGenerated converts a previously generated recommendation into a walk
// record owned by the caller and persists it. The recommendation itself is
// never mutated.
func (s *Service) SaveGenerated(ctx context.Context, owner types.ID, rec route.Recommendation) (*Walk, error) {
	if owner == "" || len(rec.Waypoints) < 2 {
		return nil, ErrBadRequest
	}

	w := FromRecommendation(rec, owner)
	if err := s.store.Insert(ctx, &w); err != nil {
		log.Printf("walk insert failed: %v", err)
		return nil, ErrStore
	}
	return &w, nil
}

// List returns the caller's saved walks.
func (s *Service) List(ctx context.Context, owner types.ID) ([]Walk, error) {
	if owner == "" {
		return nil, ErrBadRequest
	}
	walks, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		log.Printf("walk list failed: %v", err)
		return nil, ErrStore
	}
	return walks, nil
}
