package readstore

import (
	"context"
	"time"

	"hotel-booking-core/internal/pkg/cache"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type RoomSource interface {
	FindByID(ctx context.Context, id int64) (*shared.RoomSnapshot, error)
	FindTypeByID(ctx context.Context, id int64) (*shared.RoomTypeSnapshot, error)
}

type PricingRuleSource interface {
	FindByType(ctx context.Context, typeID int64) ([]shared.PricingRuleSnapshot, error)
}

type ExtraSource interface {
	FindAll(ctx context.Context) ([]shared.ExtraSnapshot, error)
}

// CatalogReadStore memoizes rooms, room types, pricing rules and extras. Room
// status is cached separately with a shorter TTL.
type CatalogReadStore struct {
	store      cache.Store
	rooms      RoomSource
	rules      PricingRuleSource
	extras     ExtraSource
	catalogTTL time.Duration
	statusTTL  time.Duration
}

func NewCatalogReadStore(store cache.Store, rooms RoomSource, rules PricingRuleSource, extras ExtraSource, cfg config.CacheConfig) *CatalogReadStore {
	return &CatalogReadStore{
		store:      store,
		rooms:      rooms,
		rules:      rules,
		extras:     extras,
		catalogTTL: cfg.CatalogTTL,
		statusTTL:  cfg.StatusTTL,
	}
}

func (s *CatalogReadStore) RoomByID(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	var loaded *shared.RoomSnapshot
	snap, err := cache.Fetch(ctx, s.store, cache.RoomKey(id), s.catalogTTL, func(ctx context.Context) (*shared.RoomSnapshot, error) {
		room, err := s.rooms.FindByID(ctx, id)
		loaded = room
		return room, err
	})
	if err != nil {
		return nil, err
	}

	status, err := cache.Fetch(ctx, s.store, cache.RoomStatusKey(id), s.statusTTL, func(ctx context.Context) (string, error) {
		// a snapshot read from the source this call already carries a fresh status
		if loaded != nil {
			return loaded.Status, nil
		}
		fresh, err := s.rooms.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		return fresh.Status, nil
	})
	if err != nil {
		return nil, err
	}

	room := *snap
	room.Status = status
	return &room, nil
}

func (s *CatalogReadStore) RoomTypeByID(ctx context.Context, id int64) (*shared.RoomTypeSnapshot, error) {
	return cache.Fetch(ctx, s.store, cache.RoomTypeKey(id), s.catalogTTL, func(ctx context.Context) (*shared.RoomTypeSnapshot, error) {
		return s.rooms.FindTypeByID(ctx, id)
	})
}

func (s *CatalogReadStore) PricingRules(ctx context.Context, typeID int64) ([]shared.PricingRuleSnapshot, error) {
	return cache.Fetch(ctx, s.store, cache.PricingRulesKey(typeID), s.catalogTTL, func(ctx context.Context) ([]shared.PricingRuleSnapshot, error) {
		return s.rules.FindByType(ctx, typeID)
	})
}

func (s *CatalogReadStore) Extras(ctx context.Context) ([]shared.ExtraSnapshot, error) {
	return cache.Fetch(ctx, s.store, cache.ExtrasKey, s.catalogTTL, func(ctx context.Context) ([]shared.ExtraSnapshot, error) {
		return s.extras.FindAll(ctx)
	})
}

// InvalidateRoom drops every cached entry derived from roomID. Callers run it
// after a committed write and before answering the client.
func (s *CatalogReadStore) InvalidateRoom(ctx context.Context, roomID int64) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, cache.RoomKey(roomID), cache.RoomStatusKey(roomID)); err != nil {
		return errs.Wrap(err, "failed to invalidate room cache")
	}
	return nil
}
