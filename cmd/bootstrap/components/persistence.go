package components

import (
	"context"

	"shareit/internal/infra/db"
	"shareit/internal/infra/memstore"
	"shareit/internal/infra/readstore"
	"shareit/internal/infra/uow"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is the one set of ports every use case depends on, whichever backing serves it.
type Stores struct {
	fx.Out

	UoW          shared.UnitOfWork
	Bookings     queries.BookingReadStore
	Items        queries.ItemReadStore
	Availability queries.AvailabilityReadStore
	Comments     queries.CommentReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return NewMemoryStores(memstore.New()), nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return Stores{}, err
	}
	return NewPostgresStores(pool), nil
}

func NewPostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		UoW:          uow.NewPostgresUoW(pool),
		Bookings:     readstore.NewBookingReadStore(pool),
		Items:        readstore.NewItemReadStore(pool),
		Availability: readstore.NewAvailabilityReadStore(pool),
		Comments:     readstore.NewCommentReadStore(pool),
	}
}

func NewMemoryStores(store *memstore.Store) Stores {
	return Stores{
		UoW:          store,
		Bookings:     store,
		Items:        store.Items(),
		Availability: store,
		Comments:     store,
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
