//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/infra/memstore"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	id := uuid.New()
	return &UserBuilder{
		ID:    id,
		Name:  "Sharer",
		Email: "sharer-" + id.String()[:8] + "@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *UserBuilder) BuildSeed() memstore.User {
	return memstore.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		CreatedAt:   DefaultNow.Add(-30 * 24 * time.Hour),
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) BuildSeed() memstore.Item {
	return memstore.Item{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		CreatedAt:   i.CreatedAt,
	}
}

func (i *ItemBuilder) BuildView() *queries.ItemWithBookingsView {
	return &queries.ItemWithBookingsView{
		ItemView: queries.ItemView{
			ID:          i.ID,
			OwnerID:     i.OwnerID,
			Name:        i.Name,
			Description: i.Description,
			Available:   i.Available,
			CreatedAt:   i.CreatedAt,
		},
		Comments: []*queries.CommentView{},
	}
}
