package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

// IClientUseCase exposes the thin client operations the order lifecycle
// depends on: orders must reference an existing client.

type IClientUseCase interface {
	Create(ctx context.Context, name, phone string, email *string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Update(ctx context.Context, id, name, phone string, email *string) (entities.Client, error)
	List(ctx context.Context, query string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ClientUseCase) Create(ctx context.Context, name, phone string, email *string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	now := u.now()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id, name, phone string, email *string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if current.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	current.Name = name
	current.Phone = phone
	current.Email = email
	current.UpdatedAt = u.now()
	return u.repo.Update(ctx, current)
}

func (u *ClientUseCase) List(ctx context.Context, query string) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Phone), query) {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}
