package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/storage"
)

// MemoryRepository holds the user collection in memory and writes the whole
// collection through to the backing store after every mutation. The mutex is
// held across the check-mutate-persist sequence, so duplicate registrations
// cannot slip past the uniqueness check concurrently.
type MemoryRepository struct {
	mu     sync.Mutex
	users  []*User
	nextID int
	store  storage.Store
}

// NewMemoryRepository loads the users collection once from the store. A
// missing collection yields an empty repository rather than an error.
func NewMemoryRepository(ctx context.Context, store storage.Store) (*MemoryRepository, error) {
	r := &MemoryRepository{store: store, users: []*User{}, nextID: 1}

	data, err := store.Load(ctx, storage.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.users); err != nil {
			return nil, fmt.Errorf("decoding users: %w", err)
		}
	}

	for _, u := range r.users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}

	return r, nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)

	if err := r.persist(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}

	return nil, common.ErrorNotFound
}

// persist overwrites the whole users collection. Callers hold r.mu. On
// failure the in-memory mutation is not rolled back; the caller sees the
// storage error and must not treat the mutation as committed.
func (r *MemoryRepository) persist(ctx context.Context) error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("%w: encoding users: %v", common.ErrorStorage, err)
	}
	if err := r.store.Save(ctx, storage.CollectionUsers, data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}
	return nil
}
