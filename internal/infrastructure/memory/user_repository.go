package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

type record struct {
	id    string
	name  string
	email string
	hash  string
	roles []string
}

// UserRepository keeps users in process memory. It stores primitives and
// rebuilds a fresh User on every read, so callers never share state.
type UserRepository struct {
	mu      sync.RWMutex
	hasher  repository.PasswordHasher
	decoy   *repository.DummyVerifier
	byID    map[string]*record
	byEmail map[string]string
}

func NewUserRepository(hasher repository.PasswordHasher) *UserRepository {
	return &UserRepository{
		hasher:  hasher,
		decoy:   repository.NewDummyVerifier(hasher),
		byID:    map[string]*record{},
		byEmail: map[string]string{},
	}
}

func (r *UserRepository) Save(_ context.Context, u *entity.User) error {
	password, ok := u.Password()
	if !ok {
		return entity.ErrEmptyPassword
	}
	hash, err := r.hasher.Hash(password.Value())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[u.Email().Value()]; taken {
		return entity.ErrEmailAlreadyExists
	}
	p := u.ToPrimitives()
	r.byID[p.ID] = &record{id: p.ID, name: p.Name, email: p.Email, hash: hash, roles: p.Roles}
	r.byEmail[p.Email] = p.ID
	return nil
}

func (r *UserRepository) Exists(_ context.Context, email entity.UserEmail) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email.Value()]
	return ok, nil
}

func (r *UserRepository) FindByID(_ context.Context, id entity.UserID) (*entity.User, error) {
	r.mu.RLock()
	rec, ok := r.byID[id.Value()]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return rec.toUser()
}

func (r *UserRepository) FindByEmail(_ context.Context, email entity.UserEmail) (*entity.User, error) {
	rec, ok := r.lookupEmail(email)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return rec.toUser()
}

func (r *UserRepository) FindByCredentials(_ context.Context, email entity.UserEmail, password entity.UserPassword) (*entity.User, error) {
	rec, ok := r.lookupEmail(email)
	if !ok {
		r.decoy.Verify(password.Value())
		return nil, repository.ErrUserNotFound
	}
	if !r.hasher.Verify(password.Value(), rec.hash) {
		return nil, repository.ErrUserNotFound
	}
	return rec.toUser()
}

func (r *UserRepository) UpdateRoles(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[u.ID().Value()]
	if !ok {
		return repository.ErrUserNotFound
	}
	next := *rec
	next.roles = u.RoleValues()
	r.byID[rec.id] = &next
	return nil
}

// lookupEmail returns a snapshot copy of the record.
func (r *UserRepository) lookupEmail(email entity.UserEmail) (record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email.Value()]
	if !ok {
		return record{}, false
	}
	return *r.byID[id], true
}

func (rec record) toUser() (*entity.User, error) {
	return entity.UserFromPrimitives(rec.id, rec.name, rec.email, rec.roles)
}

var _ repository.UserRepository = (*UserRepository)(nil)
