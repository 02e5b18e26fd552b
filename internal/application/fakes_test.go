package application

import (
	"context"
	"errors"
	"sync"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

// fakeRepo keeps users in memory and compares passwords in plaintext.
type fakeRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	passwords map[string]string

	existsErr error
	saveErr   error
	findErr   error
	updateErr error

	existsCalls int
	saveCalls   int
	updateCalls int
	credCalls   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*entity.User{}, passwords: map[string]string{}}
}

func (f *fakeRepo) Save(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, existing := range f.users {
		if existing.Email().Equals(u.Email()) {
			return entity.ErrEmailAlreadyExists
		}
	}
	f.users[u.ID().Value()] = u
	if p, ok := u.Password(); ok {
		f.passwords[u.ID().Value()] = p.Value()
	}
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, email entity.UserEmail) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, u := range f.users {
		if u.Email().Equals(email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id entity.UserID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id.Value()]
	if !ok {
		return nil, repo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email entity.UserEmail) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email().Equals(email) {
			return u, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

func (f *fakeRepo) FindByCredentials(ctx context.Context, email entity.UserEmail, password entity.UserPassword) (*entity.User, error) {
	f.credCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, err := f.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if f.passwords[u.ID().Value()] != password.Value() {
		return nil, repo.ErrUserNotFound
	}
	p := u.ToPrimitives()
	return entity.UserFromPrimitives(p.ID, p.Name, p.Email, p.Roles)
}

func (f *fakeRepo) UpdateRoles(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[u.ID().Value()]; !ok {
		return repo.ErrUserNotFound
	}
	f.users[u.ID().Value()] = u
	return nil
}

// seed stores a user directly, bypassing registration rules.
func (f *fakeRepo) seed(id, name, email, password string, roles ...string) *entity.User {
	u, err := entity.UserFromPrimitives(id, name, email, roles)
	if err != nil {
		panic(err)
	}
	f.users[id] = u
	f.passwords[id] = password
	return u
}

type fakeIndexer struct {
	indexed []string
	err     error
	docs    []UserDocument
	lastQ   string
	lastN   int
}

func (f *fakeIndexer) Index(_ context.Context, u *entity.User) error {
	f.indexed = append(f.indexed, u.ID().Value())
	return f.err
}

func (f *fakeIndexer) Search(_ context.Context, q string, size int) ([]UserDocument, error) {
	f.lastQ, f.lastN = q, size
	return f.docs, f.err
}

type fakeNotifier struct {
	registered []string
	loggedIn   []LoginMeta
	err        error
}

func (f *fakeNotifier) UserRegistered(_ context.Context, u *entity.User) error {
	f.registered = append(f.registered, u.Email().Value())
	return f.err
}

func (f *fakeNotifier) UserLoggedIn(_ context.Context, _ *entity.User, meta LoginMeta) error {
	f.loggedIn = append(f.loggedIn, meta)
	return f.err
}

type fakeTokens struct {
	live      map[string]TokenClaims
	revoked   []string
	revokeErr error
}

func newFakeTokens() *fakeTokens { return &fakeTokens{live: map[string]TokenClaims{}} }

func (f *fakeTokens) Issue(_ context.Context, userID entity.UserID) (IssuedToken, error) {
	tok := "tok-" + userID.Value()
	f.live[tok] = TokenClaims{UserID: userID.Value(), TokenID: "jti-" + userID.Value()}
	return IssuedToken{Token: tok, ID: "jti-" + userID.Value()}, nil
}

func (f *fakeTokens) Resolve(_ context.Context, token string) (TokenClaims, error) {
	c, ok := f.live[token]
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}
	return c, nil
}

func (f *fakeTokens) Revoke(_ context.Context, token string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	if _, ok := f.live[token]; !ok {
		return ErrInvalidToken
	}
	delete(f.live, token)
	f.revoked = append(f.revoked, token)
	return nil
}

var errBoom = errors.New("boom")
