package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

// DBTX is the subset of *pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db     DBTX
	hasher repository.PasswordHasher
	decoy  *repository.DummyVerifier
}

func NewUserRepository(db DBTX, hasher repository.PasswordHasher) *UserRepository {
	return &UserRepository{db: db, hasher: hasher, decoy: repository.NewDummyVerifier(hasher)}
}

// emailUniqueIndex is the unique index on users.email.
const emailUniqueIndex = "users_email_key"

const userColumns = `id::text, name, email, roles`

// Save inserts a new user. The email unique index turns a concurrent
// duplicate into entity.ErrEmailAlreadyExists.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	password, ok := u.Password()
	if !ok {
		return oops.Code("PASSWORD_MISSING").With("user_id", u.ID().Value()).Errorf("cannot save a user without a password")
	}
	hash, err := r.hasher.Hash(password.Value())
	if err != nil {
		return oops.Code("PASSWORD_HASH_FAILED").With("user_id", u.ID().Value()).Wrap(err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, roles)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID().Value(), u.Name().Value(), u.Email().Value(), hash, u.RoleValues())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == emailUniqueIndex {
			return entity.ErrEmailAlreadyExists
		}
		return oops.Code("USER_INSERT_FAILED").With("operation", "save user").With("user_id", u.ID().Value()).Wrap(err)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, email entity.UserEmail) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email.Value()).Scan(&exists)
	if err != nil {
		return false, oops.With("operation", "check email exists").Wrap(err)
	}
	return exists, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id.Value())
	u, _, err := scanUser(row, false)
	if err != nil {
		return nil, wrapFind(err, "find user by id", "user_id", id.Value())
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.UserEmail) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value())
	u, _, err := scanUser(row, false)
	if err != nil {
		return nil, wrapFind(err, "find user by email", "email", email.Value())
	}
	return u, nil
}

// FindByCredentials reports an unknown email and a wrong password the same
// way.
func (r *UserRepository) FindByCredentials(ctx context.Context, email entity.UserEmail, password entity.UserPassword) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email.Value())
	u, hash, err := scanUser(row, true)
	if err != nil {
		err = wrapFind(err, "find user by credentials", "email", email.Value())
		if errors.Is(err, repository.ErrUserNotFound) {
			r.decoy.Verify(password.Value())
		}
		return nil, err
	}
	if !r.hasher.Verify(password.Value(), hash) {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) UpdateRoles(ctx context.Context, u *entity.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET roles = $1, updated_at = now()
		WHERE id = $2
	`, u.RoleValues(), u.ID().Value())
	if err != nil {
		return oops.With("operation", "update user roles").With("user_id", u.ID().Value()).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row, withHash bool) (*entity.User, string, error) {
	var (
		id, name, email, hash string
		roles                 []string
	)
	dest := []any{&id, &name, &email, &roles}
	if withHash {
		dest = append(dest, &hash)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}
	u, err := entity.UserFromPrimitives(id, name, email, roles)
	if err != nil {
		return nil, "", oops.Code("CORRUPT_USER_ROW").With("user_id", id).Wrap(err)
	}
	return u, hash, nil
}

func wrapFind(err error, op, key, value string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrUserNotFound
	}
	return oops.With("operation", op).With(key, value).Wrap(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
