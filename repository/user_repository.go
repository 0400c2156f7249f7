package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskPlanner/models"
)

// UserRepository stores identities keyed by their external OpenID.
type UserRepository struct {
	db          *sql.DB
	ownerOpenID string
	now         func() time.Time
}

// NewUserRepository creates a UserRepository. Identities whose OpenID equals ownerOpenID are
// stored as admins unless a role is supplied explicitly.
func NewUserRepository(db *sql.DB, ownerOpenID string) *UserRepository {
	return &UserRepository{db: db, ownerOpenID: strings.TrimSpace(ownerOpenID), now: utcNow}
}

// UpsertUserParams describes an identity write. Nil fields are left untouched on conflict.
type UpsertUserParams struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *models.Role
	LastSignedIn *time.Time
}

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

// Upsert inserts the identity or updates the supplied fields of the existing row with the same
// OpenID, as one INSERT ... ON CONFLICT statement. When only the OpenID is supplied the
// last_signed_in column is advanced. Returns the stored row.
func (r *UserRepository) Upsert(ctx context.Context, p UpsertUserParams) (*models.User, error) {
	openID := strings.TrimSpace(p.OpenID)
	if openID == "" {
		return nil, invalid("user openId is required for upsert")
	}
	if p.Role != nil && !p.Role.Valid() {
		return nil, invalid("role %q", *p.Role)
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}

	now := r.now()
	insertCols := []string{"open_id", "created_at", "updated_at"}
	insertArgs := []any{openID, formatTime(now), formatTime(now)}
	var updateSet []string
	var updateArgs []any

	assign := func(col string, v any) {
		insertCols = append(insertCols, col)
		insertArgs = append(insertArgs, v)
		updateSet = append(updateSet, col+" = ?")
		updateArgs = append(updateArgs, v)
	}
	if p.Name != nil {
		assign("name", *p.Name)
	}
	if p.Email != nil {
		assign("email", *p.Email)
	}
	if p.LoginMethod != nil {
		assign("login_method", *p.LoginMethod)
	}
	switch {
	case p.Role != nil:
		assign("role", string(*p.Role))
	case r.ownerOpenID != "" && openID == r.ownerOpenID:
		assign("role", string(models.RoleAdmin))
	}
	signedIn := now
	if p.LastSignedIn != nil {
		signedIn = p.LastSignedIn.UTC()
		assign("last_signed_in", formatTime(signedIn))
	} else {
		insertCols = append(insertCols, "last_signed_in")
		insertArgs = append(insertArgs, formatTime(signedIn))
	}
	if len(updateSet) == 0 {
		updateSet = append(updateSet, "last_signed_in = ?")
		updateArgs = append(updateArgs, formatTime(now))
	}
	updateSet = append(updateSet, "updated_at = ?")
	updateArgs = append(updateArgs, formatTime(now))

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(insertCols)), ",")
	query := `INSERT INTO users (` + strings.Join(insertCols, ", ") + `) VALUES (` + placeholders + `)
ON CONFLICT(open_id) DO UPDATE SET ` + strings.Join(updateSet, ", ")

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := r.db.ExecContext(ctx, query, append(insertArgs, updateArgs...)...); err != nil {
		return nil, storeError("upsert user", err)
	}
	u, err := r.GetByOpenID(ctx, openID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, storeError("upsert user", errors.New("upserted user not found"))
	}
	return u, nil
}

// GetByOpenID returns the user with the given external id, or nil when absent.
func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*models.User, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE open_id = ?`, openID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get user by open id", err)
	}
	return u, nil
}

// Count returns the number of stored identities.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	if r.db == nil {
		return 0, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, storeError("count users", err)
	}
	return n, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                              models.User
		name, email, loginMethod       sql.NullString
		role                           string
		createdAt, updatedAt, signedIn string
	)
	if err := row.Scan(&u.ID, &u.OpenID, &name, &email, &loginMethod, &role, &createdAt, &updatedAt, &signedIn); err != nil {
		return nil, err
	}
	u.Name = nullString(name)
	u.Email = nullString(email)
	u.LoginMethod = nullString(loginMethod)
	u.Role = models.Role(role)
	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if u.LastSignedIn, err = parseTime(signedIn); err != nil {
		return nil, err
	}
	return &u, nil
}
