package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/service"
)

const usersSchema = `CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email    TEXT,
	password TEXT)`

// Users implements interfaces.UserStore on SQLite.
type Users struct {
	db *sql.DB
}

// NewUsers opens (creating if needed) the user database in dir.
//
// Called from cmd/userservice at startup.
func NewUsers(dir string) (*Users, error) {
	db, err := open(dir, "users.db", usersSchema)
	if err != nil {
		return nil, err
	}
	return &Users{db: db}, nil
}

// Create inserts the user. A duplicate id or username yields entity_conflict.
func (u *Users) Create(ctx context.Context, user domain.User) error {
	_, err := u.db.ExecContext(ctx,
		`INSERT INTO users(id, username, email, password) VALUES(?,?,?,?)`,
		user.ID, user.Username, user.Email, user.Password)
	if err != nil {
		if isConstraintViolation(err) {
			return service.NewEntityConflictError("User id or username already exists", err)
		}
		return service.NewInternalServerError("user insert failed", err)
	}
	return nil
}

// Get returns the user by id, or entity_not_found.
func (u *Users) Get(ctx context.Context, id int) (domain.User, error) {
	var user domain.User
	err := u.db.QueryRowContext(ctx,
		`SELECT id, username, email, password FROM users WHERE id = ?`, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, service.NewEntityNotFoundError("User not found", err)
	}
	if err != nil {
		return domain.User{}, service.NewInternalServerError("user query failed", err)
	}
	return user, nil
}

// Update applies the set fields of update to the user and returns the new record.
// A missing user yields entity_not_found; a username collision entity_conflict.
func (u *Users) Update(ctx context.Context, id int, update domain.UserUpdate) (domain.User, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if update.Username != nil {
		existing.Username = *update.Username
	}
	if update.Email != nil {
		existing.Email = *update.Email
	}
	if update.Password != nil {
		existing.Password = *update.Password
	}
	_, err = u.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, password = ? WHERE id = ?`,
		existing.Username, existing.Email, existing.Password, id)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.User{}, service.NewEntityConflictError("Username already exists", err)
		}
		return domain.User{}, service.NewInternalServerError("user update failed", err)
	}
	return existing, nil
}

// Delete removes the user only when username, email and password all match the stored
// record. Missing user → entity_not_found; mismatch → field_mismatch.
func (u *Users) Delete(ctx context.Context, id int, username, email, password string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	res, err := u.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = ? AND username = ? AND email = ? AND password = ?`,
		id, username, email, password)
	if err != nil {
		return service.NewInternalServerError("user delete failed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return service.NewInternalServerError("user delete failed", err)
	}
	if affected == 0 {
		return service.NewFieldMismatchError("Delete failed: fields do not match", nil)
	}
	return nil
}

// Close closes the database.
func (u *Users) Close() error {
	return u.db.Close()
}

// isConstraintViolation reports whether err is a SQLite UNIQUE/PRIMARY KEY violation.
// The modernc driver exposes these as plain errors carrying the SQLITE_CONSTRAINT text.
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint")
}
