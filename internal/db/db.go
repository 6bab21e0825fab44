package db

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"aarogya/internal/models"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

var (
	ErrUserExists     = errors.New("a user with this email already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid username or password")
)

// DefaultPath returns the user database location under the OS config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "aarogya", "aarogya.db"), nil
}

func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func OpenDefault() (*sql.DB, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// CreateUser registers a new account. The password is stored as a bcrypt
// hash, never in the clear. Email uniqueness is enforced here.
func CreateUser(db *sql.DB, name, email, phone, password string, now time.Time) (*models.UserRecord, error) {
	if existing, err := FindUserByEmail(db, email); err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	res, err := db.Exec(
		"INSERT INTO users(name, email, phone, password_hash, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)",
		name,
		email,
		phone,
		string(hash),
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.UserRecord{
		ID:           id,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func FindUserByEmail(db *sql.DB, email string) (*models.UserRecord, error) {
	return scanUser(db.QueryRow(
		"SELECT id, name, email, phone, password_hash, created_at, updated_at FROM users WHERE email = ?",
		email,
	))
}

// Authenticate looks a user up by email or phone and verifies the password.
func Authenticate(db *sql.DB, identifier, password string) (*models.UserRecord, error) {
	u, err := scanUser(db.QueryRow(
		"SELECT id, name, email, phone, password_hash, created_at, updated_at FROM users WHERE email = ? OR phone = ?",
		identifier,
		identifier,
	))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

func UpdatePassword(db *sql.DB, email, newPassword string, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE users SET password_hash = ?, updated_at = ? WHERE email = ?",
		string(hash),
		now.Unix(),
		email,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*models.UserRecord, error) {
	var u models.UserRecord
	var createdAt, updatedAt int64
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)
	return &u, nil
}
