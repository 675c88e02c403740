package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/babelchat/babelchat-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blocks (
	user_id          INTEGER NOT NULL,
	blocked_username TEXT NOT NULL,
	created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, blocked_username)
);

CREATE TABLE IF NOT EXISTS reports (
	id                TEXT PRIMARY KEY,
	reporter_id       INTEGER NOT NULL,
	reported_username TEXT NOT NULL,
	reason            TEXT NOT NULL,
	message_id        TEXT,
	created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the database file and applies the schema.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(schema)
		return err
	})
}

// NewWithSetup opens the database and runs a setup function. Useful for
// tests to apply a custom schema.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ==== UserStore implementation ====

// CreateUser inserts a new account with an already-hashed password.
func (s *SQLiteStore) CreateUser(ctx context.Context, username, passwordHash string) (*store.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return s.GetUserByID(ctx, id)
}

// GetUserByID retrieves a user by ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*store.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetUserByUsername retrieves a user by username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*store.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*store.User, error) {
	var user store.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// ==== BlockStore implementation ====

// AddBlock records that userID blocked a display name. Re-blocking an
// already-blocked name is a no-op.
func (s *SQLiteStore) AddBlock(ctx context.Context, userID int64, username string) error {
	query := `
		INSERT OR IGNORE INTO blocks (user_id, blocked_username)
		VALUES (?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, userID, username); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// RemoveBlock deletes a block entry. Removing an absent entry is a no-op.
func (s *SQLiteStore) RemoveBlock(ctx context.Context, userID int64, username string) error {
	query := `
		DELETE FROM blocks
		WHERE user_id = ? AND blocked_username = ?
	`
	if _, err := s.db.ExecContext(ctx, query, userID, username); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// IsBlocked reports whether userID has blocked the given display name.
func (s *SQLiteStore) IsBlocked(ctx context.Context, userID int64, username string) (bool, error) {
	query := `
		SELECT 1 FROM blocks
		WHERE user_id = ? AND blocked_username = ?
	`
	var one int
	err := s.db.QueryRowContext(ctx, query, userID, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query block: %w", err)
	}
	return true, nil
}

// ListBlocked returns the display names blocked by userID.
func (s *SQLiteStore) ListBlocked(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT blocked_username FROM blocks
		WHERE user_id = ?
		ORDER BY blocked_username
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer rows.Close()

	blocked := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocked = append(blocked, name)
	}
	return blocked, rows.Err()
}

// ==== ReportStore implementation ====

// AddReport persists a moderation report and returns it with its generated id.
func (s *SQLiteStore) AddReport(ctx context.Context, reporterID int64, username, reason, messageID string) (*store.Report, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO reports (id, reporter_id, reported_username, reason, message_id)
		VALUES (?, ?, ?, ?, NULLIF(?, ''))
	`
	if _, err := s.db.ExecContext(ctx, query, id, reporterID, username, reason, messageID); err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	query = `
		SELECT id, reporter_id, reported_username, reason, COALESCE(message_id, ''), created_at
		FROM reports
		WHERE id = ?
	`
	var report store.Report
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.ReporterID,
		&report.ReportedUsername,
		&report.Reason,
		&report.MessageID,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	return &report, nil
}
