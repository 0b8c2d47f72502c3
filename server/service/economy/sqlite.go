package economy

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the SQLite-backed account store at the path
// passed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}
	// modernc.org/sqlite serialises writers itself, but keeping a single
	// connection avoids SQLITE_BUSY on concurrent read/write mixes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS accounts (
			identifier TEXT PRIMARY KEY,
			owner TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS balances (
			identifier TEXT NOT NULL,
			currency TEXT NOT NULL,
			amount INTEGER NOT NULL,
			PRIMARY KEY (identifier, currency)
		);`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init account store: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Account(identifier string) (Account, bool, error) {
	var owner string
	err := s.db.QueryRow("SELECT owner FROM accounts WHERE identifier = ?", identifier).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, false, nil
	}
	if err != nil {
		return Account{}, false, err
	}
	a := Account{Identifier: identifier}
	if owner != "" {
		id, err := uuid.Parse(owner)
		if err != nil {
			return Account{}, false, fmt.Errorf("account %v: malformed owner %q: %w", identifier, owner, err)
		}
		a.Owner = id
	}
	return a, true, nil
}

func (s *SQLiteStore) PutAccount(a Account) error {
	owner := ""
	if !a.Virtual() {
		owner = a.Owner.String()
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO accounts (identifier, owner) VALUES (?, ?)", a.Identifier, owner)
	return err
}

func (s *SQLiteStore) Accounts() ([]Account, error) {
	rows, err := s.db.Query("SELECT identifier, owner FROM accounts ORDER BY identifier")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var identifier, owner string
		if err := rows.Scan(&identifier, &owner); err != nil {
			return nil, err
		}
		a := Account{Identifier: identifier}
		if owner != "" {
			id, err := uuid.Parse(owner)
			if err != nil {
				return nil, fmt.Errorf("account %v: malformed owner %q: %w", identifier, owner, err)
			}
			a.Owner = id
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Balance(identifier, currency string) (int64, error) {
	var amount int64
	err := s.db.QueryRow("SELECT amount FROM balances WHERE identifier = ? AND currency = ?", identifier, currency).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return amount, err
}

func (s *SQLiteStore) SetBalance(identifier, currency string, amount int64) error {
	_, err := s.db.Exec(
		`INSERT INTO balances (identifier, currency, amount) VALUES (?, ?, ?)
		 ON CONFLICT (identifier, currency) DO UPDATE SET amount = excluded.amount`,
		identifier, currency, amount)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
