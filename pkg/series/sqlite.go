package series

import (
	"database/sql"
	"fmt"

	"github.com/richard-senior/standings/internal/logger"
	_ "modernc.org/sqlite"
)

// Store persists a table into a local SQLite database. The column list is
// explicit and pinned by the statements below; nothing is derived from the
// struct at runtime. A row's position column preserves table order, so a
// table saved after Sort comes back ranked.
type Store struct {
	db *sql.DB
}

const createStandingsSQL = `CREATE TABLE IF NOT EXISTS standings (
	name TEXT PRIMARY KEY,
	wins INTEGER NOT NULL,
	draws INTEGER NOT NULL,
	losses INTEGER NOT NULL,
	scored INTEGER NOT NULL,
	conceded INTEGER NOT NULL,
	position INTEGER NOT NULL
)`

// OpenStore opens (creating if necessary) the standings database at path
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err = db.Exec(createStandingsSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create standings table: %w", err)
	}
	logger.Debug("Database initialized", path)
	return &Store{db: db}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTable rewrites the standings rows from the table's current contents
// in one transaction, mirroring the whole-file semantics of Save.
func (s *Store) SaveTable(t *Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM standings"); err != nil {
		return fmt.Errorf("failed to clear standings: %w", err)
	}
	for i, team := range t.teams {
		_, err = tx.Exec(
			"INSERT INTO standings (name, wins, draws, losses, scored, conceded, position) VALUES (?, ?, ?, ?, ?, ?, ?)",
			team.Name, team.Wins, team.Draws, team.Losses, team.Scored, team.Conceded, i)
		if err != nil {
			return fmt.Errorf("failed to insert standings row for %s: %w", team.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	logger.Debug("Saved table to database", t.Len())
	return nil
}

// LoadTable reads all standings rows back into a fresh table in stored order
func (s *Store) LoadTable() (*Table, error) {
	rows, err := s.db.Query(
		"SELECT name, wins, draws, losses, scored, conceded FROM standings ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	t := NewTable()
	for rows.Next() {
		var name string
		var wins, draws, losses, scored, conceded int
		if err = rows.Scan(&name, &wins, &draws, &losses, &scored, &conceded); err != nil {
			return nil, fmt.Errorf("failed to scan standings row: %w", err)
		}
		if err = t.Add(name, wins, draws, losses, scored, conceded); err != nil {
			return nil, fmt.Errorf("failed to restore standings row: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings rows: %w", err)
	}
	return t, nil
}
