package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"watbot/internal/domain"
	"watbot/internal/repository"

	"github.com/mattn/go-sqlite3"
)

// WatRepo implements repository.WatRepository on a sqlite database file
type WatRepo struct {
	db *sql.DB
}

// NewWatRepo creates a new WAT repository
func NewWatRepo(db *sql.DB) *WatRepo {
	return &WatRepo{db: db}
}

// Create inserts a new WAT with the given file IDs and no expressions.
// The UNIQUE constraint on name is the authoritative uniqueness check:
// a violation surfaces as repository.ErrDuplicateName, so concurrent
// exists/create races cannot produce duplicate names.
func (r *WatRepo) Create(name string, fileIDs []string) (*domain.Wat, error) {
	if len(fileIDs) == 0 {
		return nil, fmt.Errorf("file ids cannot be empty")
	}

	encoded, err := json.Marshal(fileIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode file ids: %w", err)
	}

	query := `INSERT INTO wats (name, file_ids, expressions) VALUES (?, ?, '[]')`
	res, err := r.db.Exec(query, name, string(encoded))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, repository.ErrDuplicateName
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain.Wat{
		ID:          id,
		Name:        name,
		FileIDs:     fileIDs,
		Expressions: []string{},
	}, nil
}

// Exists checks whether a WAT with the given name is stored
func (r *WatRepo) Exists(name string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM wats WHERE name = ?`
	if err := r.db.QueryRow(query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByName returns the WAT with the given name, or nil when absent
func (r *WatRepo) GetByName(name string) (*domain.Wat, error) {
	query := `SELECT id, name, file_ids, expressions FROM wats WHERE name = ?`
	return scanWat(r.db.QueryRow(query, name))
}

// GetByID returns the WAT with the given id, or nil when absent
func (r *WatRepo) GetByID(id int64) (*domain.Wat, error) {
	query := `SELECT id, name, file_ids, expressions FROM wats WHERE id = ?`
	return scanWat(r.db.QueryRow(query, id))
}

// ListAll returns every stored WAT in insertion order
func (r *WatRepo) ListAll() ([]domain.Wat, error) {
	query := `SELECT id, name, file_ids, expressions FROM wats ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWats(rows)
}

// SearchByExpression returns every WAT whose expression set contains the
// given expression exactly. Callers normalize the expression to lowercase
// before calling. An empty result is not an error.
func (r *WatRepo) SearchByExpression(expression string) ([]domain.Wat, error) {
	query := `
		SELECT DISTINCT w.id, w.name, w.file_ids, w.expressions
		FROM wats w, json_each(w.expressions) e
		WHERE e.value = ?
		ORDER BY w.id
	`

	rows, err := r.db.Query(query, expression)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWats(rows)
}

// SetExpressions replaces the expression set of the named WAT.
// Silently does nothing when the name is unknown.
func (r *WatRepo) SetExpressions(name string, expressions []string) error {
	encoded, err := json.Marshal(expressions)
	if err != nil {
		return fmt.Errorf("failed to encode expressions: %w", err)
	}

	query := `UPDATE wats SET expressions = ? WHERE name = ?`
	_, err = r.db.Exec(query, string(encoded), name)
	return err
}

// Remove deletes the WAT with the given id.
// Returns false when no record had that id.
func (r *WatRepo) Remove(id int64) (bool, error) {
	query := `DELETE FROM wats WHERE id = ?`
	res, err := r.db.Exec(query, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanWat decodes a single WAT row, mapping sql.ErrNoRows to (nil, nil)
func scanWat(row *sql.Row) (*domain.Wat, error) {
	var w domain.Wat
	var fileIDs, expressions string

	err := row.Scan(&w.ID, &w.Name, &fileIDs, &expressions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := decodeWat(&w, fileIDs, expressions); err != nil {
		return nil, err
	}
	return &w, nil
}

func collectWats(rows *sql.Rows) ([]domain.Wat, error) {
	wats := []domain.Wat{}
	for rows.Next() {
		var w domain.Wat
		var fileIDs, expressions string

		if err := rows.Scan(&w.ID, &w.Name, &fileIDs, &expressions); err != nil {
			return nil, err
		}
		if err := decodeWat(&w, fileIDs, expressions); err != nil {
			return nil, err
		}
		wats = append(wats, w)
	}
	return wats, rows.Err()
}

func decodeWat(w *domain.Wat, fileIDs, expressions string) error {
	if err := json.Unmarshal([]byte(fileIDs), &w.FileIDs); err != nil {
		return fmt.Errorf("failed to decode file ids for wat %q: %w", w.Name, err)
	}
	if err := json.Unmarshal([]byte(expressions), &w.Expressions); err != nil {
		return fmt.Errorf("failed to decode expressions for wat %q: %w", w.Name, err)
	}
	return nil
}
