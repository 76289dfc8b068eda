package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// defaultSearchLimit caps fact search results when the caller passes a
// non-positive limit.
const defaultSearchLimit = 10

// factStore implements driven.FactStore.
type factStore struct {
	store *Store
}

var _ driven.FactStore = (*factStore)(nil)

// Remember stores or overwrites a fact under its normalized key.
func (f *factStore) Remember(ctx context.Context, key, value string) error {
	key = domain.NormalizeFactKey(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return fmt.Errorf("fact key and value must be non-empty: %w", domain.ErrInvalidInput)
	}

	_, err := f.store.db.ExecContext(ctx, `
		INSERT INTO facts (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving fact: %w", err)
	}
	return nil
}

// Recall fetches a fact by exact normalized key.
func (f *factStore) Recall(ctx context.Context, key string) (*domain.Fact, error) {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return nil, fmt.Errorf("fact key must be non-empty: %w", domain.ErrInvalidInput)
	}

	row := f.store.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM facts WHERE key = ?
	`, key)

	var fact domain.Fact
	var updatedAt sql.NullTime
	if err := row.Scan(&fact.Key, &fact.Value, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning fact: %w", err)
	}
	if updatedAt.Valid {
		fact.UpdatedAt = updatedAt.Time
	}
	return &fact, nil
}

// Search finds facts matching the query, best match first. It tries
// FTS5 first and falls back to a LIKE scan when the match query is
// unusable or finds nothing.
func (f *factStore) Search(ctx context.Context, query string, limit int) ([]domain.Fact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query must be non-empty: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if match := ftsQuery(query); match != "" {
		facts, err := f.searchFTS(ctx, match, limit)
		if err == nil && len(facts) > 0 {
			return facts, nil
		}
	}
	return f.searchLike(ctx, query, limit)
}

// searchFTS runs a ranked full-text match against the facts index.
func (f *factStore) searchFTS(ctx context.Context, match string, limit int) ([]domain.Fact, error) {
	rows, err := f.store.db.QueryContext(ctx, `
		SELECT f.key, f.value, f.updated_at
		FROM facts_fts
		JOIN facts f ON f.rowid = facts_fts.rowid
		WHERE facts_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}
	defer rows.Close()
	return scanFacts(rows)
}

// searchLike is the substring fallback used when FTS finds nothing.
func (f *factStore) searchLike(ctx context.Context, query string, limit int) ([]domain.Fact, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := f.store.db.QueryContext(ctx, `
		SELECT key, value, updated_at
		FROM facts
		WHERE lower(key) LIKE ? OR lower(value) LIKE ?
		ORDER BY updated_at DESC, key ASC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}
	defer rows.Close()
	return scanFacts(rows)
}

// Forget deletes a fact and reports whether it existed.
func (f *factStore) Forget(ctx context.Context, key string) (bool, error) {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return false, fmt.Errorf("fact key must be non-empty: %w", domain.ErrInvalidInput)
	}

	result, err := f.store.db.ExecContext(ctx, `DELETE FROM facts WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("deleting fact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deletion: %w", err)
	}
	return affected > 0, nil
}

// Keys lists all fact keys, most recently updated first.
func (f *factStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := f.store.db.QueryContext(ctx, `
		SELECT key FROM facts ORDER BY updated_at DESC, key ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing fact keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning fact key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fact keys: %w", err)
	}
	return keys, nil
}

// ftsQuery builds an FTS5 match expression from free-form user input.
// Each token is double-quoted so FTS operators in the input cannot
// change the query's meaning.
func ftsQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " ")
}

// scanFacts collects fact rows.
func scanFacts(rows *sql.Rows) ([]domain.Fact, error) {
	var facts []domain.Fact
	for rows.Next() {
		var fact domain.Fact
		var updatedAt sql.NullTime
		if err := rows.Scan(&fact.Key, &fact.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning fact: %w", err)
		}
		if updatedAt.Valid {
			fact.UpdatedAt = updatedAt.Time
		}
		facts = append(facts, fact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating facts: %w", err)
	}
	return facts, nil
}
