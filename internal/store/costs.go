package store

import (
	"fmt"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
)

// BatchInsertCosts inserts cost rows inside one transaction.
func (s *Store) BatchInsertCosts(records []*model.CostRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO costs (
			style_number, season, cost, landed_cost, kind, factory, origin,
			source_file, import_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.StyleNumber, r.Season, r.Cost, r.LandedCost, r.Kind, r.Factory,
			r.Origin, r.SourceFile, r.ImportID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cost record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CostQueryOptions filters cost listings.
type CostQueryOptions struct {
	Season      *string
	StyleNumber *string
	Kind        *model.CostKind
	Limit       int
	Offset      int
}

// where builds the filter clauses shared by ListCosts and CountCosts.
func (opts CostQueryOptions) where() (string, []interface{}) {
	query := " WHERE 1=1"
	args := []interface{}{}

	if opts.Season != nil {
		query += " AND season = ?"
		args = append(args, *opts.Season)
	}
	if opts.StyleNumber != nil {
		query += " AND style_number = ?"
		args = append(args, *opts.StyleNumber)
	}
	if opts.Kind != nil {
		query += " AND kind = ?"
		args = append(args, string(*opts.Kind))
	}
	return query, args
}

// ListCosts returns cost rows matching the options.
func (s *Store) ListCosts(opts CostQueryOptions) ([]*model.CostRecord, error) {
	where, args := opts.where()
	query := `
		SELECT id, style_number, season, cost, landed_cost, kind, factory,
		       origin, source_file, import_id
		FROM costs` + where

	query += " ORDER BY style_number"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}
	defer rows.Close()

	var out []*model.CostRecord
	for rows.Next() {
		r := &model.CostRecord{}
		if err := rows.Scan(
			&r.ID, &r.StyleNumber, &r.Season, &r.Cost, &r.LandedCost, &r.Kind,
			&r.Factory, &r.Origin, &r.SourceFile, &r.ImportID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cost record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountCosts counts cost rows matching the options.
func (s *Store) CountCosts(opts CostQueryOptions) (int, error) {
	where, args := opts.where()
	query := "SELECT COUNT(1) FROM costs" + where

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count costs: %w", err)
	}
	return n, nil
}
