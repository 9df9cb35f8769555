package store

import "fmt"

// CreateImportLog records the start of a file import and returns the log
// row id.
func (s *Store) CreateImportLog(importID, filename, fileType, confidence, seasonCode string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (import_id, filename, file_type, confidence, season, status)
		VALUES (?, ?, ?, ?, ?, 'processing')
	`, importID, filename, fileType, confidence, seasonCode)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog finalizes an import log row.
func (s *Store) CompleteImportLog(id int64, totalRows, importedRows, errorRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_rows = ?,
			imported_rows = ?,
			error_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRows, importedRows, errorRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LastImportTime returns the completion time of the most recent successful
// import, empty when none exists.
func (s *Store) LastImportTime() (string, error) {
	var t string
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(completed_at), '') FROM import_logs WHERE status = 'imported'
	`).Scan(&t)
	if err != nil {
		return "", fmt.Errorf("failed to query last import time: %w", err)
	}
	return t, nil
}
