package model

import "time"

// FileResult is the per-file outcome of an import.
type FileResult struct {
	Filename     string        `json:"filename"`
	FileType     string        `json:"fileType"`
	Confidence   string        `json:"confidence"`
	Season       string        `json:"season"`
	Status       string        `json:"status"` // imported/skipped/error
	TotalRows    int           `json:"totalRows"`
	ImportedRows int           `json:"importedRows"`
	ErrorRows    int           `json:"errorRows"`
	Errors       []string      `json:"errors,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// ImportReport summarizes a whole import run.
type ImportReport struct {
	ImportID     string        `json:"importId"`
	Filename     string        `json:"filename"`
	TotalRows    int           `json:"totalRows"`
	ImportedRows int           `json:"importedRows"`
	ErrorRows    int           `json:"errorRows"`
	Duration     time.Duration `json:"duration"`
	Files        []FileResult  `json:"files"`
}
