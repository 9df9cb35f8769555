// Package importer turns uploaded workbooks into store rows. It composes
// the two pure decision engines: detect classifies the header row and
// normalizes a season from the filename, season decides how cost rows are
// labeled. All I/O and batching lives here, outside the engines.
package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/detect"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/store"
)

// Coordinator drives a single-file import end to end.
type Coordinator struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(st *store.Store, logger zerolog.Logger) *Coordinator {
	return &Coordinator{store: st, logger: logger}
}

// Options configures one import run.
type Options struct {
	FilePath      string
	Filename      string    // original upload name; season extraction runs on this
	ClearExisting bool      // drop existing rows of the detected kind+season first
	ReferenceDate time.Time // zero means now; drives actual-vs-projected cost labeling
}

// ProgressEvent is one step of an import, streamed to the client over SSE.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/detect/info/rows/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import runs the import in a goroutine and returns its progress channel.
// The channel is closed when the run finishes.
func (c *Coordinator) Import(opts Options) <-chan ProgressEvent {
	progress := make(chan ProgressEvent, 100)

	go func() {
		defer close(progress)
		c.doImport(opts, progress)
	}()

	return progress
}

func (c *Coordinator) send(progress chan ProgressEvent, eventType, message string, data interface{}) {
	progress <- ProgressEvent{
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func (c *Coordinator) doImport(opts Options, progress chan ProgressEvent) {
	startTime := time.Now()
	importID := uuid.New().String()

	filename := opts.Filename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}
	ref := opts.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	c.logger.Info().Str("file", filename).Str("import_id", importID).Msg("import started")
	c.send(progress, "start", "import started", map[string]string{
		"filename": filename,
		"importId": importID,
	})

	wb, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.logger.Error().Err(err).Str("file", filename).Msg("open workbook failed")
		c.send(progress, "error", fmt.Sprintf("failed to open workbook: %v", err), nil)
		return
	}
	defer wb.Close()

	headers, rows, err := readFirstSheet(wb)
	if err != nil {
		c.send(progress, "error", err.Error(), nil)
		return
	}

	result := detect.Detect(headers)
	fileSeason := ""
	if code, ok := detect.SeasonFromFilename(filename); ok {
		fileSeason = code.String()
	}

	c.logger.Info().
		Str("file", filename).
		Str("type", string(result.Type)).
		Str("confidence", string(result.Confidence)).
		Str("season", fileSeason).
		Msg("file classified")
	c.send(progress, "detect", fmt.Sprintf("detected %s (%s confidence)", result.Type, result.Confidence), map[string]interface{}{
		"detection": result,
		"season":    fileSeason,
	})

	if result.Type == detect.TypeUnknown {
		c.send(progress, "error", "could not classify file; choose a type manually", map[string]interface{}{
			"detection": result,
		})
		return
	}

	logID, err := c.store.CreateImportLog(importID, filename, string(result.Type), string(result.Confidence), fileSeason)
	if err != nil {
		c.send(progress, "error", fmt.Sprintf("failed to record import: %v", err), nil)
		return
	}

	report := &model.ImportReport{ImportID: importID, Filename: filename}
	fileResult := c.importRows(opts, result, headers, rows, fileSeason, filename, importID, progress, ref)
	fileResult.Filename = filename
	fileResult.FileType = string(result.Type)
	fileResult.Confidence = string(result.Confidence)
	fileResult.Season = fileSeason
	fileResult.Duration = time.Since(startTime)

	report.Files = append(report.Files, fileResult)
	report.TotalRows = fileResult.TotalRows
	report.ImportedRows = fileResult.ImportedRows
	report.ErrorRows = fileResult.ErrorRows
	report.Duration = time.Since(startTime)

	status := fileResult.Status
	errorMessage := ""
	if len(fileResult.Errors) > 0 {
		errorMessage = fileResult.Errors[0]
	}
	if err := c.store.CompleteImportLog(logID, report.TotalRows, report.ImportedRows, report.ErrorRows, status, errorMessage); err != nil {
		c.logger.Error().Err(err).Msg("finalize import log failed")
	}

	if status == "error" {
		c.send(progress, "error", "import failed", report)
		return
	}

	c.logger.Info().
		Str("import_id", importID).
		Int("rows", report.ImportedRows).
		Dur("duration", report.Duration).
		Msg("import finished")
	c.send(progress, "done", fmt.Sprintf("imported %d of %d rows", report.ImportedRows, report.TotalRows), report)
}

// importRows coerces and stores the data rows for the detected kind.
func (c *Coordinator) importRows(opts Options, result detect.Result, headers []string, rows [][]string, fileSeason, filename, importID string, progress chan ProgressEvent, ref time.Time) model.FileResult {
	fr := model.FileResult{TotalRows: len(rows), Status: "imported"}

	clearExisting := func(table, code string) error {
		if !opts.ClearExisting || code == "" {
			return nil
		}
		return c.store.ClearSeason(table, code)
	}

	var storeErr error
	var coerceErrs []string

	switch result.Type {
	case detect.TypeLineList:
		records, errs := coerceProducts(headers, rows, fileSeason, filename, importID)
		coerceErrs = errs
		if err := clearExisting("products", fileSeason); err == nil {
			storeErr = c.store.BatchInsertProducts(records)
		} else {
			storeErr = err
		}
		fr.ImportedRows = len(records)

	case detect.TypeSales:
		records, errs := coerceSales(headers, rows, fileSeason, filename, importID)
		coerceErrs = errs
		if err := clearExisting("sales", fileSeason); err == nil {
			storeErr = c.store.BatchInsertSales(records)
		} else {
			storeErr = err
		}
		fr.ImportedRows = len(records)

	case detect.TypePricing:
		records, errs := coercePricing(headers, rows, fileSeason, filename, importID)
		coerceErrs = errs
		if err := clearExisting("pricing", fileSeason); err == nil {
			storeErr = c.store.BatchInsertPricing(records)
		} else {
			storeErr = err
		}
		fr.ImportedRows = len(records)

	case detect.TypeCosts:
		kindFor := func(code string) model.CostKind {
			if season.StatusOf(code, ref).Actual() {
				return model.CostActual
			}
			return model.CostProjected
		}
		records, errs := coerceCosts(headers, rows, fileSeason, filename, importID, kindFor)
		coerceErrs = errs
		if err := clearExisting("costs", fileSeason); err == nil {
			storeErr = c.store.BatchInsertCosts(records)
		} else {
			storeErr = err
		}
		fr.ImportedRows = len(records)
	}

	fr.Errors = coerceErrs
	fr.ErrorRows = len(coerceErrs)

	if storeErr != nil {
		fr.Status = "error"
		fr.Errors = append(fr.Errors, storeErr.Error())
		fr.ImportedRows = 0
		return fr
	}

	if fr.ImportedRows == 0 && fr.TotalRows > 0 {
		fr.Status = "skipped"
	}

	c.send(progress, "rows", fmt.Sprintf("stored %d rows", fr.ImportedRows), map[string]int{
		"imported": fr.ImportedRows,
		"errors":   fr.ErrorRows,
	})
	return fr
}

// readFirstSheet returns the header row and data rows of the workbook's
// first sheet.
func readFirstSheet(wb *excelize.File) (headers []string, rows [][]string, err error) {
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	all, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}
	return all[0], all[1:], nil
}
