package relay

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"intake-gateway/internal/intake/models"
)

const (
	trafficSheet = "Dashboard"
	duiSheet     = "DUI"
)

var trafficHeader = []any{
	"Source", "First Name", "Last Name", "Email", "Phone",
	"Court Name", "Citation Number", "Citation Date", "Violations",
	"Court Date", "Payment ID", "Amount Paid", "Paid At",
	"Request Date", "Case Status",
}

var duiHeader = []any{
	"Source", "First Name", "Last Name", "Email", "Phone",
	"Arrest Date", "Arrest Location", "BAC Level", "Refusal",
	"Prior DUIs", "License Status", "Court Name", "Notes",
	"Request Date",
}

// Workbook appends case records to a local .xlsx file, mirroring the case
// sheet's column order. It is the fallback sink when the sheet webhook is
// unconfigured or failing, so submissions are staff-recoverable.
type Workbook struct {
	mu   sync.Mutex
	path string
}

// NewWorkbook creates a workbook sink writing to path. The file is created
// on first append.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

func (w *Workbook) SubmitTraffic(_ context.Context, rec *models.CaseRecord) error {
	return w.append(trafficSheet, trafficHeader, []any{
		rec.Source, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
		rec.CourtName, rec.CitationNumber, rec.CitationDate, rec.Violations,
		rec.CourtDate, rec.PaymentID, rec.AmountPaid, rec.PaidAt,
		rec.RequestDate, rec.CaseStatus,
	})
}

func (w *Workbook) SubmitDUI(_ context.Context, rec *models.DUIRecord) error {
	return w.append(duiSheet, duiHeader, []any{
		rec.Source, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
		rec.ArrestDate, rec.ArrestLocation, rec.BACLevel, rec.Refusal,
		rec.PriorDUIs, rec.LicenseStatus, rec.CourtName, rec.Notes,
		rec.RequestDate,
	})
}

func (w *Workbook) append(sheet string, header, row []any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, created, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if !sheetExists(f, sheet) {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeRow(f, sheet, 1, header); err != nil {
			return err
		}
	}
	if created {
		// Drop excelize's default sheet so only case sheets remain.
		_ = f.DeleteSheet("Sheet1")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, len(rows)+1, row); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (w *Workbook) open() (f *excelize.File, created bool, err error) {
	if _, statErr := os.Stat(w.path); statErr == nil {
		f, err = excelize.OpenFile(w.path)
		if err != nil {
			return nil, false, fmt.Errorf("open workbook: %w", err)
		}
		return f, false, nil
	}
	return excelize.NewFile(), true, nil
}

func sheetExists(f *excelize.File, sheet string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	return nil
}
