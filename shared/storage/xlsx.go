package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Static reference table of per-state practice-authority detail. This is
// richer than the generated Region entities on purpose: it stands in for a
// hand-maintained spreadsheet a compliance team would own, independent of
// the synthetic dataset.

const stateRequirementsSheet = "State Requirements"

var stateRequirementsHeader = []interface{}{
	"state_code",
	"state_name",
	"np_practice_authority",
	"pa_supervision_required",
	"chart_review_frequency_days",
	"physician_patient_ratio_limit",
	"telehealth_supervision_allowed",
	"prescriptive_authority",
	"last_updated",
}

var stateRequirementsRows = [][]interface{}{
	{"CA", "California", "Full (after transition)", "No", 30, "6:1", "Yes", "Full", "2024-01-15"},
	{"TX", "Texas", "Reduced", "Yes", 14, "7:1", "Yes", "Limited", "2024-02-01"},
	{"FL", "Florida", "Restricted", "Yes", 7, "4:1", "Limited", "Limited", "2023-12-01"},
	{"NY", "New York", "Reduced", "Yes", 30, "6:1", "Yes", "Full", "2024-01-20"},
	{"PA", "Pennsylvania", "Reduced", "Yes", 30, "4:1", "Yes", "Limited", "2023-11-15"},
	{"IL", "Illinois", "Full", "No", 45, "No limit", "Yes", "Full", "2024-03-01"},
	{"OH", "Ohio", "Reduced", "Yes", 14, "5:1", "Yes", "Limited", "2024-01-10"},
	{"GA", "Georgia", "Restricted", "Yes", 7, "4:1", "Limited", "Limited", "2023-10-01"},
	{"NC", "North Carolina", "Reduced", "Yes", 14, "6:1", "Yes", "Limited", "2024-02-15"},
	{"MI", "Michigan", "Reduced", "Yes", 30, "5:1", "Yes", "Limited", "2024-01-05"},
}

// StateRequirementsXLSX builds the one-sheet reference workbook.
func StateRequirementsXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stateRequirementsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(stateRequirementsSheet, "A1", &stateRequirementsHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range stateRequirementsRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(stateRequirementsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
