package admin

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

const exportSheet = "Stores"

var exportHeader = []any{"ID", "Name", "Email", "Address", "Average rating", "Ratings"}

// StoreLister is the admin store listing the export is built from.
type StoreLister interface {
	Execute(ctx context.Context, search string) ([]dto.StoreListDTO, error)
}

type ExportStores struct {
	stores StoreLister
}

func NewExportStores(stores StoreLister) *ExportStores {
	return &ExportStores{stores: stores}
}

// Execute renders the admin store listing as an XLSX workbook.
func (uc *ExportStores) Execute(ctx context.Context, search string) ([]byte, error) {
	rows, err := uc.stores.Execute(ctx, search)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, s := range rows {
		var email, average any = "", ""
		if s.Email != nil {
			email = *s.Email
		}
		if s.AverageRating != nil {
			average = *s.AverageRating
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{s.ID, s.Name, email, s.Address, average, s.RatingsCount}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
