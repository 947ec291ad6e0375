package service

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

const spreadsheetSheet = "Clientes"

var spreadsheetHeader = []any{"Nome", "Login", "Senha", "Servidor", "Telefone", "Vencimento", "Status", "Dias Restantes"}

type spreadsheetWriter struct{}

// NewSpreadsheetWriter returns the xlsx [SpreadsheetWriter].
func NewSpreadsheetWriter() SpreadsheetWriter {
	return spreadsheetWriter{}
}

// SpreadsheetFileName is the suggested name of an exported spreadsheet.
func SpreadsheetFileName(clock utils.Clock) string {
	return fmt.Sprintf("clientes_%s.xlsx", utils.Today(clock))
}

// WriteSpreadsheet writes one row per client under a header row.
func (spreadsheetWriter) WriteSpreadsheet(w io.Writer, clients []models.ClientWithStatus) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: %w", ErrSpreadsheetExport, closeErr)
		}
	}()

	if err = f.SetSheetName("Sheet1", spreadsheetSheet); err != nil {
		return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
	}
	if err = f.SetSheetRow(spreadsheetSheet, "A1", &spreadsheetHeader); err != nil {
		return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
	}

	for i, c := range clients {
		var remaining any = ""
		if c.DiasRestantes != nil {
			remaining = *c.DiasRestantes
		}
		row := []any{c.Nome, c.Login, c.Senha, c.Servidor, c.Telefone, c.Vencimento.BR(), string(c.Status), remaining}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
		}
		if err = f.SetSheetRow(spreadsheetSheet, cell, &row); err != nil {
			return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
		}
	}

	if err = f.SetColWidth(spreadsheetSheet, "A", "H", 20); err != nil {
		return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
	}
	if err = f.Write(w); err != nil {
		return fmt.Errorf("%w: %w", ErrSpreadsheetExport, err)
	}
	return nil
}
