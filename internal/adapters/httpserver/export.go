package httpserver

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleExportXLSX writes the catalog as a spreadsheet for the seller.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	if s.authorize == nil || !s.authorize(s.content.User(w, r)) {
		http.Error(w, "forbidden", 403)
		return
	}
	list, err := s.catalog.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("export catalog")
		http.Error(w, "catalog", 500)
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"ProductID", "Name", "Price", "Inventory", "Description", "Attributes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range list {
		attrs := make([]string, 0, len(p.Attributes))
		for name, values := range p.Attributes {
			attrs = append(attrs, fmt.Sprintf("%s: %s", name, strings.Join(values, "/")))
		}
		sort.Strings(attrs)
		values := []any{p.ProductID, p.Name, p.Price, p.Inventory, p.Description, strings.Join(attrs, "; ")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}
