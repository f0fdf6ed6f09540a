// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// ExportHandler streams spreadsheet reports of the summary aggregate
type ExportHandler struct {
	service ports.InventoryService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.InventoryService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportSummaryExcel handles GET /api/v1/export/summary.xlsx
func (h *ExportHandler) ExportSummaryExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.collectSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to collect summary for export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("summary_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "summary export completed",
		slog.Int("total_rows", len(rows)),
		slog.String("filename", filename))
}

// collectSummary pages through the full aggregate
func (h *ExportHandler) collectSummary(ctx context.Context) ([]*domain.SummaryRow, error) {
	const pageSize = 1000

	var rows []*domain.SummaryRow
	for page := 1; ; page++ {
		result, err := h.service.Summary(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, result.Items...)
		if page >= result.TotalPages || len(result.Items) == 0 {
			break
		}
	}

	return rows, nil
}

// generateExcelFile creates an Excel file in memory from the summary rows
func (h *ExportHandler) generateExcelFile(rows []*domain.SummaryRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Summary")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{"Commodity ID", "Commodity", "Total Quantity", "Shipping Quantity", "Receiving Quantity"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		for _, value := range []string{
			strconv.FormatInt(row.CommodityID, 10),
			row.CommodityName,
			strconv.FormatInt(row.TotalQuantity, 10),
			strconv.FormatInt(row.ShippingQuantity, 10),
			strconv.FormatInt(row.ReceivingQuantity, 10),
		} {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, message)
}
