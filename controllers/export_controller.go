package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"platepix/backend/database"
	"platepix/backend/models"
)

const (
	exportSheet     = "Inquiries"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportColumns = []string{
	"id", "restaurant_name", "contact_name", "phone", "email", "city", "platform",
	"shoot_type", "budget_range", "heard_from", "message", "status", "closed", "created_at",
}

// ExportInquiries handles GET /api/inquiries/export. It takes the same
// query parameters as the list endpoint and returns an XLSX workbook.
func ExportInquiries(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, limit, err := parseListQuery(c)
		if err != nil {
			abortValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		docs, err := store.GetDocuments(ctx, models.KindInquiry, filter, limit)
		if err != nil {
			abortStorage(c, err)
			return
		}

		f, err := inquiryWorkbook(docs)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "export failed"})
			return
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="inquiries.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}

func inquiryWorkbook(docs []database.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(exportSheet, 1, 1, bold)
	}

	for i, d := range docs {
		row := make([]any, len(exportColumns))
		for j, col := range exportColumns {
			switch col {
			case "id":
				row[j] = cellText(d["_id"])
			case "closed":
				if models.Status(cellText(d["status"])).Closed() {
					row[j] = "yes"
				} else {
					row[j] = "no"
				}
			default:
				row[j] = cellText(d[col])
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(exportColumns))
	if err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetColWidth(exportSheet, "A", last, 18)
	if err := f.AutoFilter(exportSheet, "A1:"+last+"1", nil); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto filter: %w", err)
	}
	return f, nil
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
