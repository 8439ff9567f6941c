package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/voalerta/flight-service/internal/database"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportLimit caps a spreadsheet at roughly two years of half-hourly checks.
const exportLimit = 40000

// ExportTripHistory downloads a trip's price history as a spreadsheet
// @Summary Export price history
// @Description Renders the trip's full price history as an XLSX download
// @Tags trips
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Trip ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights/{id}/history/export [get]
func ExportTripHistory(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	history, err := database.PriceHistory(c.Request.Context(), trip.ID, exportLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Price History"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Checked At", "Price", "Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, obs := range history {
		values := []any{
			obs.CheckedAt.Format("2006-01-02 15:04:05"),
			obs.Price,
			obs.Currency,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render spreadsheet"})
		return
	}

	filename := fmt.Sprintf("price-history-%s-%s.xlsx", trip.Origin, trip.Destination)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
