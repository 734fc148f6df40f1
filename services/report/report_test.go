package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/services/reservation"
	"catering/utils"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T, n int) *DefaultReportService {
	t.Helper()
	svc := reservation.NewReservationService(reservationRepo.NewMemoryReservationRepo(), time.UTC)
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), models.ReservationInput{
			Name:            fmt.Sprintf("Guest %d", i),
			MobileNumber:    "0917",
			Location:        "Hall",
			Pax:             10 + i,
			ReservationDate: fmt.Sprintf("2024-08-%02d", i%28+1),
			TotalPrice:      1234.5,
			Package:         "Silver",
		})
		require.NoError(t, err)
	}
	return &DefaultReportService{Reservations: svc}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Reservations_2024-08-01_2024-08-31.pdf", FileName("2024-08-01", "2024-08-31", FormatPDF))
	assert.Equal(t, "Reservations_2024-08-01_onwards.csv", FileName("2024-08-01", "", FormatCSV))
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)
	f, ok = ParseFormat("XLSX")
	assert.True(t, ok)
	assert.Equal(t, FormatXLSX, f)
	_, ok = ParseFormat("docx")
	assert.False(t, ok)
}

func TestExportPDFSpansPages(t *testing.T) {
	svc := seededService(t, 60)
	rep, err := svc.Export(context.Background(), "2024-08-01", "2024-08-31", FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(rep.Data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", rep.ContentType)
	assert.Equal(t, 60, rep.Rows)
	assert.GreaterOrEqual(t, bytes.Count(rep.Data, []byte("/Type /Page\n")), 2)
}

func TestExportCSV(t *testing.T) {
	svc := seededService(t, 3)
	rep, err := svc.Export(context.Background(), "2024-08-01", "", FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(rep.Data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Name,Location,Mobile,Date,Price,Pax,Package,Type", lines[0])
	assert.Contains(t, lines[1], "1234.50")
	assert.Equal(t, "Reservations_2024-08-01_onwards.csv", rep.FileName)
}

func TestExportXLSX(t *testing.T) {
	svc := seededService(t, 2)
	rep, err := svc.Export(context.Background(), "2024-08-01", "2024-08-31", FormatXLSX)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(rep.Data))
	require.NoError(t, err)
	assert.Equal(t, "ID", book.GetCellValue("Sheet1", "A1"))
	assert.Equal(t, "Type", book.GetCellValue("Sheet1", "I1"))
	assert.Len(t, book.GetRows("Sheet1"), 3)
}

func TestExportEmptyRangeIsNotFound(t *testing.T) {
	svc := seededService(t, 1)
	_, err := svc.Export(context.Background(), "2030-01-01", "2030-01-31", FormatPDF)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Export(context.Background(), "", "", FormatPDF)
	assert.ErrorIs(t, err, utils.ErrValidation)
}
