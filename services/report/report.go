package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"catering/models"
	"catering/services/reservation"
	"catering/utils"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/go-pdf/fpdf"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Format selects the rendered document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var contentTypes = map[Format]string{
	FormatPDF:  "application/pdf",
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ParseFormat maps a query value to a Format; empty means PDF.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatPDF, true
	}
	_, ok := contentTypes[f]
	return f, ok
}

var columns = []string{"ID", "Name", "Location", "Mobile", "Date", "Price", "Pax", "Package", "Type"}

// row is one reservation as printed in every format.
type row struct {
	ID       string `csv:"ID"`
	Name     string `csv:"Name"`
	Location string `csv:"Location"`
	Mobile   string `csv:"Mobile"`
	Date     string `csv:"Date"`
	Price    string `csv:"Price"`
	Pax      string `csv:"Pax"`
	Package  string `csv:"Package"`
	Type     string `csv:"Type"`
}

func (r row) cells() []string {
	return []string{r.ID, r.Name, r.Location, r.Mobile, r.Date, r.Price, r.Pax, r.Package, r.Type}
}

func toRows(reservations []models.Reservation) []row {
	rows := make([]row, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, row{
			ID:       strconv.FormatInt(r.ID, 10),
			Name:     r.Name,
			Location: r.Location,
			Mobile:   r.MobileNumber,
			Date:     r.ReservationDate,
			Price:    decimal.NewFromFloat(r.TotalPrice).StringFixed(2),
			Pax:      strconv.Itoa(r.Pax),
			Package:  r.Package,
			Type:     r.Type,
		})
	}
	return rows
}

// Report is a rendered export ready to download.
type Report struct {
	FileName    string
	ContentType string
	Data        []byte
	Rows        int
}

// FileName is Reservations_<from>_<to>.<ext>, with "onwards" for an open end.
func FileName(from, to string, format Format) string {
	if to == "" {
		to = "onwards"
	}
	return fmt.Sprintf("Reservations_%s_%s.%s", from, to, format)
}

type ReportService interface {
	Export(ctx context.Context, from, to string, format Format) (*Report, error)
}

// DefaultReportService renders reservations loaded through the query service.
type DefaultReportService struct {
	Reservations reservation.ReservationService
}

func (s *DefaultReportService) Export(ctx context.Context, from, to string, format Format) (*Report, error) {
	const op = "exportReservations"
	if from == "" {
		return nil, utils.ValidationError(op, "start date is required")
	}
	if _, ok := contentTypes[format]; !ok {
		return nil, utils.ValidationError(op, "format must be one of pdf, csv, xlsx")
	}

	page, err := s.Reservations.List(ctx, 1, reservation.MaxPageSize, models.DateRange{From: from, To: to})
	if err != nil {
		return nil, err
	}
	if len(page.Reservations) == 0 {
		return nil, utils.NotFoundError(op, "no reservations in the selected range")
	}

	rows := toRows(page.Reservations)
	var data []byte
	switch format {
	case FormatCSV:
		data, err = gocsv.MarshalBytes(&rows)
	case FormatXLSX:
		data, err = renderXLSX(rows)
	default:
		data, err = renderPDF(title(from, to), rows)
	}
	if err != nil {
		return nil, utils.StoreError(op, err)
	}

	utils.GetLogger().Info("Reservations exported",
		zap.String("format", string(format)),
		zap.Int("rows", len(rows)))
	return &Report{
		FileName:    FileName(from, to, format),
		ContentType: contentTypes[format],
		Data:        data,
		Rows:        len(rows),
	}, nil
}

func title(from, to string) string {
	if to == "" {
		to = "onwards"
	}
	return fmt.Sprintf("Reservations (%s - %s)", from, to)
}

// renderPDF prints a landscape A4 table, repeating the header on every page.
func renderPDF(heading string, rows []row) ([]byte, error) {
	widths := []float64{15, 45, 45, 32, 26, 26, 15, 43, 30}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(heading), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range columns {
			pdf.CellFormat(widths[i], 8, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		for i, cell := range r.cells() {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(rows []row) ([]byte, error) {
	const sheet = "Sheet1"
	xlsx := excelize.NewFile()
	for i, col := range columns {
		xlsx.SetCellValue(sheet, fmt.Sprintf("%s1", excelize.ToAlphaString(i)), col)
	}
	for r, rec := range rows {
		for i, cell := range rec.cells() {
			xlsx.SetCellValue(sheet, fmt.Sprintf("%s%d", excelize.ToAlphaString(i), r+2), cell)
		}
	}
	xlsx.SetColWidth(sheet, "B", "C", 28)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
