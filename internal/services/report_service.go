package services

import (
	"bytes"
	"fmt"
	"time"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
	"newsportal/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InquiryLister is the listing slice the report needs.
type InquiryLister interface {
	List(q domain.PageQuery) (domain.PageResult[models.Inquiry], error)
}

// ReportService renders back-office exports.
type ReportService struct {
	Inquiries InquiryLister
	RequestID string
	Now       func() time.Time
}

// InquiriesPDF renders the filtered inquiry listing as an A4 PDF. The same
// PageQuery contract as the JSON listing applies.
func (s ReportService) InquiriesPDF(q domain.PageQuery) ([]byte, string, error) {
	page, err := s.Inquiries.List(q)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Inquiries Report", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Inquiries Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s  |  page %d (size %d)  |  %d matching in total",
		now.Format("2006-01-02 15:04"), q.PageNumber, q.PageSize, page.TotalCount))
	pdf.Ln(10)

	widths := []float64{15, 40, 40, 25, 40, 30}
	headers := []string{"ID", "First Name", "Last Name", "Gender", "Country", "Status"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(page.Items) == 0 {
		pdf.CellFormat(190, 7, "No inquiries match the given filters.", "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	for _, inq := range page.Items {
		cols := []string{
			fmt.Sprintf("%d", inq.ID),
			safeCell(inq.FirstName), safeCell(inq.LastName),
			safeCell(inq.Gender), safeCell(inq.Country), safeCell(inq.Status),
		}
		for i, c := range cols {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "report", "inquiries_pdf", fmt.Sprintf("rows=%d", len(page.Items)))
	filename := fmt.Sprintf("inquiries_%s_p%d.pdf", now.Format("20060102"), q.PageNumber)
	return buf.Bytes(), filename, nil
}

func safeCell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
