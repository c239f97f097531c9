package services

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
)

type inquiryListerFunc func(q domain.PageQuery) (domain.PageResult[models.Inquiry], error)

func (f inquiryListerFunc) List(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
	return f(q)
}

func TestInquiriesPDFRendersRows(t *testing.T) {
	svc := ReportService{
		Inquiries: inquiryListerFunc(func(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
			return domain.PageResult[models.Inquiry]{
				Items: []models.Inquiry{
					{ID: 1, FirstName: "Ann", LastName: "Lee", Gender: "Female", Country: "India", Status: "Approved"},
					{ID: 2, FirstName: "Bob", Status: "Unapproved"},
				},
				TotalCount: 2,
			}, nil
		}),
		Now: func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) },
	}

	pdf, name, err := svc.InquiriesPDF(domain.PageQuery{PageNumber: 1, PageSize: 10, SortDirection: domain.SortAsc})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected PDF bytes")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header")
	}
	if name != "inquiries_20260830_p1.pdf" {
		t.Fatalf("filename: got %q", name)
	}
}

func TestInquiriesPDFEmptySetStillRenders(t *testing.T) {
	svc := ReportService{
		Inquiries: inquiryListerFunc(func(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
			return domain.PageResult[models.Inquiry]{Items: []models.Inquiry{}}, nil
		}),
	}

	pdf, name, err := svc.InquiriesPDF(domain.PageQuery{PageNumber: 1, PageSize: 10, SortDirection: domain.SortAsc})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 || name == "" {
		t.Fatalf("empty result set must still produce a document")
	}
}

func TestInquiriesPDFPropagatesListErrors(t *testing.T) {
	wantErr := errors.New("listing broke")
	svc := ReportService{
		Inquiries: inquiryListerFunc(func(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
			return domain.PageResult[models.Inquiry]{}, wantErr
		}),
	}

	_, _, err := svc.InquiriesPDF(domain.PageQuery{PageNumber: 1, PageSize: 10, SortDirection: domain.SortAsc})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected listing error to surface, got %v", err)
	}
}
