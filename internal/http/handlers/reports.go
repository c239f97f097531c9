package handlers

import (
	"net/http"

	"newsportal/internal/http/middleware"
	"newsportal/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports services.ReportService
}

// GET /reports/inquiries.pdf — same query contract as /GetPaginatedInquiries.
func (h ReportHandler) GetInquiriesPDF(c *gin.Context) {
	q := inquiryPageQuery(c)
	if err := q.Validate(); err != nil {
		RespondError(c, err)
		return
	}

	svc := h.Reports
	svc.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := svc.InquiriesPDF(q)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
