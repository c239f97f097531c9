package handlers

import (
	"strings"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// InquiryStore is the inquiry slice of storage.
type InquiryStore interface {
	List(q domain.PageQuery) (domain.PageResult[models.Inquiry], error)
	UpdateStatus(id int64, action models.InquiryAction) error
	Insert(in models.InquiryInput) error
}

type InquiryHandler struct {
	Inquiries InquiryStore
}

// inquiryPageQuery builds the PageQuery from the request. Blank filters are
// dropped here so the repository never sees them.
func inquiryPageQuery(c *gin.Context) domain.PageQuery {
	q := domain.PageQuery{
		PageNumber:    queryInt(c, "pageNumber", 1),
		PageSize:      queryInt(c, "pageSize", 10),
		SortDirection: domain.SortDirection(strings.TrimSpace(c.DefaultQuery("sortDirection", "ASC"))),
	}
	q.SetFilter("gender", c.Query("gender"))
	q.SetFilter("country", c.Query("country"))
	q.SetFilter("status", c.Query("status"))
	return q
}

// GET /GetPaginatedInquiries?pageNumber&pageSize&gender&country&status&sortDirection
func (h InquiryHandler) GetPaginatedInquiries(c *gin.Context) {
	q := inquiryPageQuery(c)
	if err := q.Validate(); err != nil {
		RespondError(c, err)
		return
	}

	page, err := h.Inquiries.List(q)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(page.Items) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No inquiries found.")
		return
	}
	RespondData(c, gin.H{
		"data":       page.Items,
		"totalCount": page.TotalCount,
		"pageNumber": q.PageNumber,
		"pageSize":   q.PageSize,
	})
}

type updateInquiryRequest struct {
	InquiryID int64  `json:"inquiryID"`
	Action    string `json:"action"`
}

// POST /UpdateInquiryStatus
func (h InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	var req updateInquiryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Action) == "" {
		RespondStatus(c, domain.StatusBadRequest, "Invalid request. Action is required.")
		return
	}

	if err := h.Inquiries.UpdateStatus(req.InquiryID, models.InquiryAction(req.Action)); err != nil {
		RespondError(c, err)
		return
	}
	RespondStatus(c, domain.StatusSuccess, "Action performed successfully.")
}

// POST /InsertInquiry
func (h InquiryHandler) CreateInquiry(c *gin.Context) {
	var in models.InquiryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if strings.TrimSpace(in.FirstName) == "" {
		RespondStatus(c, domain.StatusBadRequest, "First name is required.")
		return
	}

	if err := h.Inquiries.Insert(in); err != nil {
		RespondError(c, err)
		return
	}
	RespondStatus(c, domain.StatusSuccess, "Inquiry created successfully.")
}
