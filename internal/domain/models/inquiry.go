package models

// Inquiry is the shape the back-office listing shows.
type Inquiry struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
	Status    string `json:"status"`
}

// InquiryInput is the public contact-form payload.
type InquiryInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Company     string `json:"company"`
	State       string `json:"state"`
	Gender      string `json:"gender"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Comments    string `json:"comments"`
}

// InquiryAction is the closed set of moderation actions.
type InquiryAction string

const (
	InquiryApprove   InquiryAction = "approve"
	InquiryUnapprove InquiryAction = "unapprove"
	InquiryDelete    InquiryAction = "delete"
)

func (a InquiryAction) Valid() bool {
	switch a {
	case InquiryApprove, InquiryUnapprove, InquiryDelete:
		return true
	}
	return false
}
