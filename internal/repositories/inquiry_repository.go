package repositories

import (
	"database/sql"
	"strings"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
)

// InquiryRepository handles the visitor-inquiry listing and moderation.
type InquiryRepository struct {
	DB *sql.DB
}

// inquiryFilterColumns maps allowed filter keys to columns. Anything not in
// this map is ignored rather than interpolated into SQL.
var inquiryFilterColumns = map[string]string{
	"gender":  "gender",
	"country": "country",
	"status":  "status",
}

// List returns one page of inquiries. Only supplied filters reach the WHERE
// clause, and the total is counted over the same predicate independent of
// the page window.
func (r InquiryRepository) List(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
	var out domain.PageResult[models.Inquiry]
	if err := q.Validate(); err != nil {
		return out, err
	}

	where := []string{}
	args := []any{}
	for _, key := range []string{"gender", "country", "status"} {
		if v, ok := q.Filter(key); ok {
			where = append(where, inquiryFilterColumns[key]+" = ?")
			args = append(args, v)
		}
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM inquiries`+clause, args...).Scan(&out.TotalCount); err != nil {
		return out, err
	}

	order := " ORDER BY id ASC"
	if q.SortDirection == domain.SortDesc {
		order = " ORDER BY id DESC"
	}

	pageArgs := append(append([]any{}, args...), q.PageSize, q.Offset())
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(first_name,''), COALESCE(last_name,''),
			COALESCE(gender,''), COALESCE(country,''), COALESCE(status,'')
		FROM inquiries`+clause+order+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = []models.Inquiry{}
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(&inq.ID, &inq.FirstName, &inq.LastName,
			&inq.Gender, &inq.Country, &inq.Status); err != nil {
			return out, err
		}
		out.Items = append(out.Items, inq)
	}
	return out, rows.Err()
}

// UpdateStatus applies one moderation action. The action set is closed;
// anything else fails before the database is touched.
func (r InquiryRepository) UpdateStatus(id int64, action models.InquiryAction) error {
	if id <= 0 {
		return domain.ValidationError{Field: "inquiryID", Msg: "must be greater than zero"}
	}
	if !action.Valid() {
		return domain.InvalidActionError{Action: string(action)}
	}

	var res sql.Result
	var err error
	switch action {
	case models.InquiryApprove:
		res, err = r.DB.Exec(`UPDATE inquiries SET status = 'Approved' WHERE id = ?`, id)
	case models.InquiryUnapprove:
		res, err = r.DB.Exec(`UPDATE inquiries SET status = 'Unapproved' WHERE id = ?`, id)
	case models.InquiryDelete:
		res, err = r.DB.Exec(`DELETE FROM inquiries WHERE id = ?`, id)
	}
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "inquiry"}
	}
	return nil
}

// Insert stores a new visitor inquiry. New rows start Unapproved.
func (r InquiryRepository) Insert(in models.InquiryInput) error {
	_, err := r.DB.Exec(`
		INSERT INTO inquiries
			(first_name, last_name, email, phone_number, company, state,
			 gender, country, city, comments, status, created_by, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'Unapproved', ?, UTC_TIMESTAMP())`,
		in.FirstName, in.LastName, in.Email, in.PhoneNumber, in.Company,
		in.State, in.Gender, in.Country, in.City, in.Comments, in.FirstName)
	return err
}
