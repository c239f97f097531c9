package repositories

import (
	"database/sql"
	"strings"
	"time"

	intdb "newsportal/internal/db"
	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
	"newsportal/internal/utils"
)

// NewsRepository wraps all article, tag and lookup queries.
type NewsRepository struct {
	DB *sql.DB
}

const newsColumns = `news_id, title, COALESCE(big_image,''), COALESCE(small_image,''),
		short_desc, news_content, posting_date, COALESCE(copywrite_text,''),
		author_id, COALESCE(tag_names,''), created_date, COALESCE(created_by,''), is_active`

func scanNews(rows *sql.Rows) (models.News, error) {
	var n models.News
	err := rows.Scan(&n.NewsID, &n.Title, &n.BigImage, &n.SmallImage,
		&n.ShortDesc, &n.NewsContent, &n.PostingDate, &n.CopywriteText,
		&n.AuthorID, &n.TagNames, &n.CreatedDate, &n.CreatedBy, &n.IsActive)
	return n, err
}

// ActiveNewsPage returns one page of active articles plus the unpaged total.
func (r NewsRepository) ActiveNewsPage(pageIndex, pageSize int) ([]models.News, int, error) {
	rows, err := r.DB.Query(`
		SELECT `+newsColumns+`
		FROM news_content
		WHERE is_active = 1
		ORDER BY posting_date DESC, news_id DESC
		LIMIT ? OFFSET ?`, pageSize, (pageIndex-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM news_content WHERE is_active = 1`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// TopNews returns the slider window ordered by posting date.
func (r NewsRepository) TopNews(take, skip int) ([]models.TopNews, error) {
	rows, err := r.DB.Query(`
		SELECT news_id, title, COALESCE(big_image,''), short_desc, news_content,
			posting_date, COALESCE(copywrite_text,''), COALESCE(tag_names,'')
		FROM news_content
		WHERE is_active = 1
		ORDER BY posting_date DESC, news_id DESC
		LIMIT ? OFFSET ?`, take, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TopNews{}
	for rows.Next() {
		var n models.TopNews
		if err := rows.Scan(&n.NewsID, &n.Title, &n.BigImage, &n.ShortDesc,
			&n.NewsContent, &n.PostingDate, &n.CopywriteText, &n.TagNames); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r NewsRepository) Tags() ([]models.Tag, error) {
	rows, err := r.DB.Query(`SELECT tag_id, tag_name FROM tags ORDER BY tag_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.TagID, &t.TagName); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// NewsByTag lists active articles carrying the tag in their tag list.
func (r NewsRepository) NewsByTag(tagName string) ([]models.News, error) {
	rows, err := r.DB.Query(`
		SELECT `+newsColumns+`
		FROM news_content
		WHERE is_active = 1 AND FIND_IN_SET(?, tag_names) > 0
		ORDER BY posting_date DESC`, strings.TrimSpace(tagName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r NewsRepository) TagSuggestions(prefix string) ([]models.TagSuggestion, error) {
	rows, err := r.DB.Query(`
		SELECT tag_name FROM tags
		WHERE tag_name LIKE CONCAT(?, '%')
		ORDER BY tag_name ASC
		LIMIT 10`, strings.TrimSpace(prefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TagSuggestion{}
	for rows.Next() {
		var t models.TagSuggestion
		if err := rows.Scan(&t.TagName); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// AddNews inserts the article and registers any tags not seen before.
// Returns the new article id. Images are attached separately once saved.
func (r NewsRepository) AddNews(in models.NewsInput) (int64, error) {
	posting, err := parsePostingDate(in.PostingDate)
	if err != nil {
		return 0, err
	}

	res, err := r.DB.Exec(`
		INSERT INTO news_content
			(title, short_desc, news_content, posting_date, copywrite_text,
			 author_id, tag_names, created_date, created_by, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), ?, 1)`,
		in.Title, in.ShortDesc, in.NewsContent, posting, in.CopywriteText,
		in.AuthorID, in.TagNames, in.CreatedBy)
	if err != nil {
		return 0, err
	}
	newsID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, tag := range utils.SplitTagList(in.TagNames) {
		if _, err := r.DB.Exec(`INSERT IGNORE INTO tags (tag_name) VALUES (?)`, tag); err != nil {
			return 0, err
		}
	}
	return newsID, nil
}

// UpdateNewsImages attaches the stored image paths to an article. Empty
// paths are written as NULL so a missing upload does not blank a prior one.
func (r NewsRepository) UpdateNewsImages(newsID int64, bigPath, smallPath string) error {
	_, err := r.DB.Exec(`
		UPDATE news_content
		SET big_image = COALESCE(?, big_image), small_image = COALESCE(?, small_image)
		WHERE news_id = ?`,
		intdb.NullIfEmpty(bigPath), intdb.NullIfEmpty(smallPath), newsID)
	return err
}

func (r NewsRepository) CountryList() ([]models.Country, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM countries ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r NewsRepository) GenderOptions() ([]models.CodeLookup, error) {
	rows, err := r.DB.Query(`
		SELECT code_id, code_name FROM code_lookups
		WHERE code_type = 'gender'
		ORDER BY code_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CodeLookup{}
	for rows.Next() {
		var c models.CodeLookup
		if err := rows.Scan(&c.CodeID, &c.CodeName); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func parsePostingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ValidationError{
		Field: "postingDate",
		Msg:   "must be RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'",
	}
}
