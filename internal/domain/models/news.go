package models

import "time"

// News is a published article row.
type News struct {
	NewsID        int64     `json:"newsId"`
	Title         string    `json:"title"`
	BigImage      string    `json:"bigImage"`
	SmallImage    string    `json:"smallImage"`
	ShortDesc     string    `json:"shortDesc"`
	NewsContent   string    `json:"newsContent"`
	PostingDate   time.Time `json:"postingDate"`
	CopywriteText string    `json:"copywriteText"`
	AuthorID      int64     `json:"authorId"`
	TagNames      string    `json:"tagNames"`
	CreatedDate   time.Time `json:"createdDate"`
	CreatedBy     string    `json:"createdBy"`
	IsActive      bool      `json:"isActive"`
}

// TopNews is the slimmer shape the landing slider consumes.
type TopNews struct {
	NewsID        int64     `json:"newsId"`
	Title         string    `json:"title"`
	BigImage      string    `json:"bigImage"`
	ShortDesc     string    `json:"shortDesc"`
	NewsContent   string    `json:"newsContent"`
	PostingDate   time.Time `json:"postingDate"`
	CopywriteText string    `json:"copywriteText"`
	TagNames      string    `json:"tagNames"`
}

type Tag struct {
	TagID   int64  `json:"tagId"`
	TagName string `json:"tagName"`
}

type TagSuggestion struct {
	TagName string `json:"tagName"`
}

// NewsInput is the add-news form payload. Image files are handled by the
// storage layer; only their relative paths ever reach the repository.
type NewsInput struct {
	Title         string `form:"title"`
	ShortDesc     string `form:"shortDesc"`
	NewsContent   string `form:"newsContent"`
	PostingDate   string `form:"postingDate"`
	CopywriteText string `form:"copywriteText"`
	TagNames      string `form:"tagNames"`
	AuthorID      int64  `form:"authorId"`
	CreatedBy     string `form:"createdBy"`
}

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CodeLookup struct {
	CodeID   int64  `json:"codeId"`
	CodeName string `json:"codeName"`
}
