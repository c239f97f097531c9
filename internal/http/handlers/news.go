package handlers

import (
	"mime/multipart"
	"strings"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// NewsStore is the article/tag/lookup slice of storage the news endpoints use.
type NewsStore interface {
	ActiveNewsPage(pageIndex, pageSize int) ([]models.News, int, error)
	TopNews(take, skip int) ([]models.TopNews, error)
	Tags() ([]models.Tag, error)
	NewsByTag(tagName string) ([]models.News, error)
	TagSuggestions(prefix string) ([]models.TagSuggestion, error)
	AddNews(in models.NewsInput) (int64, error)
	UpdateNewsImages(newsID int64, bigPath, smallPath string) error
	CountryList() ([]models.Country, error)
	GenderOptions() ([]models.CodeLookup, error)
}

// NewsImageSaver stores an uploaded article image and returns its relative path.
type NewsImageSaver interface {
	SaveNewsImage(newsID int64, fh *multipart.FileHeader) (string, error)
}

type NewsHandler struct {
	News  NewsStore
	Files NewsImageSaver
}

// GET /GetActiveNews?pageIndex&pageSize
func (h NewsHandler) GetActiveNews(c *gin.Context) {
	pageIndex := queryInt(c, "pageIndex", 1)
	pageSize := queryInt(c, "pageSize", 10)
	if pageIndex < 1 || pageSize < 1 {
		RespondStatus(c, domain.StatusBadRequest, "Page index and page size must be greater than zero.")
		return
	}

	items, total, err := h.News.ActiveNewsPage(pageIndex, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(items) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No active news available.")
		return
	}
	RespondData(c, domain.PageResult[models.News]{Items: items, TotalCount: total})
}

// GET /GetTopNews?take&skip
func (h NewsHandler) GetTopNews(c *gin.Context) {
	take := queryInt(c, "take", 5)
	skip := queryInt(c, "skip", 0)
	if take < 1 || skip < 0 {
		RespondStatus(c, domain.StatusBadRequest, "Take must be positive and skip non-negative.")
		return
	}

	items, err := h.News.TopNews(take, skip)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(items) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No top news available.")
		return
	}
	RespondData(c, items)
}

// GET /Categories
func (h NewsHandler) GetTags(c *gin.Context) {
	tags, err := h.News.Tags()
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(tags) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No tags available.")
		return
	}
	RespondData(c, tags)
}

// GET /News-by-Categories?tagName
func (h NewsHandler) GetNewsByTag(c *gin.Context) {
	tagName := strings.TrimSpace(c.Query("tagName"))
	if tagName == "" {
		RespondStatus(c, domain.StatusBadRequest, "Tag name is required.")
		return
	}

	news, err := h.News.NewsByTag(tagName)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(news) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No news found for the given tag.")
		return
	}
	RespondData(c, news)
}

// GET /suggestions?query
func (h NewsHandler) GetTagSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		RespondStatus(c, domain.StatusBadRequest, "Query must be at least 1 character long.")
		return
	}

	tags, err := h.News.TagSuggestions(query)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(tags) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No tag suggestions found.")
		return
	}
	RespondData(c, tags)
}

// GET /GetCountryList
func (h NewsHandler) GetCountryList(c *gin.Context) {
	countries, err := h.News.CountryList()
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(countries) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No countries found.")
		return
	}
	RespondData(c, countries)
}

// GET /GetGenderOptions
func (h NewsHandler) GetGenderOptions(c *gin.Context) {
	genders, err := h.News.GenderOptions()
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(genders) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No gender options found.")
		return
	}
	RespondData(c, genders)
}

// POST /add-news (multipart: form fields + optional bigImage/smallImage files)
func (h NewsHandler) AddNews(c *gin.Context) {
	var in models.NewsInput
	if err := c.ShouldBind(&in); err != nil {
		RespondStatus(c, domain.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		RespondStatus(c, domain.StatusBadRequest, "Title is required")
		return
	}
	if strings.TrimSpace(in.ShortDesc) == "" {
		RespondStatus(c, domain.StatusBadRequest, "Short Description is required")
		return
	}

	newsID, err := h.News.AddNews(in)
	if err != nil {
		RespondError(c, err)
		return
	}

	// Images are optional; the article row already exists when they land.
	bigPath, err := h.saveImage(c, "bigImage", newsID)
	if err != nil {
		RespondError(c, err)
		return
	}
	smallPath, err := h.saveImage(c, "smallImage", newsID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if bigPath != "" || smallPath != "" {
		if err := h.News.UpdateNewsImages(newsID, bigPath, smallPath); err != nil {
			RespondError(c, err)
			return
		}
	}

	RespondData(c, gin.H{
		"newsId":         newsID,
		"message":        "News created successfully",
		"bigImagePath":   bigPath,
		"smallImagePath": smallPath,
	})
}

func (h NewsHandler) saveImage(c *gin.Context, field string, newsID int64) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// missing file is fine
		return "", nil
	}
	return h.Files.SaveNewsImage(newsID, fh)
}
