package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelopeBody is the decoded response envelope as tests see it.
type envelopeBody struct {
	Code    int             `json:"code"`
	Label   string          `json:"label"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func performJSON(t *testing.T, method, target string, body any, register func(*gin.Engine)) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := gin.New()
	register(r)

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelopeBody
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

// stubNewsStore fails loudly on any method a test did not wire.
type stubNewsStore struct {
	activeNewsPage func(pageIndex, pageSize int) ([]models.News, int, error)
	topNews        func(take, skip int) ([]models.TopNews, error)
	tags           func() ([]models.Tag, error)
	newsByTag      func(tagName string) ([]models.News, error)
	suggestions    func(prefix string) ([]models.TagSuggestion, error)
	addNews        func(in models.NewsInput) (int64, error)
	updateImages   func(newsID int64, bigPath, smallPath string) error
	countries      func() ([]models.Country, error)
	genders        func() ([]models.CodeLookup, error)
}

func (s stubNewsStore) ActiveNewsPage(pageIndex, pageSize int) ([]models.News, int, error) {
	if s.activeNewsPage == nil {
		panic("unexpected ActiveNewsPage call")
	}
	return s.activeNewsPage(pageIndex, pageSize)
}

func (s stubNewsStore) TopNews(take, skip int) ([]models.TopNews, error) {
	if s.topNews == nil {
		panic("unexpected TopNews call")
	}
	return s.topNews(take, skip)
}

func (s stubNewsStore) Tags() ([]models.Tag, error) {
	if s.tags == nil {
		panic("unexpected Tags call")
	}
	return s.tags()
}

func (s stubNewsStore) NewsByTag(tagName string) ([]models.News, error) {
	if s.newsByTag == nil {
		panic("unexpected NewsByTag call")
	}
	return s.newsByTag(tagName)
}

func (s stubNewsStore) TagSuggestions(prefix string) ([]models.TagSuggestion, error) {
	if s.suggestions == nil {
		panic("unexpected TagSuggestions call")
	}
	return s.suggestions(prefix)
}

func (s stubNewsStore) AddNews(in models.NewsInput) (int64, error) {
	if s.addNews == nil {
		panic("unexpected AddNews call")
	}
	return s.addNews(in)
}

func (s stubNewsStore) UpdateNewsImages(newsID int64, bigPath, smallPath string) error {
	if s.updateImages == nil {
		panic("unexpected UpdateNewsImages call")
	}
	return s.updateImages(newsID, bigPath, smallPath)
}

func (s stubNewsStore) CountryList() ([]models.Country, error) {
	if s.countries == nil {
		panic("unexpected CountryList call")
	}
	return s.countries()
}

func (s stubNewsStore) GenderOptions() ([]models.CodeLookup, error) {
	if s.genders == nil {
		panic("unexpected GenderOptions call")
	}
	return s.genders()
}

type stubInquiryStore struct {
	list         func(q domain.PageQuery) (domain.PageResult[models.Inquiry], error)
	updateStatus func(id int64, action models.InquiryAction) error
	insert       func(in models.InquiryInput) error
}

func (s stubInquiryStore) List(q domain.PageQuery) (domain.PageResult[models.Inquiry], error) {
	if s.list == nil {
		panic("unexpected List call")
	}
	return s.list(q)
}

func (s stubInquiryStore) UpdateStatus(id int64, action models.InquiryAction) error {
	if s.updateStatus == nil {
		panic("unexpected UpdateStatus call")
	}
	return s.updateStatus(id, action)
}

func (s stubInquiryStore) Insert(in models.InquiryInput) error {
	if s.insert == nil {
		panic("unexpected Insert call")
	}
	return s.insert(in)
}

type stubUserStore struct {
	details      func(userName string) (models.UserDetails, error)
	update       func(u models.UserUpdate, passwordHash, picturePath string) (bool, error)
	register     func(in models.Registration, passwordHash, picturePath string) error
	recent       func() ([]models.RecentUser, error)
	page         func(pageNumber, pageSize int) ([]models.UserDetails, error)
	setAdminFlag func(userID int64, isAdmin bool) (bool, error)
}

func (s stubUserStore) Details(userName string) (models.UserDetails, error) {
	if s.details == nil {
		panic("unexpected Details call")
	}
	return s.details(userName)
}

func (s stubUserStore) UpdateDetails(u models.UserUpdate, passwordHash, picturePath string) (bool, error) {
	if s.update == nil {
		panic("unexpected UpdateDetails call")
	}
	return s.update(u, passwordHash, picturePath)
}

func (s stubUserStore) Register(in models.Registration, passwordHash, picturePath string) error {
	if s.register == nil {
		panic("unexpected Register call")
	}
	return s.register(in, passwordHash, picturePath)
}

func (s stubUserStore) RecentUsers() ([]models.RecentUser, error) {
	if s.recent == nil {
		panic("unexpected RecentUsers call")
	}
	return s.recent()
}

func (s stubUserStore) Page(pageNumber, pageSize int) ([]models.UserDetails, error) {
	if s.page == nil {
		panic("unexpected Page call")
	}
	return s.page(pageNumber, pageSize)
}

func (s stubUserStore) SetAdminFlag(userID int64, isAdmin bool) (bool, error) {
	if s.setAdminFlag == nil {
		panic("unexpected SetAdminFlag call")
	}
	return s.setAdminFlag(userID, isAdmin)
}

type stubProfileSaver struct {
	save   func(userName string, fh *multipart.FileHeader) (string, error)
	prune  func(userName, keep string) error
	remove func(rel string) error
}

func (s stubProfileSaver) SaveProfilePicture(userName string, fh *multipart.FileHeader) (string, error) {
	if s.save == nil {
		panic("unexpected SaveProfilePicture call")
	}
	return s.save(userName, fh)
}

func (s stubProfileSaver) PruneProfilePictures(userName, keep string) error {
	if s.prune == nil {
		panic("unexpected PruneProfilePictures call")
	}
	return s.prune(userName, keep)
}

func (s stubProfileSaver) Remove(rel string) error {
	if s.remove == nil {
		panic("unexpected Remove call")
	}
	return s.remove(rel)
}

// multipartBody builds a form body with string fields and optional files.
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for field, name := range files {
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create file %s: %v", field, err)
		}
		if _, err := fw.Write([]byte(strings.Repeat("x", 16))); err != nil {
			t.Fatalf("write file %s: %v", field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func performMultipart(t *testing.T, target string, body *bytes.Buffer, contentType string, register func(*gin.Engine)) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()

	r := gin.New()
	register(r)

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelopeBody
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}
