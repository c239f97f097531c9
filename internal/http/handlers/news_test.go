package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"newsportal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func TestGetActiveNewsEmptyPageIsNoDataFound(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{
		activeNewsPage: func(pageIndex, pageSize int) ([]models.News, int, error) {
			return []models.News{}, 0, nil
		},
	}}

	w, env := performJSON(t, http.MethodGet, "/GetActiveNews?pageIndex=1&pageSize=10", nil, func(r *gin.Engine) {
		r.GET("/GetActiveNews", h.GetActiveNews)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("no-data must stay HTTP 200, got %d", w.Code)
	}
	if env.Code != 108 || env.Label != "NoDataFound" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.Data != nil {
		t.Fatalf("status envelope must not carry data")
	}
}

func TestGetActiveNewsRejectsBadPagingBeforeStore(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{}} // any store call panics

	for _, target := range []string{
		"/GetActiveNews?pageIndex=0",
		"/GetActiveNews?pageSize=-1",
		"/GetActiveNews?pageIndex=abc",
	} {
		w, env := performJSON(t, http.MethodGet, target, nil, func(r *gin.Engine) {
			r.GET("/GetActiveNews", h.GetActiveNews)
		})
		if w.Code != http.StatusBadRequest || env.Code != 400 {
			t.Fatalf("%s: expected 400 envelope, got http=%d code=%d", target, w.Code, env.Code)
		}
	}
}

func TestGetActiveNewsDefaultsPaging(t *testing.T) {
	var gotIndex, gotSize int
	h := NewsHandler{News: stubNewsStore{
		activeNewsPage: func(pageIndex, pageSize int) ([]models.News, int, error) {
			gotIndex, gotSize = pageIndex, pageSize
			return []models.News{{NewsID: 1, Title: "T"}}, 1, nil
		},
	}}

	w, env := performJSON(t, http.MethodGet, "/GetActiveNews", nil, func(r *gin.Engine) {
		r.GET("/GetActiveNews", h.GetActiveNews)
	})

	if gotIndex != 1 || gotSize != 10 {
		t.Fatalf("defaults: got index=%d size=%d", gotIndex, gotSize)
	}
	if w.Code != http.StatusOK || env.Code != 100 {
		t.Fatalf("expected success envelope, got http=%d code=%d", w.Code, env.Code)
	}

	var payload struct {
		Items      []models.News `json:"items"`
		TotalCount int           `json:"totalCount"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("payload decode: %v", err)
	}
	if len(payload.Items) != 1 || payload.TotalCount != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestGetNewsByTagRequiresTagName(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{}}

	w, env := performJSON(t, http.MethodGet, "/News-by-Categories?tagName=%20%20", nil, func(r *gin.Engine) {
		r.GET("/News-by-Categories", h.GetNewsByTag)
	})
	if w.Code != http.StatusBadRequest || env.Code != 400 {
		t.Fatalf("blank tag name should fail fast, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestGetTagSuggestions(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{
		suggestions: func(prefix string) ([]models.TagSuggestion, error) {
			if prefix != "spo" {
				t.Fatalf("prefix not forwarded, got %q", prefix)
			}
			return []models.TagSuggestion{{TagName: "sports"}}, nil
		},
	}}

	w, env := performJSON(t, http.MethodGet, "/suggestions?query=spo", nil, func(r *gin.Engine) {
		r.GET("/suggestions", h.GetTagSuggestions)
	})
	if w.Code != http.StatusOK || env.Code != 100 {
		t.Fatalf("expected success, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestGetGenderOptionsEmpty(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{
		genders: func() ([]models.CodeLookup, error) { return nil, nil },
	}}

	w, env := performJSON(t, http.MethodGet, "/GetGenderOptions", nil, func(r *gin.Engine) {
		r.GET("/GetGenderOptions", h.GetGenderOptions)
	})
	if w.Code != http.StatusOK || env.Code != 108 {
		t.Fatalf("expected no-data envelope, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestAddNewsRequiresTitleAndShortDesc(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{}}

	body, ctype := multipartBody(t, map[string]string{"shortDesc": "s"}, nil)
	w, env := performMultipart(t, "/add-news", body, ctype, func(r *gin.Engine) {
		r.POST("/add-news", h.AddNews)
	})
	if w.Code != http.StatusBadRequest || env.Code != 400 {
		t.Fatalf("missing title should fail, got http=%d code=%d", w.Code, env.Code)
	}

	body, ctype = multipartBody(t, map[string]string{"title": "T"}, nil)
	w, env = performMultipart(t, "/add-news", body, ctype, func(r *gin.Engine) {
		r.POST("/add-news", h.AddNews)
	})
	if w.Code != http.StatusBadRequest || env.Code != 400 {
		t.Fatalf("missing short description should fail, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestAddNewsWithoutImagesSkipsImageUpdate(t *testing.T) {
	h := NewsHandler{News: stubNewsStore{
		addNews: func(in models.NewsInput) (int64, error) {
			if in.Title != "Final day" {
				t.Fatalf("form not bound, got %+v", in)
			}
			return 12, nil
		},
		// updateImages deliberately unset: calling it would panic
	}}

	body, ctype := multipartBody(t, map[string]string{
		"title":     "Final day",
		"shortDesc": "Recap",
	}, nil)
	w, env := performMultipart(t, "/add-news", body, ctype, func(r *gin.Engine) {
		r.POST("/add-news", h.AddNews)
	})
	if w.Code != http.StatusOK || env.Code != 100 {
		t.Fatalf("expected success, got http=%d code=%d body=%s", w.Code, env.Code, w.Body.String())
	}

	var payload struct {
		NewsID  int64  `json:"newsId"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("payload decode: %v", err)
	}
	if payload.NewsID != 12 {
		t.Fatalf("news id not returned, got %+v", payload)
	}
}
