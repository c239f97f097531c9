package api

import (
	"log"

	"newsportal/internal/config"
	"newsportal/internal/domain"
	h "newsportal/internal/http/handlers"
	"newsportal/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups every endpoint implementation the router mounts.
type Handlers struct {
	System    h.SystemHandler
	News      h.NewsHandler
	Inquiries h.InquiryHandler
	Users     h.UserHandler
	Auth      h.AuthHandler
	Reports   h.ReportHandler
}

// NewRouter wires middleware and the endpoint surface. Paths match the
// legacy portal client, so most of them sit at the root.
func NewRouter(env config.Env, hs Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.Authenticate([]byte(env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		env := domain.NewStatus(domain.StatusNotFound, "route not found: "+c.Request.URL.Path)
		c.JSON(env.Code.HTTPStatus(), env)
	})

	r.GET("/health", hs.System.Health)
	r.GET("/db-check", hs.System.DBCheck)

	// News & lookups
	r.GET("/GetActiveNews", hs.News.GetActiveNews)
	r.GET("/GetTopNews", hs.News.GetTopNews)
	r.GET("/Categories", hs.News.GetTags)
	r.GET("/News-by-Categories", hs.News.GetNewsByTag)
	r.GET("/suggestions", hs.News.GetTagSuggestions)
	r.GET("/GetCountryList", hs.News.GetCountryList)
	r.GET("/GetGenderOptions", hs.News.GetGenderOptions)
	r.POST("/add-news", hs.News.AddNews)

	// Inquiries
	r.GET("/GetPaginatedInquiries", hs.Inquiries.GetPaginatedInquiries)
	r.POST("/UpdateInquiryStatus", hs.Inquiries.UpdateInquiryStatus)
	r.POST("/InsertInquiry", hs.Inquiries.CreateInquiry)
	r.GET("/reports/inquiries.pdf", hs.Reports.GetInquiriesPDF)

	// Auth & password reset
	r.POST("/login", hs.Auth.Login)
	r.POST("/generateOTP", hs.Auth.GenerateOTP)
	r.POST("/validateOTP", hs.Auth.ValidateOTP)
	r.POST("/resetPassword", hs.Auth.ResetPassword)

	// Users
	r.GET("/GetUserDetails", hs.Users.GetUserDetails)
	r.POST("/register", hs.Users.Register)
	r.POST("/UpdateUserDetails", hs.Users.UpdateUserDetails)
	r.GET("/recent-users", hs.Users.GetRecentUsers)
	r.GET("/GetPaginatedUsers", hs.Users.GetPaginatedUsers)
	// PUT is the only method with a root-level parameter, so this does not
	// collide with the static GET/POST routes above.
	r.PUT("/:id/isAdmin", hs.Users.UpdateIsAdmin)

	return r
}
