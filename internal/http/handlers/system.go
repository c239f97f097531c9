package handlers

import (
	"database/sql"

	"newsportal/internal/domain"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB *sql.DB
}

// GET /health
func (h SystemHandler) Health(c *gin.Context) {
	RespondData(c, gin.H{"status": "ok"})
}

// GET /db-check
func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		RespondStatus(c, domain.StatusGenericError, "database is not configured")
		return
	}
	if err := h.DB.Ping(); err != nil {
		RespondStatus(c, domain.StatusGenericError, "database unreachable: "+err.Error())
		return
	}
	RespondData(c, gin.H{"database": "ok"})
}
