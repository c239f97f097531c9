package handlers

import (
	"mime/multipart"
	"strconv"
	"strings"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
	"newsportal/internal/http/middleware"
	"newsportal/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the account slice of storage.
type UserStore interface {
	Details(userName string) (models.UserDetails, error)
	UpdateDetails(u models.UserUpdate, passwordHash, picturePath string) (bool, error)
	Register(in models.Registration, passwordHash, picturePath string) error
	RecentUsers() ([]models.RecentUser, error)
	Page(pageNumber, pageSize int) ([]models.UserDetails, error)
	SetAdminFlag(userID int64, isAdmin bool) (bool, error)
}

// ProfileSaver stores an uploaded profile picture and returns its relative
// path. Saving never touches previously stored files; Remove rolls back an
// upload whose request failed, PruneProfilePictures retires old pictures
// once the database points at the new one.
type ProfileSaver interface {
	SaveProfilePicture(userName string, fh *multipart.FileHeader) (string, error)
	PruneProfilePictures(userName, keep string) error
	Remove(rel string) error
}

type UserHandler struct {
	Users UserStore
	Files ProfileSaver
}

// GET /GetUserDetails?userName
func (h UserHandler) GetUserDetails(c *gin.Context) {
	userName := strings.TrimSpace(c.Query("userName"))
	if userName == "" {
		RespondStatus(c, domain.StatusBadRequest, "Username is required.")
		return
	}

	details, err := h.Users.Details(userName)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, details)
}

// POST /register (multipart incl. required profile picture)
func (h UserHandler) Register(c *gin.Context) {
	var in models.Registration
	if err := c.ShouldBind(&in); err != nil {
		RespondStatus(c, domain.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(in.UserName) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		RespondStatus(c, domain.StatusBadRequest, "Username, email and password are required.")
		return
	}

	fh, err := c.FormFile("profilePicture")
	if err != nil {
		RespondStatus(c, domain.StatusBadRequest, "Profile picture is required.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondStatus(c, domain.StatusGenericError, "failed to hash password")
		return
	}

	path, err := h.Files.SaveProfilePicture(in.UserName, fh)
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := h.Users.Register(in, string(hash), path); err != nil {
		// A rejected registration must not leave its upload behind. An
		// existing user's pictures were never touched by the save.
		if rmErr := h.Files.Remove(path); rmErr != nil {
			utils.LogEvent(middleware.GetRequestID(c), "users", "register", "orphan upload cleanup: "+rmErr.Error())
		}
		RespondError(c, err)
		return
	}
	RespondData(c, gin.H{
		"message":            "User registered successfully.",
		"profilePicturePath": path,
	})
}

// POST /UpdateUserDetails (multipart, picture optional)
func (h UserHandler) UpdateUserDetails(c *gin.Context) {
	var in models.UserUpdate
	if err := c.ShouldBind(&in); err != nil {
		RespondStatus(c, domain.StatusBadRequest, "invalid payload")
		return
	}
	if in.UserID <= 0 || strings.TrimSpace(in.UserName) == "" {
		RespondStatus(c, domain.StatusBadRequest, "User ID and username are required.")
		return
	}

	passwordHash := ""
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondStatus(c, domain.StatusGenericError, "failed to hash password")
			return
		}
		passwordHash = string(hash)
	}

	picturePath := ""
	if fh, err := c.FormFile("profilePicture"); err == nil {
		picturePath, err = h.Files.SaveProfilePicture(in.UserName, fh)
		if err != nil {
			RespondError(c, err)
			return
		}
	}

	ok, err := h.Users.UpdateDetails(in, passwordHash, picturePath)
	if err != nil || !ok {
		if picturePath != "" {
			if rmErr := h.Files.Remove(picturePath); rmErr != nil {
				utils.LogEvent(middleware.GetRequestID(c), "users", "update", "orphan upload cleanup: "+rmErr.Error())
			}
		}
		if err != nil {
			RespondError(c, err)
			return
		}
		RespondStatus(c, domain.StatusNotFound, "User not found.")
		return
	}
	if picturePath != "" {
		// Old pictures retire only once the row points at the new one.
		if pruneErr := h.Files.PruneProfilePictures(in.UserName, picturePath); pruneErr != nil {
			utils.LogEvent(middleware.GetRequestID(c), "users", "update", "picture prune: "+pruneErr.Error())
		}
	}
	RespondData(c, gin.H{"header": "Success", "data": "User details updated successfully."})
}

// GET /recent-users
func (h UserHandler) GetRecentUsers(c *gin.Context) {
	users, err := h.Users.RecentUsers()
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(users) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No recent users found.")
		return
	}
	RespondData(c, users)
}

// GET /GetPaginatedUsers?pageNumber&pageSize
func (h UserHandler) GetPaginatedUsers(c *gin.Context) {
	pageNumber := queryInt(c, "pageNumber", 1)
	pageSize := queryInt(c, "pageSize", 10)
	if pageNumber < 1 || pageSize < 1 {
		RespondStatus(c, domain.StatusBadRequest, "Page number and page size must be greater than 0.")
		return
	}

	users, err := h.Users.Page(pageNumber, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(users) == 0 {
		RespondStatus(c, domain.StatusNoDataFound, "No users found.")
		return
	}
	RespondData(c, users)
}

type updateIsAdminRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

// PUT /:id/isAdmin
func (h UserHandler) UpdateIsAdmin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondStatus(c, domain.StatusBadRequest, "Invalid User ID.")
		return
	}

	var req updateIsAdminRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.IsAdmin == nil {
		RespondStatus(c, domain.StatusBadRequest, "isAdmin value must be provided.")
		return
	}

	updated, err := h.Users.SetAdminFlag(id, *req.IsAdmin)
	if err != nil {
		RespondError(c, err)
		return
	}
	if !updated {
		RespondStatus(c, domain.StatusNotFound, "User not found.")
		return
	}
	RespondStatus(c, domain.StatusSuccess, "isAdmin updated successfully.")
}
