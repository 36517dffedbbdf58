package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentra/hrm-backend/internal/middleware"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/repository"
	"github.com/talentra/hrm-backend/internal/response"
	"github.com/talentra/hrm-backend/internal/service"
	"github.com/talentra/hrm-backend/internal/validator"
)

// tokenName labels issued tokens, one per session.
const tokenName = "API TOKEN"

// AuthHandler handles authentication and user account endpoints.
type AuthHandler struct {
	authService   *service.AuthService
	userService   *service.UserService
	avatarService *service.AvatarService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	userService *service.UserService,
	avatarService *service.AvatarService,
) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		userService:   userService,
		avatarService: avatarService,
	}
}

// Register godoc
// POST /auth/register
// Creates a user account and issues the first session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := h.userService.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusBadRequest, response.MsgEmailTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), user.ID, tokenName)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OKWithToken(c, http.StatusOK, "User created successfully", nil, token)
}

// Login godoc
// POST /auth/login
// Verifies credentials and issues a fresh token. Prior tokens stay valid,
// so concurrent sessions coexist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), user.ID, tokenName)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OKWithToken(c, http.StatusOK, "User logged in successfully", user, token)
}

// Logout godoc
// GET /auth/logout
// Revokes every token of the calling user, ending all their sessions.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgUnauthenticated)
		return
	}

	if err := h.authService.RevokeAll(c.Request.Context(), user.ID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "User logged out successfully", nil)
}

// ListUsers godoc
// GET /auth/users
// Lists users with pagination.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	users, pagination, err := h.userService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OKWithPagination(c, http.StatusOK, users, pagination)
}

// GetUser godoc
// GET /auth/user/:id
// Returns a single user by ID.
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	response.OK(c, http.StatusOK, "", user)
}

// UpdateProfile godoc
// PUT /auth/update
// Overwrites the full profile of the user identified by the current email.
// Optional fields left out of the request are cleared, not preserved.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	user.Name = req.Name
	user.Email = req.NewEmail
	user.Surname = req.Surname
	user.Address = req.Address
	user.Phone = req.Phone
	user.IsAdmin = req.IsAdmin

	if err := h.userService.UpdateProfile(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusBadRequest, response.MsgEmailTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Profile updated successfully", user)
}

// ChangePassword godoc
// PUT /auth/updatepassword
// Verifies the current password before storing the new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidCredentials)
		return
	}

	hash, err := h.authService.HashPassword(req.NewPassword)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.OK(c, http.StatusOK, "Password updated successfully", user)
}

// UpdatePhoto godoc
// POST /auth/updatephoto
// Stores an uploaded avatar and overwrites the user's photo URL. A request
// without a file succeeds without changing anything.
func (h *AuthHandler) UpdatePhoto(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		response.Fail(c, http.StatusBadRequest, "email is a required field")
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		// No file attached: success with the user unchanged.
		response.OK(c, http.StatusOK, "Photo updated successfully", user)
		return
	}
	defer file.Close()

	url, err := h.avatarService.Save(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType), errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		}
		return
	}

	if err := h.userService.UpdatePhoto(c.Request.Context(), user.ID, &url); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	user.Photo = &url
	response.OK(c, http.StatusOK, "Photo updated successfully", user)
}

// DeletePhotoRequest is the payload for clearing a user's avatar.
type DeletePhotoRequest struct {
	Email string `json:"email" binding:"required,email,max=100"`
}

// DeletePhoto godoc
// POST /auth/deletephoto
// Removes the backing avatar object and clears the photo URL. Deleting an
// already-absent avatar is a no-op success.
func (h *AuthHandler) DeletePhoto(c *gin.Context) {
	var req DeletePhotoRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, errs)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	if user.Photo != nil {
		if err := h.avatarService.Remove(*user.Photo); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
			return
		}
		if err := h.userService.UpdatePhoto(c.Request.Context(), user.ID, nil); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
			return
		}
		user.Photo = nil
	}

	response.OK(c, http.StatusOK, "Photo deleted successfully", user)
}
