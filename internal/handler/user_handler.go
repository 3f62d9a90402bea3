package handler

import (
	"errors"
	"net/http"

	"medical-transport-backend/internal/service"
	"medical-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type SignupRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Affiliation string `json:"affiliation"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Affiliation string `json:"affiliation"`
}

// Signup handles account registration
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	err := h.userService.Signup(req.Username, req.Password, req.DisplayName, req.Role, req.Phone, req.Affiliation)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusConflict, "중복된 아이디입니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "회원가입에 성공했습니다.")
}

// Login handles authentication and token issuance
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	accessToken, err := h.userService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "존재하지 않는 아이디입니다.")
		case errors.Is(err, service.ErrPasswordMismatch):
			utils.ErrorResponse(c, http.StatusConflict, "비밀번호가 일치하지 않습니다.")
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"accessToken": accessToken,
	})
}

// GetInfo returns the caller's profile without credential fields
func (h *UserHandler) GetInfo(c *gin.Context) {
	username := c.GetString("username")

	profile, err := h.userService.GetProfile(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "유저를 찾을 수 없습니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateInfo overwrites the caller's profile fields with the request body
func (h *UserHandler) UpdateInfo(c *gin.Context) {
	username := c.GetString("username")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	err := h.userService.UpdateProfile(username, req.DisplayName, req.Phone, req.Affiliation)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "존재하지 않는 계정입니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	utils.MessageResponse(c, http.StatusOK, "업데이트에 성공했습니다.")
}

// Logout clears the token stored on the caller's row
func (h *UserHandler) Logout(c *gin.Context) {
	username := c.GetString("username")

	if err := h.userService.Logout(username); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "유저를 찾을 수 없습니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	c.Status(http.StatusNoContent)
}
