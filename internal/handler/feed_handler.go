package handler

import (
	"errors"
	"net/http"
	"strconv"

	"medical-transport-backend/internal/service"
	"medical-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

type CreateFeedRequest struct {
	TargetHospital string `json:"targetHospital"`
	PatientName    string `json:"patientName"`
	AgeOrMonth     string `json:"ageOrMonth"`
	BloodType      string `json:"bloodType"`
	Injury         string `json:"injury"`
	DiseaseFlag    string `json:"diseaseFlag"`
	SurgeryFlag    string `json:"surgeryFlag"`
}

type UpdateFeedStateRequest struct {
	ID    uint   `json:"id"`
	State string `json:"state"`
}

// List returns the feeds targeted at the caller's affiliated hospital,
// paged by ?page and ?limit (defaulting to 1 and 10, applied as sent)
func (h *FeedHandler) List(c *gin.Context) {
	username := c.GetString("username")

	page := parseQueryInt(c, "page", defaultPage)
	limit := parseQueryInt(c, "limit", defaultLimit)

	feeds, err := h.feedService.ListForUser(username, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "요청한 페이지를 찾을 수 없습니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, feeds)
}

// Create inserts a new patient-intake record for the chosen hospital
func (h *FeedHandler) Create(c *gin.Context) {
	username := c.GetString("username")

	var req CreateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	err := h.feedService.Create(username, service.FeedInput{
		TargetHospital: req.TargetHospital,
		PatientName:    req.PatientName,
		AgeOrMonth:     req.AgeOrMonth,
		BloodType:      req.BloodType,
		Injury:         req.Injury,
		DiseaseFlag:    req.DiseaseFlag,
		SurgeryFlag:    req.SurgeryFlag,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "요청한 페이지를 찾을 수 없습니다.")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	utils.MessageResponse(c, http.StatusCreated, "환자 등록에 성공했습니다.")
}

// UpdateState overwrites a feed's approval state
func (h *FeedHandler) UpdateState(c *gin.Context) {
	username := c.GetString("username")

	var req UpdateFeedStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		return
	}

	err := h.feedService.UpdateState(username, req.ID, req.State)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "유저를 찾을 수 없습니다.")
		case errors.Is(err, service.ErrFeedNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "요청한 페이지를 찾을 수 없습니다.")
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, "요청에 실패했습니다.")
		}
		return
	}

	utils.MessageResponse(c, http.StatusOK, "업데이트에 성공했습니다.")
}

func parseQueryInt(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
