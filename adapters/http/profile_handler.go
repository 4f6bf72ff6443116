package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/HPainhas/DevConnector/internal/application/usecase/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	p, err := h.profileUseCase.ExecuteGetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	p, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), req.toInput(userID))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	p, err := h.profileUseCase.ExecuteGetProfileByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	if err := h.profileUseCase.ExecuteDeleteAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	input, err := req.toInput(userID)
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	p, err := h.profileUseCase.ExecuteRemoveExperience(c.Request.Context(), userID, c.Param("experience_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	input, err := req.toInput(userID)
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	p, err := h.profileUseCase.ExecuteRemoveEducation(c.Request.Context(), userID, c.Param("education_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}
