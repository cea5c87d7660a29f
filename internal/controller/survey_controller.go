package controller

import (
	"net/http"
	"strconv"

	"github.com/ankietdev/api/internal/dto"
	"github.com/ankietdev/api/internal/middleware"
	"github.com/ankietdev/api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveySvc service.SurveyService
	answerSvc service.AnswerService
}

func NewSurveyController(surveySvc service.SurveyService, answerSvc service.AnswerService) *SurveyController {
	return &SurveyController{surveySvc: surveySvc, answerSvc: answerSvc}
}

// CreateSurvey godoc
// @Summary Create a survey with its questions
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body dto.SurveyCreateRequest true "Survey data"
// @Success 201 {object} dto.SurveyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Validation failure"
// @Router /surveys [post]
func (ctrl *SurveyController) CreateSurvey(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req dto.SurveyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SurveyCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.surveySvc.Create(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSurveys godoc
// @Summary List the authenticated user's surveys, newest first
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SurveyDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /surveys [get]
func (ctrl *SurveyController) ListSurveys(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	surveys, err := ctrl.surveySvc.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurvey godoc
// @Summary Get one survey
// @Description Owners see every question with its answers; everyone else gets
// @Description questions only, and expired surveys are refused.
// @Tags surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 410 {object} dto.ErrorResponse "Survey has expired"
// @Router /surveys/{id} [get]
func (ctrl *SurveyController) GetSurvey(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}

	var requesterID *uint
	if id, authed := middleware.UserID(c); authed {
		requesterID = &id
	}

	resp, err := ctrl.surveySvc.Get(surveyID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSurvey godoc
// @Summary Update a survey, reconciling its question list
// @Description Questions carrying a stored id are edited in place, new ones
// @Description are inserted, missing ones are removed with their answers.
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateRequest true "New survey state"
// @Success 200 {object} dto.SurveyDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failure"
// @Router /surveys/{id} [put]
func (ctrl *SurveyController) UpdateSurvey(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.SurveyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SurveyUpdateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.surveySvc.Update(surveyID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSurvey godoc
// @Summary Delete a survey with all its questions and answers
// @Tags surveys
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id} [delete]
func (ctrl *SurveyController) DeleteSurvey(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := ctrl.surveySvc.Delete(surveyID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitAnswers godoc
// @Summary Submit a batch of anonymous answers for a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param answers body dto.SubmitAnswersRequest true "Answer batch"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failure"
// @Router /surveys/{id}/answers [post]
func (ctrl *SurveyController) SubmitAnswers(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}

	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswersRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.answerSvc.SubmitAnswers(surveyID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: "Answers saved successfully"})
}

func surveyIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid survey ID format"})
		return 0, false
	}
	return uint(id), true
}
