package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ankietdev/api/internal/apperr"
	"github.com/ankietdev/api/internal/dto"
	"github.com/ankietdev/api/internal/model"
	"github.com/ankietdev/api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SurveyService validates survey aggregate operations and enforces ownership
// and expiry rules. requesterID is nil for anonymous callers.
type SurveyService interface {
	Create(userID uint, req dto.SurveyCreateRequest) (*dto.SurveyResponse, error)
	Update(surveyID, userID uint, req dto.SurveyUpdateRequest) (*dto.SurveyDetailResponse, error)
	Delete(surveyID, userID uint) error
	Get(surveyID uint, requesterID *uint) (*dto.SurveyDetailResponse, error)
	ListByUser(userID uint) ([]dto.SurveyDetailResponse, error)
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
	answerRepo repository.AnswerRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository, answerRepo repository.AnswerRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo, answerRepo: answerRepo}
}

func (s *surveyService) Create(userID uint, req dto.SurveyCreateRequest) (*dto.SurveyResponse, error) {
	title, err := validateTitleAndExpiry(req.Title, req.ExpireDate)
	if err != nil {
		return nil, err
	}
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	// Create always inserts fresh questions; ids in the payload are ignored.
	for i := range questions {
		questions[i].ID = 0
	}

	survey := model.Survey{
		UserID:     userID,
		Title:      title,
		ExpireDate: req.ExpireDate,
		Questions:  questions,
	}
	if err := s.surveyRepo.CreateWithQuestions(&survey); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create survey")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}

	var resp dto.SurveyResponse
	if err := copier.Copy(&resp, &survey); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *surveyService) Update(surveyID, userID uint, req dto.SurveyUpdateRequest) (*dto.SurveyDetailResponse, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("survey %d not found", surveyID)
	}
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load survey for update")
		return nil, fmt.Errorf("database error loading survey: %w", err)
	}
	if survey.UserID != userID {
		return nil, apperr.Forbidden("only the survey owner may edit it")
	}

	title, err := validateTitleAndExpiry(req.Title, req.ExpireDate)
	if err != nil {
		return nil, err
	}
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	if _, err := s.surveyRepo.UpdateWithQuestions(surveyID, title, req.ExpireDate, questions); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("survey %d not found", surveyID)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to update survey")
		return nil, fmt.Errorf("database error updating survey: %w", err)
	}

	updated, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to reload survey after update")
		return nil, fmt.Errorf("database error reloading survey: %w", err)
	}
	return s.detailResponse(updated, false)
}

func (s *surveyService) Delete(surveyID, userID uint) error {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("survey %d not found", surveyID)
	}
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load survey for delete")
		return fmt.Errorf("database error loading survey: %w", err)
	}
	if survey.UserID != userID {
		return apperr.Forbidden("only the survey owner may delete it")
	}

	deleted, err := s.surveyRepo.Delete(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to delete survey")
		return fmt.Errorf("database error deleting survey: %w", err)
	}
	if !deleted {
		return apperr.NotFoundf("survey %d not found", surveyID)
	}
	return nil
}

func (s *surveyService) Get(surveyID uint, requesterID *uint) (*dto.SurveyDetailResponse, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("survey %d not found", surveyID)
	}
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load survey")
		return nil, fmt.Errorf("database error loading survey: %w", err)
	}

	isOwner := requesterID != nil && *requesterID == survey.UserID
	if !isOwner && survey.Expired(time.Now()) {
		return nil, apperr.Expired("survey has expired")
	}
	return s.detailResponse(survey, isOwner)
}

func (s *surveyService) ListByUser(userID uint) ([]dto.SurveyDetailResponse, error) {
	surveys, err := s.surveyRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list surveys")
		return nil, fmt.Errorf("database error listing surveys: %w", err)
	}

	out := make([]dto.SurveyDetailResponse, 0, len(surveys))
	for i := range surveys {
		detail, err := s.detailResponse(&surveys[i], true)
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

// detailResponse maps a survey with preloaded questions; withAnswers adds the
// owner-only answer dump and per-option counts for choice questions.
func (s *surveyService) detailResponse(survey *model.Survey, withAnswers bool) (*dto.SurveyDetailResponse, error) {
	var byQuestion map[uint][]model.Answer
	if withAnswers {
		answers, err := s.answerRepo.FindBySurveyID(survey.ID)
		if err != nil {
			log.Error().Err(err).Uint("surveyID", survey.ID).Msg("Failed to load answers")
			return nil, fmt.Errorf("database error loading answers: %w", err)
		}
		byQuestion = make(map[uint][]model.Answer, len(survey.Questions))
		for _, a := range answers {
			byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
		}
	}

	resp := dto.SurveyDetailResponse{
		ID:          survey.ID,
		Title:       survey.Title,
		CreatedDate: survey.CreatedDate,
		ExpireDate:  survey.ExpireDate,
		UserID:      survey.UserID,
		Questions:   make([]dto.QuestionResponse, 0, len(survey.Questions)),
	}
	for _, q := range survey.Questions {
		qr := dto.QuestionResponse{
			ID:          q.ID,
			Text:        q.Name,
			OrderNumber: q.OrderNumber,
			Type:        q.Type,
			Options:     q.Options,
		}
		if qr.Options == nil {
			qr.Options = []string{}
		}
		if withAnswers {
			qAnswers := byQuestion[q.ID]
			qr.Answers = make([]dto.AnswerResponse, 0, len(qAnswers))
			for _, a := range qAnswers {
				qr.Answers = append(qr.Answers, dto.AnswerResponse{
					ID:         a.ID,
					SurveyID:   a.SurveyID,
					QuestionID: a.QuestionID,
					Text:       a.AnswerText,
				})
			}
			if model.IsChoiceType(q.Type) {
				qr.Counts = optionCounts(q.Options, qAnswers)
			}
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return &resp, nil
}

func optionCounts(options []string, answers []model.Answer) []dto.OptionCount {
	counts := make([]dto.OptionCount, len(options))
	for i, opt := range options {
		counts[i] = dto.OptionCount{Option: opt}
	}
	idx := make(map[string]int, len(options))
	for i, opt := range options {
		idx[opt] = i
	}
	for _, a := range answers {
		if i, ok := idx[a.AnswerText]; ok {
			counts[i].Count++
		}
	}
	return counts
}

func validateTitleAndExpiry(title string, expireDate *time.Time) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperr.Validationf("title cannot be empty")
	}
	if expireDate != nil && !expireDate.After(time.Now()) {
		return "", apperr.Validationf("expire date must be in the future")
	}
	return title, nil
}

// buildQuestions validates the payload and maps it to models with order
// numbers assigned 1..N by position. Indices in error messages are 1-based.
func buildQuestions(payload []dto.QuestionPayload) ([]model.Question, error) {
	if len(payload) == 0 {
		return nil, apperr.Validationf("at least one question is required")
	}
	questions := make([]model.Question, 0, len(payload))
	for i, q := range payload {
		idx := i + 1
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return nil, apperr.Validationf("question #%d text cannot be empty", idx)
		}
		if q.Type != model.QuestionTypeOpen && !model.IsChoiceType(q.Type) {
			return nil, apperr.Validationf("question #%d has invalid type", idx)
		}
		options := datatypes.JSONSlice[string]{}
		if model.IsChoiceType(q.Type) {
			for _, opt := range q.Options {
				if trimmed := strings.TrimSpace(opt); trimmed != "" {
					options = append(options, trimmed)
				}
			}
			if len(options) == 0 {
				return nil, apperr.Validationf("question #%d must have at least one option", idx)
			}
		}
		id, _ := parseQuestionID(q.ID)
		questions = append(questions, model.Question{
			ID:          id,
			OrderNumber: idx,
			Name:        text,
			Type:        q.Type,
			Options:     options,
		})
	}
	return questions, nil
}

// parseQuestionID accepts the loose id field of a question payload: a positive
// JSON number or numeric string identifies an existing question, everything
// else (absent, zero, temp frontend ids) marks the entry as new.
func parseQuestionID(v any) (uint, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 && t == math.Trunc(t) {
			return uint(t), true
		}
	case string:
		if n, err := strconv.ParseUint(t, 10, 32); err == nil && n > 0 {
			return uint(n), true
		}
	}
	return 0, false
}
