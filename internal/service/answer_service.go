package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ankietdev/api/internal/apperr"
	"github.com/ankietdev/api/internal/dto"
	"github.com/ankietdev/api/internal/model"
	"github.com/ankietdev/api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService validates and persists anonymous answer submissions.
type AnswerService interface {
	SubmitAnswers(surveyID uint, req dto.SubmitAnswersRequest) error
}

type answerService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewAnswerService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) AnswerService {
	return &answerService{surveyRepo: surveyRepo, questionRepo: questionRepo, answerRepo: answerRepo}
}

// SubmitAnswers persists the whole batch or nothing. Question membership is
// checked against the survey's current question set, read fresh here rather
// than trusted from the client. Duplicate question ids within one batch are
// allowed; each entry becomes its own row.
func (s *answerService) SubmitAnswers(surveyID uint, req dto.SubmitAnswersRequest) error {
	if len(req.Answers) == 0 {
		return apperr.Validationf("at least one answer is required")
	}

	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("survey %d not found", surveyID)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load survey for submission")
		return fmt.Errorf("database error loading survey: %w", err)
	}

	questions, err := s.questionRepo.FindBySurveyID(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load questions for submission")
		return fmt.Errorf("database error loading questions: %w", err)
	}
	valid := make(map[uint]bool, len(questions))
	for _, q := range questions {
		valid[q.ID] = true
	}

	answers := make([]model.Answer, 0, len(req.Answers))
	for _, item := range req.Answers {
		if !valid[item.QuestionID] {
			return apperr.Validationf("question %d does not belong to survey %d", item.QuestionID, surveyID)
		}
		text := strings.TrimSpace(item.Answer)
		if text == "" {
			return apperr.Validationf("answer for question %d cannot be empty", item.QuestionID)
		}
		if utf8.RuneCountInString(text) > model.MaxAnswerLength {
			return apperr.Validationf("answer for question %d is too long (max %d characters)", item.QuestionID, model.MaxAnswerLength)
		}
		answers = append(answers, model.Answer{
			SurveyID:   surveyID,
			QuestionID: item.QuestionID,
			AnswerText: text,
		})
	}

	if err := s.answerRepo.CreateBatch(answers); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Int("count", len(answers)).Msg("Failed to save answers")
		return fmt.Errorf("database error saving answers: %w", err)
	}
	return nil
}
