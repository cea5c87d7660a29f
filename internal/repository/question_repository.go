package repository

import (
	"github.com/ankietdev/api/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository only reads; questions are written through the survey
// aggregate operations in SurveyRepository.
type QuestionRepository interface {
	FindBySurveyID(surveyID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("survey_id = ?", surveyID).Order("order_number ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
