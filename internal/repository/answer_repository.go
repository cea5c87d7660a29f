package repository

import (
	"github.com/ankietdev/api/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	CreateBatch(answers []model.Answer) error
	FindByQuestionID(questionID uint) ([]model.Answer, error)
	FindBySurveyID(surveyID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CreateBatch(answers []model.Answer) error {
	// Single Create call; GORM wraps the multi-row insert in one transaction.
	return r.db.Create(&answers).Error
}

func (r *answerRepository) FindByQuestionID(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("question_id = ?", questionID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindBySurveyID(surveyID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("survey_id = ?", surveyID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
