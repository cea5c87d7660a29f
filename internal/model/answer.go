package model

import (
	"time"

	"gorm.io/gorm"
)

// MaxAnswerLength bounds a single answer value, counted in runes.
const MaxAnswerLength = 500

type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SurveyID   uint           `json:"survey_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	AnswerText string         `json:"answer_text" gorm:"type:text;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
