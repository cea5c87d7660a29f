package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeOpen   = "open"
	QuestionTypeSelect = "select"
	QuestionTypeRadio  = "radio"
)

// IsChoiceType reports whether the type carries an option list.
func IsChoiceType(t string) bool {
	return t == QuestionTypeSelect || t == QuestionTypeRadio
}

type Question struct {
	ID          uint `gorm:"primarykey" json:"id"`
	SurveyID    uint `json:"survey_id" gorm:"not null;index"`
	OrderNumber int  `json:"order_number" gorm:"not null"` // 1-based, dense within a survey
	// Name is the question text. Column name kept from the original schema.
	Name string `json:"name" gorm:"column:name;not null"`
	Type string `json:"type" gorm:"not null"` // "open", "select", "radio"
	// Options round-trips an ordered string list; [] for open questions, never NULL.
	Options   datatypes.JSONSlice[string] `json:"options" gorm:"not null"`
	Answers   []Answer                    `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	DeletedAt gorm.DeletedAt              `gorm:"index" json:"-"`
}
