package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	CreatedDate time.Time      `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	ExpireDate  *time.Time     `json:"expire_date,omitempty" gorm:"column:expire_date"` // nil means the survey never expires
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Expired reports whether the survey has an expiry that already passed.
func (s *Survey) Expired(now time.Time) bool {
	return s.ExpireDate != nil && s.ExpireDate.Before(now)
}
