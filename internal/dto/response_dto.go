package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AnswerResponse is one stored answer, owner-only data.
type AnswerResponse struct {
	ID         uint   `json:"id"`
	SurveyID   uint   `json:"surveyId"`
	QuestionID uint   `json:"questionId"`
	Text       string `json:"text"`
}

// OptionCount is the number of stored answers matching one option of a
// choice question, in option order.
type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

// QuestionResponse carries a question for both owner and public views.
// Answers and Counts are only filled for the owner.
type QuestionResponse struct {
	ID          uint             `json:"id"`
	Text        string           `json:"text"`
	OrderNumber int              `json:"orderNumber"`
	Type        string           `json:"type"`
	Options     []string         `json:"options"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
	Counts      []OptionCount    `json:"counts,omitempty"`
}

// SurveyResponse is the survey row without questions, returned from create.
type SurveyResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	CreatedDate time.Time  `json:"createdDate"`
	ExpireDate  *time.Time `json:"expireDate"`
	UserID      uint       `json:"userId"`
}

// SurveyDetailResponse is a survey with its question list.
type SurveyDetailResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	CreatedDate time.Time          `json:"createdDate"`
	ExpireDate  *time.Time         `json:"expireDate"`
	UserID      uint               `json:"userId"`
	Questions   []QuestionResponse `json:"questions"`
}
