package dto

import "time"

// QuestionPayload is one question inside a survey create or update request.
// On update, ID may carry the stored question id (number or numeric string)
// to mark the entry as an edit of that question; anything else means a new
// question. The frontend uses temporary string ids for freshly added rows,
// so the field is deliberately untyped.
type QuestionPayload struct {
	ID      any      `json:"id,omitempty"`
	Text    string   `json:"text" binding:"required"`
	Type    string   `json:"type" binding:"required,oneof=open select radio"`
	Options []string `json:"options"`
}

// SurveyCreateRequest creates a survey together with its full question list.
type SurveyCreateRequest struct {
	Title      string            `json:"title" binding:"required"`
	ExpireDate *time.Time        `json:"expireDate"`
	Questions  []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// SurveyUpdateRequest replaces the survey's title, expiry and question list.
type SurveyUpdateRequest struct {
	Title      string            `json:"title" binding:"required"`
	ExpireDate *time.Time        `json:"expireDate"`
	Questions  []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// AnswerItem is one submitted answer within a batch.
type AnswerItem struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitAnswersRequest is an anonymous respondent's full submission for one survey.
type SubmitAnswersRequest struct {
	Answers []AnswerItem `json:"answers" binding:"required,min=1,dive"`
}
