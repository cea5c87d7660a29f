package repository

import (
	"time"

	"github.com/ankietdev/api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindByUser(userID uint) ([]model.Survey, error)
	CreateWithQuestions(survey *model.Survey) error
	UpdateWithQuestions(surveyID uint, title string, expireDate *time.Time, questions []model.Question) (*model.Survey, error)
	Delete(surveyID uint) (bool, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.First(&survey, id).Error
	return &survey, err
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_number ASC")
	}).First(&survey, id).Error
	return &survey, err
}

func (r *surveyRepository) FindByUser(userID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_number ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&surveys).Error
	return surveys, err
}

func (r *surveyRepository) CreateWithQuestions(survey *model.Survey) error {
	// GORM inserts the associated questions in the same transaction as the
	// survey row, so a failing question insert rolls back everything.
	return r.db.Create(survey).Error
}

// UpdateWithQuestions reconciles the survey's stored question set against the
// incoming list. Questions carrying an existing ID are updated in place; for
// those, answers whose text matches an option that the edit removed are
// deleted. Questions without an ID are inserted. Stored questions absent from
// the incoming list are deleted together with their answers. Order numbers
// must already be assigned 1..N by the caller. Everything runs in one
// transaction; any failure leaves the survey untouched.
func (r *surveyRepository) UpdateWithQuestions(surveyID uint, title string, expireDate *time.Time, questions []model.Question) (*model.Survey, error) {
	var updated model.Survey

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Survey{}).
			Where("id = ?", surveyID).
			Updates(map[string]any{"title": title, "expire_date": expireDate})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var existing []model.Question
		if err := tx.Where("survey_id = ?", surveyID).Find(&existing).Error; err != nil {
			return err
		}
		oldOptions := make(map[uint][]string, len(existing))
		for _, q := range existing {
			oldOptions[q.ID] = q.Options
		}

		kept := make(map[uint]bool, len(questions))
		for i := range questions {
			q := &questions[i]
			q.SurveyID = surveyID
			if q.Options == nil {
				q.Options = datatypes.JSONSlice[string]{}
			}

			if q.ID != 0 {
				removed := stringSetDiff(oldOptions[q.ID], q.Options)
				if len(removed) > 0 {
					// Answers referencing a dropped option would point at a
					// choice that no longer exists.
					if err := tx.Where("question_id = ? AND answer_text IN ?", q.ID, removed).
						Delete(&model.Answer{}).Error; err != nil {
						return err
					}
				}
				if err := tx.Model(&model.Question{}).
					Where("id = ? AND survey_id = ?", q.ID, surveyID).
					Updates(map[string]any{
						"order_number": q.OrderNumber,
						"name":         q.Name,
						"type":         q.Type,
						"options":      q.Options,
					}).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Create(q).Error; err != nil {
					return err
				}
			}
			kept[q.ID] = true
		}

		var stale []uint
		for _, q := range existing {
			if !kept[q.ID] {
				stale = append(stale, q.ID)
			}
		}
		if len(stale) > 0 {
			// Answers go first; a question is never deleted while answers
			// still reference it.
			if err := tx.Where("question_id IN ?", stale).Delete(&model.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", stale).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, surveyID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *surveyRepository) Delete(surveyID uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Survey{}, surveyID)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// stringSetDiff returns the elements of a that do not occur in b, keeping a's order.
func stringSetDiff(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	return out
}
