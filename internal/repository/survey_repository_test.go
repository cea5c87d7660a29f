package repository

import (
	"testing"
	"time"

	"github.com/ankietdev/api/internal/model"
	"github.com/ankietdev/api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func opts(values ...string) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	return append(out, values...)
}

func seedSurvey(t *testing.T, db *gorm.DB, questions ...model.Question) *model.Survey {
	t.Helper()
	survey := &model.Survey{
		UserID:    1,
		Title:     "Seed",
		Questions: questions,
	}
	require.NoError(t, NewSurveyRepository(db).CreateWithQuestions(survey))
	return survey
}

func addAnswer(t *testing.T, db *gorm.DB, surveyID, questionID uint, text string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Answer{SurveyID: surveyID, QuestionID: questionID, AnswerText: text}).Error)
}

func TestCreateWithQuestions(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	survey := &model.Survey{
		UserID: 7,
		Title:  "Customer feedback",
		Questions: []model.Question{
			{OrderNumber: 1, Name: "Pick", Type: model.QuestionTypeRadio, Options: opts("A", "B")},
			{OrderNumber: 2, Name: "Why", Type: model.QuestionTypeOpen, Options: opts()},
		},
	}
	require.NoError(t, repo.CreateWithQuestions(survey))
	assert.NotZero(t, survey.ID)
	assert.NotZero(t, survey.CreatedDate)

	loaded, err := repo.FindByIDWithQuestions(survey.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, []string{"A", "B"}, []string(loaded.Questions[0].Options))
	assert.Equal(t, 1, loaded.Questions[0].OrderNumber)
	// Empty option list round-trips as empty, not null.
	assert.NotNil(t, loaded.Questions[1].Options)
	assert.Empty(t, loaded.Questions[1].Options)
	assert.Equal(t, 2, loaded.Questions[1].OrderNumber)
}

func TestUpdateWithQuestions_OptionDiffPrunesAnswers(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	survey := seedSurvey(t, db,
		model.Question{OrderNumber: 1, Name: "Pick", Type: model.QuestionTypeRadio, Options: opts("A", "B")},
		model.Question{OrderNumber: 2, Name: "Choose", Type: model.QuestionTypeSelect, Options: opts("C")},
	)
	q1, q2 := survey.Questions[0], survey.Questions[1]
	addAnswer(t, db, survey.ID, q1.ID, "A")
	addAnswer(t, db, survey.ID, q1.ID, "B")
	addAnswer(t, db, survey.ID, q2.ID, "C")

	// Drop option "B" from the first question only.
	_, err := repo.UpdateWithQuestions(survey.ID, "Seed", nil, []model.Question{
		{ID: q1.ID, OrderNumber: 1, Name: "Pick", Type: model.QuestionTypeRadio, Options: opts("A")},
		{ID: q2.ID, OrderNumber: 2, Name: "Choose", Type: model.QuestionTypeSelect, Options: opts("C")},
	})
	require.NoError(t, err)

	var q1Answers []model.Answer
	require.NoError(t, db.Where("question_id = ?", q1.ID).Find(&q1Answers).Error)
	require.Len(t, q1Answers, 1)
	assert.Equal(t, "A", q1Answers[0].AnswerText)

	var q2Count int64
	require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", q2.ID).Count(&q2Count).Error)
	assert.EqualValues(t, 1, q2Count)
}

func TestUpdateWithQuestions_InsertAndDeleteReconciles(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	survey := seedSurvey(t, db,
		model.Question{OrderNumber: 1, Name: "Old", Type: model.QuestionTypeOpen, Options: opts()},
		model.Question{OrderNumber: 2, Name: "Kept", Type: model.QuestionTypeOpen, Options: opts()},
	)
	removed, kept := survey.Questions[0], survey.Questions[1]
	addAnswer(t, db, survey.ID, removed.ID, "stale")
	addAnswer(t, db, survey.ID, kept.ID, "still here")

	future := time.Now().Add(24 * time.Hour)
	updated, err := repo.UpdateWithQuestions(survey.ID, "Renamed", &future, []model.Question{
		{ID: kept.ID, OrderNumber: 1, Name: "Kept moved up", Type: model.QuestionTypeOpen, Options: opts()},
		{OrderNumber: 2, Name: "Brand new", Type: model.QuestionTypeRadio, Options: opts("X", "Y")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.ExpireDate)
	assert.WithinDuration(t, future, *updated.ExpireDate, time.Second)

	loaded, err := repo.FindByIDWithQuestions(survey.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	// Dense 1..N order numbers matching submission order.
	assert.Equal(t, 1, loaded.Questions[0].OrderNumber)
	assert.Equal(t, kept.ID, loaded.Questions[0].ID)
	assert.Equal(t, "Kept moved up", loaded.Questions[0].Name)
	assert.Equal(t, 2, loaded.Questions[1].OrderNumber)
	assert.Equal(t, "Brand new", loaded.Questions[1].Name)
	assert.Equal(t, []string{"X", "Y"}, []string(loaded.Questions[1].Options))

	// The removed question is gone, answers first.
	var staleQuestions, staleAnswers int64
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", removed.ID).Count(&staleQuestions).Error)
	require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", removed.ID).Count(&staleAnswers).Error)
	assert.Zero(t, staleQuestions)
	assert.Zero(t, staleAnswers)

	var keptAnswers int64
	require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", kept.ID).Count(&keptAnswers).Error)
	assert.EqualValues(t, 1, keptAnswers)
}

func TestUpdateWithQuestions_TypeChangeKeepsAnswers(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	survey := seedSurvey(t, db,
		model.Question{OrderNumber: 1, Name: "Freeform", Type: model.QuestionTypeOpen, Options: opts()},
	)
	q := survey.Questions[0]
	addAnswer(t, db, survey.ID, q.ID, "anything at all")

	// open -> radio is just an option diff against an empty stored list,
	// so the prior free-text answer survives.
	_, err := repo.UpdateWithQuestions(survey.ID, "Seed", nil, []model.Question{
		{ID: q.ID, OrderNumber: 1, Name: "Freeform", Type: model.QuestionTypeRadio, Options: opts("yes", "no")},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateWithQuestions_NotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	_, err := repo.UpdateWithQuestions(4242, "Missing", nil, []model.Question{
		{OrderNumber: 1, Name: "Q", Type: model.QuestionTypeOpen, Options: opts()},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete_Cascades(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	survey := seedSurvey(t, db,
		model.Question{OrderNumber: 1, Name: "Q1", Type: model.QuestionTypeOpen, Options: opts()},
		model.Question{OrderNumber: 2, Name: "Q2", Type: model.QuestionTypeRadio, Options: opts("A")},
	)
	addAnswer(t, db, survey.ID, survey.Questions[0].ID, "one")
	addAnswer(t, db, survey.ID, survey.Questions[1].ID, "A")

	deleted, err := repo.Delete(survey.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var surveys, questions, answers int64
	require.NoError(t, db.Model(&model.Survey{}).Where("id = ?", survey.ID).Count(&surveys).Error)
	require.NoError(t, db.Model(&model.Question{}).Where("survey_id = ?", survey.ID).Count(&questions).Error)
	require.NoError(t, db.Model(&model.Answer{}).Where("survey_id = ?", survey.ID).Count(&answers).Error)
	assert.Zero(t, surveys)
	assert.Zero(t, questions)
	assert.Zero(t, answers)
}

func TestDelete_MissingSurvey(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	deleted, err := repo.Delete(999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFindByUser_NewestFirst(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewSurveyRepository(db)

	older := &model.Survey{
		UserID:      1,
		Title:       "Older",
		CreatedDate: time.Now().Add(-2 * time.Hour),
		Questions:   []model.Question{{OrderNumber: 1, Name: "Q", Type: model.QuestionTypeOpen, Options: opts()}},
	}
	newer := &model.Survey{
		UserID:      1,
		Title:       "Newer",
		CreatedDate: time.Now().Add(-1 * time.Hour),
		Questions:   []model.Question{{OrderNumber: 1, Name: "Q", Type: model.QuestionTypeOpen, Options: opts()}},
	}
	foreign := &model.Survey{
		UserID:    2,
		Title:     "Someone else's",
		Questions: []model.Question{{OrderNumber: 1, Name: "Q", Type: model.QuestionTypeOpen, Options: opts()}},
	}
	require.NoError(t, repo.CreateWithQuestions(older))
	require.NoError(t, repo.CreateWithQuestions(newer))
	require.NoError(t, repo.CreateWithQuestions(foreign))

	surveys, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, "Newer", surveys[0].Title)
	assert.Equal(t, "Older", surveys[1].Title)
}
