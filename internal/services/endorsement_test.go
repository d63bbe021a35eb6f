package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestEndorsementService_Endorse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockReader := services.NewMockEndorsementReader(ctrl)
	mockWriter := services.NewMockEndorsementWriter(ctrl)
	mockCounter := services.NewMockEndorsementCounter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewEndorsementService(mockSkillRead, mockReader, mockWriter, mockCounter, mockNotif, mockEvents, runOnCommit)

	ownerID := uuid.New()
	endorserID := uuid.New()

	t.Run("successful endorsement", func(t *testing.T) {
		skillID := uuid.New()

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID, Name: "Go"}, nil)
		mockWriter.EXPECT().
			Upsert(gomock.Any(), skillID, endorserID, "great code reviews").
			Return(uuid.New(), nil)
		mockCounter.EXPECT().
			IncrementEndorsementCount(gomock.Any(), skillID).
			Return(nil)
		mockNotif.EXPECT().
			Save(gomock.Any(), ownerID, models.NotificationEndorsement, gomock.Any(), &skillID, &endorserID).
			Return(nil)
		mockEvents.EXPECT().
			Publish(gomock.Any(), models.EventEndorsement, ownerID, &skillID, gomock.Any())

		err := svc.Endorse(context.Background(), skillID, endorserID, "great code reviews")
		assert.NoError(t, err)
	})

	t.Run("own skill", func(t *testing.T) {
		skillID := uuid.New()

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: endorserID}, nil)

		err := svc.Endorse(context.Background(), skillID, endorserID, "")
		assert.ErrorIs(t, err, services.ErrCannotEndorseOwnSkill)
	})

	t.Run("skill not found", func(t *testing.T) {
		skillID := uuid.New()

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(nil, sql.ErrNoRows)

		err := svc.Endorse(context.Background(), skillID, endorserID, "")
		assert.ErrorIs(t, err, services.ErrSkillNotFound)
	})

	t.Run("upsert error", func(t *testing.T) {
		skillID := uuid.New()
		dbErr := errors.New("db error")

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID}, nil)
		mockWriter.EXPECT().
			Upsert(gomock.Any(), skillID, endorserID, "").
			Return(uuid.Nil, dbErr)

		err := svc.Endorse(context.Background(), skillID, endorserID, "")
		assert.EqualError(t, err, dbErr.Error())
	})
}

func TestEndorsementService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockReader := services.NewMockEndorsementReader(ctrl)
	mockWriter := services.NewMockEndorsementWriter(ctrl)
	mockCounter := services.NewMockEndorsementCounter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewEndorsementService(mockSkillRead, mockReader, mockWriter, mockCounter, mockNotif, mockEvents, runOnCommit)

	t.Run("lists endorsements", func(t *testing.T) {
		skillID := uuid.New()
		rows := []models.EndorsementDB{
			{EndorsementID: uuid.New(), SkillID: skillID, EndorserID: uuid.New()},
			{EndorsementID: uuid.New(), SkillID: skillID, EndorserID: uuid.New()},
		}

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID}, nil)
		mockReader.EXPECT().
			ListBySkillID(gomock.Any(), skillID).
			Return(rows, nil)

		got, err := svc.List(context.Background(), skillID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("skill not found", func(t *testing.T) {
		skillID := uuid.New()

		mockSkillRead.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(nil, sql.ErrNoRows)

		got, err := svc.List(context.Background(), skillID)
		assert.ErrorIs(t, err, services.ErrSkillNotFound)
		assert.Nil(t, got)
	})
}
