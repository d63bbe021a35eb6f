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

func runOnCommit(ctx context.Context, fn func()) { fn() }

func TestApprovalService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	userID := uuid.New()
	ownSkillID := uuid.New()
	foreignSkillID := uuid.New()
	goneSkillID := uuid.New()

	tests := []struct {
		name      string
		skillID   *uuid.UUID
		skillName string
		category  string
		level     string
		isUpdate  bool
		setup     func()
		wantErr   error
	}{
		{
			name:      "new skill accepted",
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     models.LevelBeginner,
			setup: func() {
				mockPendingWrite.EXPECT().
					Save(gomock.Any(), userID, (*uuid.UUID)(nil), "Kubernetes", "DevOps", models.LevelBeginner, gomock.Any(), false).
					Return(uuid.New(), nil)
			},
		},
		{
			name:      "empty name rejected",
			skillName: "",
			category:  "DevOps",
			level:     models.LevelBeginner,
			setup:     func() {},
			wantErr:   services.ErrInvalidSubmission,
		},
		{
			name:      "unknown level rejected",
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     "guru",
			setup:     func() {},
			wantErr:   services.ErrInvalidSubmission,
		},
		{
			name:      "update of own skill accepted",
			skillID:   &ownSkillID,
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     models.LevelExpert,
			isUpdate:  true,
			setup: func() {
				mockSkillRead.EXPECT().
					GetByID(gomock.Any(), ownSkillID).
					Return(&models.SkillDB{SkillID: ownSkillID, UserID: userID}, nil)
				mockPendingWrite.EXPECT().
					Save(gomock.Any(), userID, &ownSkillID, "Kubernetes", "DevOps", models.LevelExpert, gomock.Any(), true).
					Return(uuid.New(), nil)
			},
		},
		{
			name:      "update without target rejected",
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     models.LevelExpert,
			isUpdate:  true,
			setup:     func() {},
			wantErr:   services.ErrInvalidSubmission,
		},
		{
			name:      "update of someone else's skill rejected",
			skillID:   &foreignSkillID,
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     models.LevelExpert,
			isUpdate:  true,
			setup: func() {
				mockSkillRead.EXPECT().
					GetByID(gomock.Any(), foreignSkillID).
					Return(&models.SkillDB{SkillID: foreignSkillID, UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrInvalidSubmission,
		},
		{
			name:      "update of vanished skill",
			skillID:   &goneSkillID,
			skillName: "Kubernetes",
			category:  "DevOps",
			level:     models.LevelExpert,
			isUpdate:  true,
			setup: func() {
				mockSkillRead.EXPECT().
					GetByID(gomock.Any(), goneSkillID).
					Return(nil, sql.ErrNoRows)
			},
			wantErr: services.ErrTargetSkillGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			pendingID, err := svc.Submit(context.Background(), userID, tt.skillID, tt.skillName, tt.category, tt.level, nil, tt.isUpdate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, pendingID)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, pendingID)
			}
		})
	}
}

func TestApprovalService_Approve_NewSkill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	pendingID := uuid.New()
	reviewerID := uuid.New()
	userID := uuid.New()
	skillID := uuid.New()

	row := &models.PendingSkillUpdateDB{
		PendingID: pendingID,
		UserID:    userID,
		Name:      "Terraform",
		Category:  "DevOps",
		Level:     models.LevelIntermediate,
		Status:    models.StatusApproved,
	}

	mockPendingWrite.EXPECT().
		ClaimReview(gomock.Any(), pendingID, reviewerID, models.StatusApproved, (*string)(nil)).
		Return(row, nil)
	mockSkillWrite.EXPECT().
		Save(gomock.Any(), userID, "Terraform", "DevOps", models.LevelIntermediate, gomock.Any(), gomock.Any()).
		Return(skillID, nil)
	mockHistory.EXPECT().
		Save(gomock.Any(), skillID, (*string)(nil), models.LevelIntermediate, gomock.Any()).
		Return(nil)
	mockNotif.EXPECT().
		Save(gomock.Any(), userID, models.NotificationAchievement, gomock.Any(), &skillID, &reviewerID).
		Return(nil)
	mockSkillRead.EXPECT().
		GetByID(gomock.Any(), skillID).
		Return(&models.SkillDB{SkillID: skillID, UserID: userID, Name: "Terraform", Level: models.LevelIntermediate}, nil)
	mockEvents.EXPECT().
		Publish(gomock.Any(), models.EventSkillApproved, userID, &skillID, gomock.Any())

	skill, err := svc.Approve(context.Background(), pendingID, reviewerID, nil)
	assert.NoError(t, err)
	assert.Equal(t, skillID, skill.SkillID)
}

func TestApprovalService_Approve_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	pendingID := uuid.New()
	reviewerID := uuid.New()
	userID := uuid.New()
	skillID := uuid.New()
	notes := "looks solid"

	row := &models.PendingSkillUpdateDB{
		PendingID: pendingID,
		UserID:    userID,
		SkillID:   &skillID,
		Name:      "Go",
		Category:  "Backend",
		Level:     models.LevelExpert,
		IsUpdate:  true,
		Status:    models.StatusApproved,
	}
	prev := models.LevelIntermediate

	mockPendingWrite.EXPECT().
		ClaimReview(gomock.Any(), pendingID, reviewerID, models.StatusApproved, &notes).
		Return(row, nil)
	mockSkillRead.EXPECT().
		GetByID(gomock.Any(), skillID).
		Return(&models.SkillDB{SkillID: skillID, UserID: userID, Name: "Go", Level: prev}, nil)
	mockSkillWrite.EXPECT().
		Update(gomock.Any(), skillID, &row.Name, &row.Category, &row.Level, gomock.Any(), gomock.Any()).
		Return(nil)
	mockHistory.EXPECT().
		Save(gomock.Any(), skillID, &prev, models.LevelExpert, gomock.Any()).
		Return(nil)
	mockNotif.EXPECT().
		Save(gomock.Any(), userID, models.NotificationLevelUp, gomock.Any(), &skillID, &reviewerID).
		Return(nil)
	mockSkillRead.EXPECT().
		GetByID(gomock.Any(), skillID).
		Return(&models.SkillDB{SkillID: skillID, UserID: userID, Name: "Go", Level: models.LevelExpert}, nil)
	mockEvents.EXPECT().
		Publish(gomock.Any(), models.EventSkillApproved, userID, &skillID, gomock.Any())

	skill, err := svc.Approve(context.Background(), pendingID, reviewerID, &notes)
	assert.NoError(t, err)
	assert.Equal(t, models.LevelExpert, skill.Level)
}

func TestApprovalService_Approve_MissingAndAlreadyReviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	reviewerID := uuid.New()

	tests := []struct {
		name    string
		lookup  func(pendingID uuid.UUID)
		wantErr error
	}{
		{
			name: "row vanished",
			lookup: func(pendingID uuid.UUID) {
				mockPendingRead.EXPECT().
					GetByID(gomock.Any(), pendingID).
					Return(nil, sql.ErrNoRows)
			},
			wantErr: services.ErrPendingNotFound,
		},
		{
			name: "already reviewed by someone else",
			lookup: func(pendingID uuid.UUID) {
				mockPendingRead.EXPECT().
					GetByID(gomock.Any(), pendingID).
					Return(&models.PendingSkillUpdateDB{PendingID: pendingID, Status: models.StatusRejected}, nil)
			},
			wantErr: services.ErrAlreadyReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pendingID := uuid.New()
			mockPendingWrite.EXPECT().
				ClaimReview(gomock.Any(), pendingID, reviewerID, models.StatusApproved, (*string)(nil)).
				Return(nil, sql.ErrNoRows)
			tt.lookup(pendingID)

			skill, err := svc.Approve(context.Background(), pendingID, reviewerID, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, skill)
		})
	}
}

func TestApprovalService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	pendingID := uuid.New()
	reviewerID := uuid.New()
	userID := uuid.New()
	notes := "duplicate of an existing skill"

	row := &models.PendingSkillUpdateDB{
		PendingID: pendingID,
		UserID:    userID,
		Name:      "Go",
		Category:  "Backend",
		Level:     models.LevelExpert,
		Status:    models.StatusRejected,
	}

	mockPendingWrite.EXPECT().
		ClaimReview(gomock.Any(), pendingID, reviewerID, models.StatusRejected, &notes).
		Return(row, nil)
	mockNotif.EXPECT().
		Save(gomock.Any(), userID, gomock.Any(), gomock.Any(), (*uuid.UUID)(nil), &reviewerID).
		Return(nil)
	mockEvents.EXPECT().
		Publish(gomock.Any(), models.EventSkillRejected, userID, (*uuid.UUID)(nil), gomock.Any())

	err := svc.Reject(context.Background(), pendingID, reviewerID, &notes)
	assert.NoError(t, err)
}

func TestApprovalService_Reject_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPendingRead := services.NewMockPendingReader(ctrl)
	mockPendingWrite := services.NewMockPendingWriter(ctrl)
	mockSkillRead := services.NewMockApprovalSkillReader(ctrl)
	mockSkillWrite := services.NewMockApprovalSkillWriter(ctrl)
	mockHistory := services.NewMockHistoryWriter(ctrl)
	mockNotif := services.NewMockNotificationSaver(ctrl)
	mockEvents := services.NewMockEventPublisher(ctrl)

	svc := services.NewApprovalService(mockPendingRead, mockPendingWrite, mockSkillRead, mockSkillWrite, mockHistory, mockNotif, mockEvents, runOnCommit)

	pendingID := uuid.New()
	reviewerID := uuid.New()
	dbErr := errors.New("db error")

	mockPendingWrite.EXPECT().
		ClaimReview(gomock.Any(), pendingID, reviewerID, models.StatusRejected, (*string)(nil)).
		Return(nil, dbErr)

	err := svc.Reject(context.Background(), pendingID, reviewerID, nil)
	assert.EqualError(t, err, dbErr.Error())
}
