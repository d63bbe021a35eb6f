package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/skilltrack/internal/repositories"
	"github.com/sbilibin2017/skilltrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsService_SkillGaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gaps := []repositories.SkillGapRow{
		{Name: "Go", Category: "Backend", TargetLevel: "expert", Headcount: 5, CurrentCount: 2},
	}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockReportCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().
			GetReport(gomock.Any(), "skill_gaps", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*[]repositories.SkillGapRow) = gaps
				return nil
			})

		got, err := svc.SkillGaps(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, gaps, got)
	})

	t.Run("cache miss reads and refills", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockReportCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().
			GetReport(gomock.Any(), "skill_gaps", gomock.Any()).
			Return(errors.New("cache miss"))
		mockReader.EXPECT().
			SkillGaps(gomock.Any()).
			Return(gaps, nil)
		mockCache.EXPECT().
			SetReport(gomock.Any(), "skill_gaps", gaps).
			Return(nil)

		got, err := svc.SkillGaps(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, gaps, got)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockReportCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().
			GetReport(gomock.Any(), "skill_gaps", gomock.Any()).
			Return(errors.New("cache miss"))
		mockReader.EXPECT().
			SkillGaps(gomock.Any()).
			Return(gaps, nil)
		mockCache.EXPECT().
			SetReport(gomock.Any(), "skill_gaps", gaps).
			Return(errors.New("redis down"))

		got, err := svc.SkillGaps(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, gaps, got)
	})

	t.Run("database error propagates", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockReportCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		dbErr := errors.New("db error")

		mockCache.EXPECT().
			GetReport(gomock.Any(), "skill_gaps", gomock.Any()).
			Return(errors.New("cache miss"))
		mockReader.EXPECT().
			SkillGaps(gomock.Any()).
			Return(nil, dbErr)

		got, err := svc.SkillGaps(context.Background())
		assert.EqualError(t, err, dbErr.Error())
		assert.Nil(t, got)
	})
}
