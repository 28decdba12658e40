package service

import (
	"context"
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_FallsBackToDefaults(t *testing.T) {
	svc := newTestEnv(t).settings

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, got.WeekStartDay)
	assert.Equal(t, 6, got.GridStartHour)
	assert.Equal(t, 24, got.GridEndHour)
}

func TestSettingsService_Update(t *testing.T) {
	svc := newTestEnv(t).settings
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, &domain.Settings{WeekStartDay: time.Monday, GridStartHour: 8, GridEndHour: 22}))
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, got.WeekStartDay)
	assert.Equal(t, 8, got.GridStartHour)
	assert.False(t, got.UpdatedAt.IsZero())

	err = svc.Update(ctx, &domain.Settings{WeekStartDay: time.Monday, GridStartHour: 22, GridEndHour: 8})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
