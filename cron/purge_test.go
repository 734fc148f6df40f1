package cron

import (
	"context"
	"testing"
	"time"

	reservationRepo "catering/database/repository/reservation"
	"catering/models"
	"catering/services/online"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPurgeJobDisabled(t *testing.T) {
	c, err := StartPurgeJob("", time.UTC, &online.DefaultOnlineService{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestStartPurgeJobRejectsBadSchedule(t *testing.T) {
	_, err := StartPurgeJob("every now and then", time.UTC, &online.DefaultOnlineService{})
	assert.Error(t, err)
}

func TestStartPurgeJobSchedules(t *testing.T) {
	c, err := StartPurgeJob("0 3 * * *", time.UTC, &online.DefaultOnlineService{})
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}

func TestRunPurgeRemovesLapsedRows(t *testing.T) {
	staged := reservationRepo.NewMemoryStagedRepo()
	ctx := context.Background()
	for _, d := range []string{"2024-06-01", "2024-06-09", "2024-06-10"} {
		require.NoError(t, staged.Create(ctx, &models.StagedReservation{Name: "x", ReservationDate: d, Pax: 1}))
	}
	svc := &online.DefaultOnlineService{
		Official: reservationRepo.NewMemoryReservationRepo(),
		Staged:   staged,
		Location: time.UTC,
	}

	RunPurge(ctx, svc, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))

	rows, err := staged.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06-09", rows[0].ReservationDate)
}
