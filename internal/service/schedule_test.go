package service_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rentInput() service.ScheduleInput {
	return service.ScheduleInput{
		Name:    "Rent",
		Account: "Checking",
		Type:    "Housing",
		DueDay:  1,
		Payment: dec("1200"),
	}
}

func TestScheduleService_AddSchedule(t *testing.T) {
	svc, repo := newTestService(t)

	expectReferences(repo, "Checking", "Housing")
	repo.EXPECT().ScheduleExists("Rent").Return(false, nil)
	repo.EXPECT().AddScheduledTransaction(gomock.Any()).DoAndReturn(func(st *model.ScheduledTransaction) (int64, error) {
		assert.Equal(t, model.FrequencyMonthly, st.Frequency)
		return 4, nil
	})

	st, err := svc.Schedule.AddSchedule(rentInput())
	require.NoError(t, err)
	assert.Equal(t, int64(4), st.ID)
	assert.Equal(t, 1, st.DueDay)
}

func TestScheduleService_AddSchedule_Invalid(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		svc, repo := newTestService(t)
		expectReferences(repo, "Checking", "Housing")
		repo.EXPECT().ScheduleExists("Rent").Return(true, nil)

		_, err := svc.Schedule.AddSchedule(rentInput())
		assert.ErrorIs(t, err, store.ErrScheduleExists)
	})

	t.Run("due day out of range", func(t *testing.T) {
		svc, _ := newTestService(t)
		in := rentInput()
		in.DueDay = 32
		_, err := svc.Schedule.AddSchedule(in)
		assert.ErrorIs(t, err, validation.ErrInvalidDueDay)
	})

	t.Run("unsupported frequency", func(t *testing.T) {
		svc, _ := newTestService(t)
		in := rentInput()
		in.Frequency = "Weekly"
		_, err := svc.Schedule.AddSchedule(in)
		assert.Error(t, err)
	})

	t.Run("frequency matched case-insensitively", func(t *testing.T) {
		svc, repo := newTestService(t)
		in := rentInput()
		in.Frequency = "monthly"
		expectReferences(repo, "Checking", "Housing")
		repo.EXPECT().ScheduleExists("Rent").Return(false, nil)
		repo.EXPECT().AddScheduledTransaction(gomock.Any()).Return(int64(1), nil)

		st, err := svc.Schedule.AddSchedule(in)
		require.NoError(t, err)
		assert.Equal(t, model.FrequencyMonthly, st.Frequency)
	})
}

func TestScheduleService_EditSchedule(t *testing.T) {
	current := &model.ScheduledTransaction{ID: 9, ScheduleName: "Rent", Account: "Checking", Type: "Housing", Frequency: model.FrequencyMonthly, DueDay: 1, PaymentAmount: dec("1200")}

	t.Run("keeps name", func(t *testing.T) {
		svc, repo := newTestService(t)
		in := rentInput()
		in.DueDay = 5

		expectReferences(repo, "Checking", "Housing")
		repo.EXPECT().GetScheduledTransaction("Rent").Return(current, nil)
		repo.EXPECT().UpdateScheduledTransaction("Rent", gomock.Any()).Return(nil)

		st, err := svc.Schedule.EditSchedule("Rent", in)
		require.NoError(t, err)
		assert.Equal(t, int64(9), st.ID)
		assert.Equal(t, 5, st.DueDay)
	})

	t.Run("rename onto existing", func(t *testing.T) {
		svc, repo := newTestService(t)
		in := rentInput()
		in.Name = "Mortgage"

		expectReferences(repo, "Checking", "Housing")
		repo.EXPECT().GetScheduledTransaction("Rent").Return(current, nil)
		repo.EXPECT().ScheduleExists("Mortgage").Return(true, nil)

		_, err := svc.Schedule.EditSchedule("Rent", in)
		assert.ErrorIs(t, err, store.ErrScheduleExists)
	})

	t.Run("missing schedule", func(t *testing.T) {
		svc, repo := newTestService(t)

		expectReferences(repo, "Checking", "Housing")
		repo.EXPECT().GetScheduledTransaction("Gym").Return(nil, store.ErrRecordNotFound)

		_, err := svc.Schedule.EditSchedule("Gym", rentInput())
		assert.True(t, service.IsNotFound(err))
	})
}

func TestScheduleService_GetAllSchedules_SortedByDueDay(t *testing.T) {
	svc, repo := newTestService(t)
	repo.EXPECT().ListScheduledTransactions().Return([]*model.ScheduledTransaction{
		{ScheduleName: "Phone", DueDay: 20},
		{ScheduleName: "Rent", DueDay: 1},
		{ScheduleName: "Internet", DueDay: 20},
	}, nil)

	schedules, err := svc.Schedule.GetAllSchedules()
	require.NoError(t, err)

	var names []string
	for _, st := range schedules {
		names = append(names, st.ScheduleName)
	}
	assert.Equal(t, []string{"Rent", "Internet", "Phone"}, names)
}

func TestScheduleService_SearchSchedules(t *testing.T) {
	svc, repo := newTestService(t)
	repo.EXPECT().ListScheduledTransactions().Return([]*model.ScheduledTransaction{
		{ScheduleName: "Car Insurance", DueDay: 12},
		{ScheduleName: "Rent", DueDay: 1},
	}, nil)

	schedules, err := svc.Schedule.SearchSchedules("insur")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Car Insurance", schedules[0].ScheduleName)
}

func TestDueThisMonth(t *testing.T) {
	schedules := []*model.ScheduledTransaction{
		{ScheduleName: "Rent", DueDay: 1},
		{ScheduleName: "Phone", DueDay: 15},
		{ScheduleName: "Gym", DueDay: 16},
	}

	due := service.DueThisMonth(schedules, 15)
	require.Len(t, due, 2)
	assert.Equal(t, "Phone", due[1].ScheduleName)
}

func TestDueThisMonth_IgnoresOutOfRangeDueDay(t *testing.T) {
	schedules := []*model.ScheduledTransaction{
		{ScheduleName: "Rent", DueDay: 1},
		{ScheduleName: "Broken", DueDay: 40},
	}

	due := service.DueThisMonth(schedules, 99)
	require.Len(t, due, 1)
	assert.Equal(t, "Rent", due[0].ScheduleName)
}

func TestDueToday(t *testing.T) {
	schedules := []*model.ScheduledTransaction{
		{ScheduleName: "Rent", DueDay: 1},
		{ScheduleName: "Phone", DueDay: 15},
		{ScheduleName: "Internet", DueDay: 15},
		{ScheduleName: "Gym", DueDay: 16},
	}

	due := service.DueToday(schedules, 15)
	require.Len(t, due, 2)
	assert.Equal(t, "Phone", due[0].ScheduleName)
	assert.Equal(t, "Internet", due[1].ScheduleName)

	assert.Empty(t, service.DueToday(schedules, 2))
}
