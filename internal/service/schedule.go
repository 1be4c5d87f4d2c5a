package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/shopspring/decimal"
)

type ScheduleService struct {
	repo   store.Repository
	logger *log.Logger
}

func NewScheduleService(repo store.Repository, logger *log.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, logger: logger.WithComponent(log.ComponentSchedule)}
}

type ScheduleInput struct {
	Name      string
	Account   string
	Type      string
	Frequency string
	DueDay    int
	Payment   decimal.Decimal
}

func (ss *ScheduleService) AddSchedule(in ScheduleInput) (*model.ScheduledTransaction, error) {
	st, err := ss.buildSchedule(in)
	if err != nil {
		return nil, err
	}

	exists, err := ss.repo.ScheduleExists(st.ScheduleName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("schedule '%s': %w", st.ScheduleName, store.ErrScheduleExists)
	}

	id, err := ss.repo.AddScheduledTransaction(st)
	if err != nil {
		return nil, err
	}
	st.ID = id

	ss.logger.Info("schedule added", log.FieldOperation, log.OpCreate, log.FieldName, st.ScheduleName)
	return st, nil
}

// EditSchedule replaces the schedule called oldName. When the name changes
// the new name must not belong to another schedule.
func (ss *ScheduleService) EditSchedule(oldName string, in ScheduleInput) (*model.ScheduledTransaction, error) {
	st, err := ss.buildSchedule(in)
	if err != nil {
		return nil, err
	}

	current, err := ss.repo.GetScheduledTransaction(oldName)
	if err != nil {
		return nil, err
	}

	if st.ScheduleName != current.ScheduleName {
		exists, err := ss.repo.ScheduleExists(st.ScheduleName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("schedule '%s': %w", st.ScheduleName, store.ErrScheduleExists)
		}
	}

	if err := ss.repo.UpdateScheduledTransaction(oldName, st); err != nil {
		return nil, err
	}
	st.ID = current.ID

	ss.logger.Info("schedule updated", log.FieldOperation, log.OpUpdate, log.FieldName, st.ScheduleName)
	return st, nil
}

func (ss *ScheduleService) DeleteSchedule(name string) error {
	if err := ss.repo.DeleteScheduledTransaction(name); err != nil {
		return err
	}
	ss.logger.Info("schedule deleted", log.FieldOperation, log.OpDelete, log.FieldName, name)
	return nil
}

func (ss *ScheduleService) ClearSchedules() (int64, error) {
	n, err := ss.repo.ClearScheduledTransactions()
	if err != nil {
		return 0, err
	}
	ss.logger.Info("schedules cleared", log.FieldOperation, log.OpClear, log.FieldCount, n)
	return n, nil
}

func (ss *ScheduleService) GetSchedule(name string) (*model.ScheduledTransaction, error) {
	return ss.repo.GetScheduledTransaction(name)
}

// GetAllSchedules returns the schedules ordered by due day, then name.
func (ss *ScheduleService) GetAllSchedules() ([]*model.ScheduledTransaction, error) {
	schedules, err := ss.repo.ListScheduledTransactions()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(schedules, func(i, j int) bool {
		if schedules[i].DueDay != schedules[j].DueDay {
			return schedules[i].DueDay < schedules[j].DueDay
		}
		return schedules[i].ScheduleName < schedules[j].ScheduleName
	})
	return schedules, nil
}

// SearchSchedules matches text against schedule names, ignoring case.
func (ss *ScheduleService) SearchSchedules(text string) ([]*model.ScheduledTransaction, error) {
	schedules, err := ss.GetAllSchedules()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	matched := make([]*model.ScheduledTransaction, 0, len(schedules))
	for _, st := range schedules {
		if strings.Contains(strings.ToLower(st.ScheduleName), needle) {
			matched = append(matched, st)
		}
	}
	return matched, nil
}

// DueThisMonth returns the schedules whose due day is on or before day,
// the ones already counted in the current month. Due days past
// model.MaxDueDay are never due.
func DueThisMonth(schedules []*model.ScheduledTransaction, day int) []*model.ScheduledTransaction {
	var due []*model.ScheduledTransaction
	for _, st := range schedules {
		if st.DueDay <= model.MaxDueDay && st.DueDay <= day {
			due = append(due, st)
		}
	}
	return due
}

// DueToday returns the schedules falling due exactly on day.
func DueToday(schedules []*model.ScheduledTransaction, day int) []*model.ScheduledTransaction {
	var due []*model.ScheduledTransaction
	for _, st := range schedules {
		if st.DueDay <= model.MaxDueDay && st.DueDay == day {
			due = append(due, st)
		}
	}
	return due
}

func (ss *ScheduleService) buildSchedule(in ScheduleInput) (*model.ScheduledTransaction, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	freq := model.FrequencyMonthly
	if strings.TrimSpace(in.Frequency) != "" {
		f, err := model.ParseFrequency(in.Frequency)
		if err != nil {
			return nil, err
		}
		freq = f
	}

	if err := validation.ValidateDueDay(in.DueDay); err != nil {
		return nil, err
	}
	if in.Payment.IsNegative() {
		return nil, validation.ErrInvalidAmount
	}

	account := strings.TrimSpace(in.Account)
	txType := strings.TrimSpace(in.Type)
	if err := checkReferences(ss.repo, account, txType); err != nil {
		return nil, err
	}

	return &model.ScheduledTransaction{
		ScheduleName:  name,
		Account:       account,
		Type:          txType,
		Frequency:     freq,
		DueDay:        in.DueDay,
		PaymentAmount: in.Payment,
	}, nil
}

// IsNotFound reports whether err means the requested record is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrRecordNotFound)
}
