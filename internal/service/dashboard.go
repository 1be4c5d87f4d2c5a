package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/logic/dashboard"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/store"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	repo   store.Repository
	config *config.Config
	logger *log.Logger
}

func NewDashboardService(repo store.Repository, cfg *config.Config, logger *log.Logger) *DashboardService {
	return &DashboardService{repo: repo, config: cfg, logger: logger.WithComponent(log.ComponentDashboard)}
}

// Dashboard is everything the dashboard screen shows for one day.
type Dashboard struct {
	Today            time.Time
	Currency         string
	AccountCount     int
	TransactionCount int
	ScheduleCount    int

	Snapshot dashboard.Snapshot
	Trend    dashboard.Trend
	// HasTrend is false when there are no transactions to anchor the trend.
	HasTrend   bool
	TypeTotals []model.TypeTotal
	// DueToday lists the schedules whose due day is today's day of month.
	DueToday []*model.ScheduledTransaction
}

// Load reads accounts, transactions, schedules and the type catalog in
// parallel and aggregates them for today.
func (ds *DashboardService) Load(ctx context.Context, today time.Time) (*Dashboard, error) {
	var (
		accounts     []*model.Account
		transactions []*model.Transaction
		schedules    []*model.ScheduledTransaction
		types        []*model.TransactionType
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		accounts, err = ds.repo.ListAccounts()
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		transactions, err = ds.repo.ListTransactions()
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		schedules, err = ds.repo.ListScheduledTransactions()
		if err != nil {
			return fmt.Errorf("failed to load scheduled transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		types, err = ds.repo.ListTransactionTypes()
		if err != nil {
			return fmt.Errorf("failed to load transaction types: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	trend, hasTrend := dashboard.MonthlyExpenseTrend(transactions, schedules, today)
	totals := dashboard.TransactionTypeTotals(transactions)

	d := &Dashboard{
		Today:            model.DateOf(today),
		AccountCount:     len(accounts),
		TransactionCount: len(transactions),
		ScheduleCount:    len(schedules),
		Snapshot:         dashboard.CurrentMonthSnapshot(transactions, schedules, today),
		Trend:            trend,
		HasTrend:         hasTrend,
		TypeTotals:       dashboard.TypeTotalsWithCatalog(typeNames(types), totals),
		DueToday:         DueToday(schedules, today.Day()),
	}
	if ds.config != nil {
		d.Currency = ds.config.Defaults.Currency
	}

	ds.logger.Debug("dashboard loaded",
		log.FieldOperation, log.OpLoad,
		"transactions", d.TransactionCount,
		"schedules", d.ScheduleCount,
		"due_today", len(d.DueToday),
		"has_trend", d.HasTrend,
	)
	return d, nil
}
