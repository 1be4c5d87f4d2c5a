package cmd

import (
	"os"

	"github.com/hance08/clevercash/internal/app"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and record counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	svc := r.app.Service

	configPath := svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.app.DBPath,
		DBExists:        dbExists,
		DefaultCurrency: svc.Config.Defaults.Currency,
		LogLevel:        svc.Config.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	var err error
	if items.Accounts, err = svc.Account.CountAccounts(); err != nil {
		return err
	}
	types, err := svc.TransactionType.GetAllTypes()
	if err != nil {
		return err
	}
	items.Types = len(types)

	txs, err := svc.Transaction.GetAllTransactions()
	if err != nil {
		return err
	}
	items.Transactions = len(txs)

	schedules, err := svc.Schedule.GetAllSchedules()
	if err != nil {
		return err
	}
	items.Schedules = len(schedules)

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
