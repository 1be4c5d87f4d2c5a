package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	DefaultCurrency string
	LogLevel        string
	AppDataDir      string

	Accounts     int
	Types        int
	Transactions int
	Schedules    int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
		{"Accounts", fmt.Sprint(data.Accounts)},
		{"Transaction Types", fmt.Sprint(data.Types)},
		{"Transactions", fmt.Sprint(data.Transactions)},
		{"Scheduled Transactions", fmt.Sprint(data.Schedules)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
