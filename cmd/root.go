package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/clevercash/cmd/account"
	"github.com/hance08/clevercash/cmd/schedule"
	"github.com/hance08/clevercash/cmd/transaction"
	"github.com/hance08/clevercash/cmd/txtype"
	"github.com/hance08/clevercash/internal/app"
	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/constants"
	"github.com/hance08/clevercash/internal/errhandler"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CLEVERCASH"

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	os.Exit(run(migrations, os.Args[1:]))
}

func run(migrations fs.FS, args []string) int {
	if err := loadDotEnv(".env"); err != nil {
		return errhandler.HandleError(err)
	}

	cfgFile = configFlagFromArgs(args)
	if err := initConfig(); err != nil {
		return errhandler.HandleError(err)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return errhandler.HandleError(err)
	}
	defer cleanup()

	if err := initCatalog(application.Service); err != nil {
		return errhandler.HandleError(err)
	}

	rootCmd := NewRootCmd(application)
	rootCmd.SetArgs(args)

	return errhandler.HandleError(rootCmd.Execute())
}

func NewRootCmd(application *app.App) *cobra.Command {
	svc := application.Service

	rootCmd := &cobra.Command{
		Use:   "clevercash",
		Short: "clevercash is a CLI based personal budget tracker",
		Long: `clevercash tracks accounts, one-off transactions and recurring monthly
payments, and shows where the money goes this month and this year.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", cfgFile, "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(txtype.NewTypeCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))
	rootCmd.AddCommand(schedule.NewScheduleCmd(svc))

	rootCmd.AddCommand(NewDashboardCmd(svc))
	rootCmd.AddCommand(NewReportCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(application))

	return rootCmd
}

// configFlagFromArgs finds --config/-c before cobra parses the command line,
// since the database has to be opened before the command tree is built.
func configFlagFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

// loadDotEnv exports the variables of an optional .env file. Variables
// already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// initCatalog runs the first-run setup: the default currency wizard and the
// default transaction types.
func initCatalog(svc *service.Service) error {
	if viper.GetString("defaults.currency") == "" {
		currency, err := initWizard()
		if err != nil {
			return err
		}
		cfg.Defaults.Currency = currency
	}

	if _, err := svc.TransactionType.SeedDefaults(constants.DefaultTransactionTypes); err != nil {
		return fmt.Errorf("failed to create default transaction types: %w", err)
	}

	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override
	for _, key := range []string{"database.path", "defaults.currency", "log.level"} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	if viper.GetString("defaults.currency") == "" {
		// The first-run wizard fills it in; validate the rest meanwhile.
		probe := *cfg
		probe.Defaults.Currency = config.NewDefault().Defaults.Currency
		return probe.Validate()
	}
	return cfg.Validate()
}

func initWizard() (string, error) {
	currency, err := prompts.PromptInitCurrency(config.NewDefault().Defaults.Currency)
	if err != nil {
		return "", err
	}

	viper.Set("defaults.currency", currency)

	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return "", fmt.Errorf("failed to save config to file: %w", err)
		}
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return currency, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaults := config.NewDefault()
	v := viper.New()
	v.Set("database.path", defaults.Database.Path)
	v.Set("log.level", defaults.Log.Level)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
