// Command dienstplan converts the OCR text of a weekly roster PDF into an
// iCalendar file.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"dienstplan/internal/config"
	appLog "dienstplan/internal/log"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the effective configuration from the root command's
// pre-run hook to the subcommands.
type app struct {
	configPath string
	logLevel   string
	timezone   string
	encoding   string

	conf *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dienstplan",
		Short: "Convert OCR text of a weekly roster into an iCalendar file",
		Long: `dienstplan reads the text that OCR produced from a German weekly roster
("Wochenübersicht DD.MM.YY bis DD.MM.YY", one block per weekday) and writes
one calendar entry per shift ("Kurs <n> Start: HH:MM - Ende: HH:MM") and per
all-day marker ("Frei", "Urlaub Wochenende").

Without a subcommand it behaves like "convert".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (missing file means defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.timezone, "timezone", "", "IANA timezone of the roster times (overrides config)")
	root.PersistentFlags().StringVar(&a.encoding, "encoding", "", "character set of the OCR text (overrides config)")

	convert := newConvertCmd(a)
	root.RunE = convert.RunE
	root.Flags().AddFlagSet(convert.Flags())

	root.AddCommand(
		convert,
		newInspectCmd(a),
		newListCmd(a),
		newInitConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// load reads the config file and applies persistent flag overrides.
func (a *app) load(cmd *cobra.Command) error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", a.configPath)
		return err
	}

	if a.logLevel != "" {
		conf.LogLevel = a.logLevel
	}
	if a.timezone != "" {
		conf.Timezone = a.timezone
	}
	if a.encoding != "" {
		conf.Encoding = a.encoding
	}

	level, err := appLog.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	appLog.SetLevel(level)

	appLog.Debug("effective config",
		"command", cmd.Name(),
		"input", conf.Input,
		"output", conf.Output,
		"encoding", conf.Encoding,
		"timezone", conf.Timezone,
		"person", conf.Person,
	)

	a.conf = conf
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
