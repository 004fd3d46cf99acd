package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iamvkosarev/bot-designer/config"
	"github.com/iamvkosarev/bot-designer/internal/app"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bot-designer",
		Short: "Design chatbot configurations and save them to the local collection",
		Long: `bot-designer walks through the design of a chatbot (identity, prompt,
model settings, personality, appearance, FAQ and quick replies), validates it
and appends the resulting bot record to the local collection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		"Log level (trace,debug,info,warn,error) (default info)")

	cmd.AddCommand(
		newTelegramCommand(opts),
		newTemplatesCommand(),
		newThemesCommand(),
		newModelsCommand(),
		newBotsCommand(opts),
		newCreateCommand(opts),
	)
	return cmd
}

func (o *rootOptions) complete(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") || levelName == "" {
		levelName = o.logLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.Debug("debug logging enabled")
	return nil
}

func newTelegramCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Run the design wizard as a Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, opts.cfg)
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	// Add some millisecond precision to log timestamps.
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02T15:04:05.999Z07:00"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)

	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Fatal("could not execute root command")
	}
}
