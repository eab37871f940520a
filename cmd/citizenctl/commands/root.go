package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CitizenClient/internal/app"
	"github.com/m04kA/SMC-CitizenClient/internal/config"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
)

// state общие для всех команд зависимости, создаются в PersistentPreRunE
type state struct {
	configPath string
	verbose    bool

	out io.Writer
	app *app.App
	log *logger.Logger
}

// New корневая команда citizenctl
func New() *cobra.Command {
	s := &state{out: os.Stdout}

	cmd := &cobra.Command{
		Use:           "citizenctl",
		Short:         "Command line client for city citizen services",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.out = cmd.OutOrStdout()
			return s.init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
	}

	cmd.PersistentFlags().StringVar(&s.configPath, "config", "config.toml", "path to config file")
	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "write debug logs to stderr")

	cmd.AddCommand(
		newLoginCommand(s),
		newLogoutCommand(s),
		newWhoamiCommand(s),
		newNotificationsCommand(s),
		newBookingsCommand(s),
	)
	return cmd
}

func (s *state) init(ctx context.Context) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if s.verbose {
		level = "debug"
	}
	log, err := logger.New("", level, logger.WithFormat("text"), logger.WithOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	s.log = log

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, log, nil)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	s.app = a
	return nil
}

func (s *state) close() {
	if s.app != nil {
		s.app.Close()
	}
	if s.log != nil {
		_ = s.log.Close()
	}
}

// requestContext контекст одного обращения к API
func (s *state) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, time.Duration(s.app.Config.API.Timeout)*time.Second)
}
