package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/cmd"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/config"
	"github.com/ballotpaper/go-ballotpaper/config/presets"
	"github.com/ballotpaper/go-ballotpaper/log"
	"github.com/ballotpaper/go-ballotpaper/metrics"
	"github.com/ballotpaper/go-ballotpaper/session"
)

func newCommand(fs afero.Fs) *cobra.Command {
	conf := config.DefaultConfig()
	a := &app{conf: &conf, fs: fs}

	c := &cobra.Command{
		Use:   "ballot",
		Short: "vote on a ranked choice ballot contract",
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if c.Name() == "version" {
				return nil
			}
			if err := configure(c, fs, &conf); err != nil {
				return err
			}
			c.SilenceUsage = true
			return a.start(c.OutOrStdout())
		},
		PersistentPostRunE: func(c *cobra.Command, args []string) error {
			return a.stop()
		},
	}
	cmd.AddFlags(c.PersistentFlags(), &conf)

	c.AddCommand(
		accountCommand(a),
		showCommand(a),
		voteCommand(a),
		watchCommand(a),
		versionCommand(),
	)
	return c
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), cmd.Version)
			if cmd.Commit != "" {
				fmt.Fprintf(c.OutOrStdout(), "+%s", cmd.Commit)
			}
			fmt.Fprintln(c.OutOrStdout())
		},
	}
}

// configure loads the preset and the config file into conf. Flags set on the command line
// take precedence over both.
func configure(c *cobra.Command, fs afero.Fs, conf *config.Config) error {
	changed := map[string]string{}
	persistent := c.Root().PersistentFlags()
	c.Flags().Visit(func(f *pflag.Flag) {
		if persistent.Lookup(f.Name) != nil {
			changed[f.Name] = f.Value.String()
		}
	})
	if err := loadConfig(fs, conf, conf.Preset, conf.ConfigFile); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// apply CLI args to config
	for name, value := range changed {
		if err := persistent.Set(name, value); err != nil {
			return fmt.Errorf("parsing flag %s: %w", name, err)
		}
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	if conf.Logging.Encoder == config.JSONLogEncoder {
		log.JSONLog(true)
	}
	return nil
}

// loadConfig loads config and preset (if provided) into the provided config.
// It first loads the preset and then overrides it with values from the config file.
func loadConfig(fs afero.Fs, cfg *config.Config, preset, path string) error {
	v := viper.New()
	// read in config from file
	if err := config.LoadConfig(fs, path, v); err != nil {
		return err
	}

	// override default config with preset if provided
	if len(preset) == 0 && v.IsSet("preset") {
		preset = v.GetString("preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}
		*cfg = p
	}

	// Unmarshall config file into config struct
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)

	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithZeroFields(),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}

	// load config if it was loaded to the viper
	if err := v.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}

// app holds what the subcommands share once the config is loaded.
type app struct {
	conf    *config.Config
	fs      afero.Fs
	out     io.Writer
	logger  *zap.Logger
	metrics *metrics.Server
}

func (a *app) start(out io.Writer) error {
	lvl, err := a.conf.Logging.ZapLevel()
	if err != nil {
		return err
	}
	a.out = out
	a.logger = log.NewWithLevel("ballot", zap.NewAtomicLevelAt(lvl))
	if a.conf.Metrics.Enabled {
		a.metrics, err = metrics.StartServer(a.logger.Named("metrics"), a.conf.Metrics.Port)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) stop() error {
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Stop(ctx); err != nil {
			return fmt.Errorf("stopping metrics server: %w", err)
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) newSession(opts ...session.Opt) *session.Session {
	opts = append([]session.Opt{
		session.WithLogger(a.logger.Named("session")),
		session.WithClientConfig(a.conf.Client),
	}, opts...)
	return session.New(a.conf.Session, opts...)
}

// connect opens a session for the configured voter.
func (a *app) connect(ctx context.Context, opts ...session.Opt) (*session.Session, *types.Account, error) {
	secret, err := a.conf.ResolveSecret(a.fs)
	if err != nil {
		return nil, nil, err
	}
	s := a.newSession(opts...)
	account, err := s.Connect(log.WithNewSessionID(ctx), a.conf.Host, secret)
	if err != nil {
		return nil, nil, err
	}
	return s, account, nil
}

// open connects and loads the configured contract.
func (a *app) open(ctx context.Context, opts ...session.Opt) (*session.Session, *ballot.Ballot, error) {
	address, err := a.conf.ContractAddress()
	if err != nil {
		return nil, nil, err
	}
	s, _, err := a.connect(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.Load(ctx, address)
	if err != nil {
		s.Reset()
		return nil, nil, err
	}
	return s, b, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	// os.Interrupt for all systems, especially windows, syscall.SIGTERM is mainly for docker.
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
