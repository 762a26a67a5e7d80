package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/checkmycrypto/internal/config"
	"github.com/slok/checkmycrypto/internal/conventions"
	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	defaultConfigPath string
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	c.defaultConfigPath = conventions.ConfigPath(homedir.HomeDir())
	app.Flag("config", "Path to the demo YAML configuration.").Envar(conventions.ConfigEnvVar).Default(c.defaultConfigPath).StringVar(&c.ConfigPath)

	return c
}

// LoadDemoConfig loads the demo configuration. A missing file on the default
// path uses the reference demo configuration.
func (r RootCommand) LoadDemoConfig(ctx context.Context) (model.DemoConfig, error) {
	path, err := filepath.Abs(r.ConfigPath)
	if err != nil {
		return model.DemoConfig{}, fmt.Errorf("invalid config path: %w", err)
	}

	repo := config.NewYAMLRepository(os.DirFS(filepath.Dir(path)))
	cfg, err := repo.GetConfig(ctx, filepath.Base(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && r.ConfigPath == r.defaultConfigPath {
			r.Logger.Debugf("No config on %s, using default demo config", path)
			return model.DefaultDemoConfig(), nil
		}
		return model.DemoConfig{}, fmt.Errorf("could not load config: %w", err)
	}

	r.Logger.Debugf("Loaded demo config from %s", path)
	return cfg, nil
}

// runWithLoop runs fn while a scheduler loop is running, the loop is stopped
// when fn returns.
func runWithLoop(ctx context.Context, logger log.Logger, fn func(ctx context.Context, loop *scheduler.Loop) error) error {
	loop, err := scheduler.NewLoop(scheduler.LoopConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create scheduler loop: %w", err)
	}

	var g run.Group

	// Scheduler loop.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return loop.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Command.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return fn(ctx, loop)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}
