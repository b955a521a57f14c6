package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidTagSimConfigs indicates the tag simulator is missing the server
// address or the tag address.
var ErrInvalidTagSimConfigs = errors.New("invalid tag simulator configuration")

// TagSimAdapter holds network settings used by the simulator transport layer.
type TagSimAdapter struct {
	// HTTPAddress is the base address of the positioning backend.
	// Env: TAGSIM_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// PositionSignKey signs position reports when the backend expects it.
	// Env: TAGSIM_POSITION_SIGN_KEY
	PositionSignKey string `env:"POSITION_SIGN_KEY" json:"-"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: TAGSIM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// TagSimConfig configures cmd/tagsim, a stand-in for the positioning
// hardware.
type TagSimConfig struct {
	Adapter TagSimAdapter

	// Address is the hardware address of the simulated tag.
	Address string `env:"TAG_ADDRESS"`
	// PosX and PosY are the first reported coordinates.
	PosX float64 `env:"POS_X"`
	PosY float64 `env:"POS_Y"`
	// StepX and StepY are added to the position after every report.
	StepX float64 `env:"STEP_X"`
	StepY float64 `env:"STEP_Y"`
	// Interval between reports; Count bounds the number of reports.
	Interval time.Duration `env:"INTERVAL"`
	Count    int           `env:"COUNT"`

	// Username and Password, when both set, are checked against POST /token
	// before reporting starts.
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD" json:"-"`
}

// GetTagSimConfig loads the simulator config from TAGSIM_* environment
// variables and command-line flags (flags win), then applies defaults.
func GetTagSimConfig() (*TagSimConfig, error) {
	return buildTagSimConfig(commandLineArgs())
}

func buildTagSimConfig(args []string) (*TagSimConfig, error) {
	envCfg := &TagSimConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "TAGSIM_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, err := parseTagSimFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(TagSimConfig)
	for _, src := range []*TagSimConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(cfg, TagSimConfig{
		Adapter:  TagSimAdapter{HTTPAddress: "localhost:8080", RequestTimeout: 5 * time.Second},
		Interval: time.Second,
		Count:    1,
	}); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Address == "" {
		return nil, fmt.Errorf("%w: server address and tag address are required", ErrInvalidTagSimConfigs)
	}

	return cfg, nil
}

func parseTagSimFlags(args []string) (*TagSimConfig, error) {
	cfg := &TagSimConfig{}

	fs := flag.NewFlagSet("tagsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.Adapter.PositionSignKey, "k", "", "Position signing key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout")
	fs.StringVar(&cfg.Address, "tag", "", "Tag hardware address")
	fs.Float64Var(&cfg.PosX, "x", 0, "Initial X position")
	fs.Float64Var(&cfg.PosY, "y", 0, "Initial Y position")
	fs.Float64Var(&cfg.StepX, "dx", 0, "X step per report")
	fs.Float64Var(&cfg.StepY, "dy", 0, "Y step per report")
	fs.DurationVar(&cfg.Interval, "interval", 0, "Interval between reports")
	fs.IntVar(&cfg.Count, "n", 0, "Number of reports")
	fs.StringVar(&cfg.Username, "u", "", "Username checked against /token")
	fs.StringVar(&cfg.Password, "p", "", "Password checked against /token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
