package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dipart/pkg/dip"
	errs "github.com/matzehuels/dipart/pkg/errors"
)

// fileConfig is the on-disk layout of the defaults file:
//
//	[render]
//	side = "bottom"
//	direction = "east"
//	pins = "pin2"
//	alt = "alt1"
type fileConfig struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Side      string `toml:"side"`
	Direction string `toml:"direction"`
	Pins      string `toml:"pins"`
	Alt       string `toml:"alt"`
}

// loadDefaults resolves the render defaults for this invocation. A missing
// file at the standard location is not an error; a missing --config file is.
func (c *CLI) loadDefaults() (dip.RenderOptions, error) {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return dip.RenderOptions{}, nil
		}
		path = filepath.Join(dir, configFile)
	}

	opts, err := loadConfig(path, c.Logger)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return dip.RenderOptions{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "cannot open config %s: no such file", path)
		}
		return dip.RenderOptions{}, nil
	}
	return opts, err
}

// loadConfig decodes the defaults file at path. Unknown keys are logged and
// ignored; invalid values are reported as INVALID_CONFIG.
func loadConfig(path string, logger *log.Logger) (dip.RenderOptions, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dip.RenderOptions{}, err
		}
		return dip.RenderOptions{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s: %s", path, err.Error())
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "path", path, "keys", strings.Join(keys, ","))
	}

	opts, err := cfg.Render.options()
	if err != nil {
		return dip.RenderOptions{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s: %s", path, err.Error())
	}
	logger.Debug("loaded config", "path", path, "defaults", opts)
	return opts, nil
}

// options converts the string settings into render options. Empty values
// keep the built-in default.
func (r renderConfig) options() (dip.RenderOptions, error) {
	var opts dip.RenderOptions
	var err error

	if r.Side != "" {
		if opts.Side, err = dip.ParseSide(r.Side); err != nil {
			return opts, err
		}
	}
	if r.Direction != "" {
		if opts.Direction, err = dip.ParseDirection(r.Direction); err != nil {
			return opts, err
		}
	}
	if opts.Pins, err = dip.ParsePinDisplay(r.Pins); err != nil {
		return opts, err
	}
	if opts.Alt, err = dip.ParseAltDisplay(r.Alt); err != nil {
		return opts, err
	}
	return opts, nil
}
