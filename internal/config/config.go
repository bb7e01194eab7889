// Package config resolves correction parameters from built-in defaults, an
// optional TOML file and UTEC_* environment variables, in that order.
// Command-line flags are applied on top by internal/cli.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Params are the tunables shared by the config file, the environment and
// the command line.
type Params struct {
	MinReadLen  int     `toml:"min_rlen" env:"UTEC_MIN_RLEN"`
	MinBlockLen int     `toml:"min_blen" env:"UTEC_MIN_BLEN"`
	MinIdentity float64 `toml:"min_iden" env:"UTEC_MIN_IDEN"`
	MinMatchLen int     `toml:"min_mlen" env:"UTEC_MIN_MLEN"`
	MaxClipLen  int     `toml:"max_clip_len" env:"UTEC_MAX_CLIP_LEN"`
	MaxRatio0   float64 `toml:"max_ratio0" env:"UTEC_MAX_RATIO0"`
	Debug       bool    `toml:"debug" env:"UTEC_DEBUG"`
	KeepGoing   bool    `toml:"keep_going" env:"UTEC_KEEP_GOING"`
	SoftMask    bool    `toml:"soft_mask" env:"UTEC_SOFT_MASK"`
}

// Default returns the built-in parameter set.
func Default() Params {
	return Params{
		MinReadLen:  20000,
		MinBlockLen: 10000,
		MinIdentity: 0.8,
		MinMatchLen: 5,
		MaxClipLen:  500,
		MaxRatio0:   0.25,
	}
}

// Load starts from base, overlays the TOML file at path (skipped when path
// is empty), then the environment, and validates the result.
func Load(path string, base Params) (Params, error) {
	p := base
	if path != "" {
		if err := decodeFile(path, &p); err != nil {
			return Params{}, err
		}
	}
	if err := env.Parse(&p); err != nil {
		return Params{}, fmt.Errorf("parse env: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func decodeFile(path string, p *Params) error {
	meta, err := toml.DecodeFile(path, p)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.MinReadLen < 0:
		return errors.New("min_rlen must be ≥ 0")
	case p.MinBlockLen < 0:
		return errors.New("min_blen must be ≥ 0")
	case p.MinMatchLen < 0:
		return errors.New("min_mlen must be ≥ 0")
	case p.MaxClipLen < 0:
		return errors.New("max_clip_len must be ≥ 0")
	case p.MinIdentity < 0 || p.MinIdentity > 1:
		return fmt.Errorf("min_iden must be within [0,1], got %g", p.MinIdentity)
	case p.MaxRatio0 < 0 || p.MaxRatio0 > 1:
		return fmt.Errorf("max_ratio0 must be within [0,1], got %g", p.MaxRatio0)
	}
	return nil
}
