// Package config loads the handful of parameters a forest needs at
// construction time -- dimension, payload size, default balance reach, and
// connectivity shape -- from YAML, the way the rest of the pack's services
// load their own runtime configuration.
package config

import (
	"fmt"
	"io"

	"github.com/amrforest/forest/balance"
	"github.com/amrforest/forest/connectivity"
	"github.com/amrforest/forest/quadrant"
	"gopkg.in/yaml.v3"
)

// Brick describes an axis-aligned grid connectivity (connectivity.Brick).
type Brick struct {
	NX       int     `yaml:"nx"`
	NY       int     `yaml:"ny"`
	NZ       int     `yaml:"nz"`
	Periodic [3]bool `yaml:"periodic"`
}

// Forest is the set of parameters needed to construct a forest.Forest:
// dimension, payload size, the default balance selector new trees are
// brought to, and (for this module's brick-connectivity stand-in) the
// grid shape.
type Forest struct {
	Dim             int    `yaml:"dim"`
	DataSize        int    `yaml:"data_size"`
	DefaultSelector string `yaml:"default_selector"`
	Brick           *Brick `yaml:"brick"`
}

// Load decodes a Forest configuration from r, rejecting unknown fields so
// a typo in a config file fails loudly instead of silently defaulting.
func Load(r io.Reader) (*Forest, error) {
	var cfg Forest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Forest) validate() error {
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("%w: dim %d", ErrInvalidDim, c.Dim)
	}
	if c.DataSize <= 0 {
		return fmt.Errorf("%w: data_size %d", ErrInvalidDataSize, c.DataSize)
	}
	sel, err := c.Selector()
	if err != nil {
		return err
	}
	if err := balance.ValidateSelector(c.Space(), sel); err != nil {
		return err
	}
	return nil
}

// Space builds the quadrant.Space this configuration describes.
func (c *Forest) Space() quadrant.Space {
	return quadrant.NewSpace(c.Dim)
}

// Selector parses DefaultSelector into a balance.Selector. An empty string
// or "corner" defaults to the highest selector this configuration's own
// dimension supports (balance.MaxSelector) -- the original's own default,
// full balance -- rather than the literal Corner constant, which is only
// the right numeric value in 3D.
func (c *Forest) Selector() (balance.Selector, error) {
	switch c.DefaultSelector {
	case "", "corner":
		return balance.MaxSelector(c.Space()), nil
	case "completion":
		return balance.CompletionOnly, nil
	case "face":
		return balance.Face, nil
	case "edge":
		return balance.Edge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelector, c.DefaultSelector)
	}
}

// Connectivity builds the connectivity.Brick this configuration describes.
// It returns ErrMissingBrick if no brick section was configured -- this
// module ships only the brick connectivity; any other topology is built
// and supplied by the caller directly.
func (c *Forest) Connectivity() (connectivity.Connectivity, error) {
	if c.Brick == nil {
		return nil, ErrMissingBrick
	}
	return connectivity.NewBrick(c.Space(), c.Brick.NX, c.Brick.NY, c.Brick.NZ, c.Brick.Periodic), nil
}
