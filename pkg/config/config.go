package config

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

// PoleLimitCfg is the YAML-serializable form of one surrogate generation
// staircase step.
type PoleLimitCfg struct {
	Count    int     `yaml:"count" json:"count"`
	Coverage float32 `yaml:"coverage" json:"coverage"`
}

// SurrogateCfg mirrors surrogate.Config in a YAML/JSON-taggable shape.
type SurrogateCfg struct {
	PoleLimits    []PoleLimitCfg `yaml:"poleLimits" json:"poleLimits"`
	MaxPoles      int            `yaml:"maxPoles" json:"maxPoles"`
	MaxPiers      int            `yaml:"maxPiers" json:"maxPiers"`
	FailFastPoles int            `yaml:"failFastPoles" json:"failFastPoles"`
	FailFastPiers int            `yaml:"failFastPiers" json:"failFastPiers"`
	GridPrecision int            `yaml:"gridPrecision" json:"gridPrecision"`
}

// ToSurrogateConfig converts to the surrogate package's runtime Config.
func (s SurrogateCfg) ToSurrogateConfig() surrogate.Config {
	limits := make([]surrogate.PoleLimit, len(s.PoleLimits))
	for i, l := range s.PoleLimits {
		limits[i] = surrogate.PoleLimit{Count: l.Count, Coverage: l.Coverage}
	}
	return surrogate.Config{
		PoleLimits:    limits,
		MaxPoles:      s.MaxPoles,
		MaxPiers:      s.MaxPiers,
		FailFastPoles: s.FailFastPoles,
		FailFastPiers: s.FailFastPiers,
		GridPrecision: s.GridPrecision,
	}
}

func defaultSurrogateCfg() SurrogateCfg {
	def := surrogate.DefaultConfig()
	limits := make([]PoleLimitCfg, len(def.PoleLimits))
	for i, l := range def.PoleLimits {
		limits[i] = PoleLimitCfg{Count: l.Count, Coverage: l.Coverage}
	}
	return SurrogateCfg{
		PoleLimits:    limits,
		MaxPoles:      def.MaxPoles,
		MaxPiers:      def.MaxPiers,
		FailFastPoles: def.FailFastPoles,
		FailFastPiers: def.FailFastPiers,
		GridPrecision: def.GridPrecision,
	}
}

// CDECfg bounds quadtree construction and surrogate generation.
type CDECfg struct {
	QuadtreeDepth int          `yaml:"quadtreeDepth" json:"quadtreeDepth"`
	Surrogate     SurrogateCfg `yaml:"surrogate" json:"surrogate"`
}

// ToEngineConfig converts to the cde package's runtime Config.
func (c CDECfg) ToEngineConfig() cde.Config {
	return cde.Config{MaxDepth: c.QuadtreeDepth}
}

// LBFConfig controls the single-item LBF search's sample budget.
type LBFConfig struct {
	// NSamples is the total number of samples spent searching for a
	// placement of one item.
	NSamples int `yaml:"nSamples" json:"nSamples"`
	// LSFrac is the fraction of NSamples spent in the local-search phase;
	// the remainder is spent in the uniform phase.
	LSFrac float64 `yaml:"lsFrac" json:"lsFrac"`
}

// ImportCfg holds the import-time tolerances from spec §6.
type ImportCfg struct {
	// PolySimplTolerance is the fractional area-deviation tolerance for
	// an external simplification step; nil means no simplification is
	// requested. It is parsed and stored only: nothing in this module
	// reads it or simplifies shapes.
	PolySimplTolerance *float32 `yaml:"polySimplTolerance,omitempty" json:"polySimplTolerance,omitempty"`
	// MinItemSeparation is a minimum spacing between placed items. It is
	// parsed and stored only: no import or solve step reads it, so hazards
	// and item shapes are used without any inflation or deflation.
	MinItemSeparation *float32 `yaml:"minItemSeparation,omitempty" json:"minItemSeparation,omitempty"`
}

// Config is the top-level solver configuration.
type Config struct {
	// Seed is the master seed for deterministic runs. Use 0 to
	// auto-generate (see GenerateSeed).
	Seed uint64 `yaml:"seed" json:"seed"`

	CDE    CDECfg    `yaml:"cde" json:"cde"`
	LBF    LBFConfig `yaml:"lbf" json:"lbf"`
	Import ImportCfg `yaml:"import,omitempty" json:"import,omitempty"`
}

// DefaultConfig returns a Config with the reference quadtree depth,
// surrogate staircase and LBF sample budget.
func DefaultConfig() Config {
	return Config{
		CDE: CDECfg{
			QuadtreeDepth: 6,
			Surrogate:     defaultSurrogateCfg(),
		},
		LBF: LBFConfig{
			NSamples: 5000,
			LSFrac:   0.5,
		},
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = GenerateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration's numeric ranges.
func (c *Config) Validate() error {
	if c.CDE.QuadtreeDepth < 1 {
		return fmt.Errorf("cde.quadtreeDepth must be >= 1, got %d", c.CDE.QuadtreeDepth)
	}
	if c.LBF.NSamples < 1 {
		return fmt.Errorf("lbf.nSamples must be >= 1, got %d", c.LBF.NSamples)
	}
	if c.LBF.LSFrac < 0.0 || c.LBF.LSFrac > 1.0 {
		return fmt.Errorf("lbf.lsFrac must be in [0.0, 1.0], got %f", c.LBF.LSFrac)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// per-stage RNG seeds in randsrc.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
