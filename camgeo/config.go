package camgeo

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/arl/camgeo/arcrecover"
	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/internal/fixedpoint"
	"github.com/arl/camgeo/offset"
	"github.com/arl/camgeo/tessellate"
)

// Config is the configuration option catalogue of spec §6, collapsed into
// one struct so a whole engine can be built or persisted in one call,
// mirroring the teacher's recast.yml build-settings file.
type Config struct {
	Scale                   int64                    `yaml:"scale"`
	PolygonResolution       int64                    `yaml:"polygon_resolution"`
	TargetSegmentLength     float64                  `yaml:"target_segment_length"`
	PreserveArcs            bool                     `yaml:"preserve_arcs"`
	EnableArcReconstruction bool                     `yaml:"enable_arc_reconstruction"`
	TangencyStrategyName    string                   `yaml:"tangency_strategy"`
	TangencyEpsilon         int64                    `yaml:"tangency_epsilon"`
	CoordinatePrecision     float64                  `yaml:"coordinate_precision"`
	MaxCoordinate           float64                  `yaml:"max_coordinate"`
	FillRuleName            string                   `yaml:"fill_rule"`
	JoinName                string                   `yaml:"join"`
	MiterLimit              float64                  `yaml:"miter_limit"`
	Debug                   bool                     `yaml:"debug"`
	TangencyStrategy        boolean.TangencyStrategy `yaml:"-"`
	FillRule                boolean.FillRule         `yaml:"-"`
	JoinType                offset.JoinType          `yaml:"-"`
}

// DefaultConfig returns spec §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		Scale:                   fixedpoint.DefaultScale,
		PolygonResolution:       64,
		TargetSegmentLength:     0.05,
		PreserveArcs:            true,
		EnableArcReconstruction: true,
		TangencyStrategy:        boolean.TangencyMerge,
		TangencyStrategyName:    "merge",
		TangencyEpsilon:         boolean.DefaultTangencyEpsilon(fixedpoint.DefaultScale),
		CoordinatePrecision:     0.001,
		MaxCoordinate:           1000,
		FillRuleName:            "NonZero",
		FillRule:                boolean.NonZero,
		JoinName:                "Round",
		JoinType:                offset.JoinRound,
		MiterLimit:              2,
		Debug:                   false,
	}
}

// resolveNames fills in the enum fields from their YAML string form, for
// configs that were just unmarshaled rather than built via DefaultConfig.
func (c *Config) resolveNames() {
	switch c.TangencyStrategyName {
	case "none":
		c.TangencyStrategy = boolean.TangencyNone
	case "keep":
		c.TangencyStrategy = boolean.TangencyKeep
	default:
		c.TangencyStrategy = boolean.TangencyMerge
	}
	switch c.FillRuleName {
	case "EvenOdd":
		c.FillRule = boolean.EvenOdd
	case "Positive":
		c.FillRule = boolean.Positive
	default:
		c.FillRule = boolean.NonZero
	}
	switch c.JoinName {
	case "Miter":
		c.JoinType = offset.JoinMiter
	case "Bevel":
		c.JoinType = offset.JoinBevel
	default:
		c.JoinType = offset.JoinRound
	}
}

func (c Config) booleanConfig() boolean.Config {
	return boolean.Config{
		Scale:             c.Scale,
		FillRule:          c.FillRule,
		TangencyStrategy:  c.TangencyStrategy,
		TangencyEpsilon:   c.TangencyEpsilon,
		Debug:             c.Debug,
		PolygonResolution: c.PolygonResolution,
	}
}

func (c Config) tessellateConfig() tessellate.Config {
	cfg := tessellate.DefaultConfig()
	cfg.TargetSegmentLength = c.TargetSegmentLength
	cfg.CoordinatePrecision = c.CoordinatePrecision
	return cfg
}

func (c Config) offsetConfig() offset.Config {
	return offset.Config{
		Scale:                   c.Scale,
		Tessellate:              c.tessellateConfig(),
		ArcRecover:              arcrecover.DefaultConfig(),
		JoinType:                c.JoinType,
		MiterLimit:              c.MiterLimit,
		EnableArcReconstruction: c.EnableArcReconstruction,
	}
}

// LoadConfig reads a YAML build-settings file, the camgeo analogue of the
// teacher's cmd/recast "config" command reading recast.yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, err
	}
	cfg.resolveNames()
	return cfg, nil
}

// SaveConfig writes cfg to path in YAML format, prefilled with defaults
// when cfg is the zero value's defaults.
func SaveConfig(path string, cfg Config) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
