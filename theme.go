package smith

import (
	"fmt"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// theme is the YAML form of a style sheet. Absent fields leave the base
// configuration unchanged.
type theme struct {
	Flags struct {
		Resistance        *bool `yaml:"resistance"`
		Conductance       *bool `yaml:"conductance"`
		Labels            *bool `yaml:"labels"`
		Strings           *bool `yaml:"strings"`
		Rings             *bool `yaml:"rings"`
		SparseConductance *bool `yaml:"sparseConductance"`
	} `yaml:"flags"`

	LineWidth  *float64 `yaml:"lineWidth"`
	PointWidth *float64 `yaml:"pointWidth"`

	Annotation struct {
		Font *string  `yaml:"font"`
		Size *float64 `yaml:"size"`
	} `yaml:"annotation"`

	Colors map[string]string `yaml:"colors"`
}

// DecodeTheme applies a YAML style sheet over base and returns the result.
//
// Example:
//
//	flags:
//	  conductance: true
//	  rings: false
//	lineWidth: 0.4
//	annotation:
//	  font: DejaVu Sans
//	  size: 3
//	colors:
//	  resistanceGrid: "#b30000"
//	  line: "#000080ff"
//
// Colour keys are resistanceGrid, conductanceGrid, resistanceText,
// conductanceText, ring, line and annotation, with values in the forms
// accepted by gg.Hex. An unknown key is an error; a malformed colour is
// logged and skipped.
func DecodeTheme(data []byte, base Config) (Config, error) {
	var t theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("smith: decode theme: %w", err)
	}

	cfg := base
	setBool(&cfg.Flags.ShowResistance, t.Flags.Resistance)
	setBool(&cfg.Flags.ShowConductance, t.Flags.Conductance)
	setBool(&cfg.Flags.ShowLabels, t.Flags.Labels)
	setBool(&cfg.Flags.ShowStrings, t.Flags.Strings)
	setBool(&cfg.Flags.DrawRings, t.Flags.Rings)
	setBool(&cfg.Flags.SparseConductance, t.Flags.SparseConductance)
	if t.LineWidth != nil {
		cfg.LineWidth = *t.LineWidth
	}
	if t.PointWidth != nil {
		cfg.PointWidth = *t.PointWidth
	}
	if t.Annotation.Font != nil {
		cfg.AnnotationFont = *t.Annotation.Font
	}
	if t.Annotation.Size != nil {
		cfg.AnnotationFontSize = *t.Annotation.Size
	}

	slots := map[string]*gg.RGBA{
		"resistanceGrid":  &cfg.Colors.ResistanceGrid,
		"conductanceGrid": &cfg.Colors.ConductanceGrid,
		"resistanceText":  &cfg.Colors.ResistanceText,
		"conductanceText": &cfg.Colors.ConductanceText,
		"ring":            &cfg.Colors.Ring,
		"line":            &cfg.Colors.Line,
		"annotation":      &cfg.Colors.Annotation,
	}
	for key, val := range t.Colors {
		slot, ok := slots[key]
		if !ok {
			return base, fmt.Errorf("smith: decode theme: unknown colour %q", key)
		}
		if !validHex(val) {
			Logger().Warn("smith: invalid theme colour", "key", key, "value", val)
			continue
		}
		*slot = gg.Hex(val)
	}
	return cfg, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// validHex reports whether s is a colour in one of the forms gg.Hex parses.
func validHex(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
