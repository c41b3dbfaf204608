package inkbutton

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a screen of buttons, typically loaded from a YAML file:
//
//	window:
//	  title: Ink buttons
//	  width: 480
//	  height: 640
//	  background: "#FAFAFA"
//	buttons:
//	  - name: save
//	    title: Save
//	    x: 40
//	    y: 40
//	    width: 200
//	    height: 48
//	    cornerRadius: 24
//	    borderWidth: 1
//	    borderColor: "#5E35B1"
//	    inkColor: rgba(181, 164, 208, 0.6)
//	    animation: touchCenterCircleFill
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Buttons []ButtonConfig `yaml:"buttons"`
}

// WindowConfig holds the window settings of a Config.
type WindowConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background *Color `yaml:"background,omitempty"`
}

// ButtonConfig describes one button. Omitted colors and animation fall back
// to DefaultStyle.
type ButtonConfig struct {
	Name         string         `yaml:"name"`
	Title        string         `yaml:"title,omitempty"`
	X            float64        `yaml:"x"`
	Y            float64        `yaml:"y"`
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height"`
	CornerRadius float64        `yaml:"cornerRadius,omitempty"`
	BorderWidth  float64        `yaml:"borderWidth,omitempty"`
	BorderColor  *Color         `yaml:"borderColor,omitempty"`
	InkColor     *Color         `yaml:"inkColor,omitempty"`
	Animation    *AnimationMode `yaml:"animation,omitempty"`
	Background   *Color         `yaml:"background,omitempty"`
	TitleColor   *Color         `yaml:"titleColor,omitempty"`
	InkDuration  float32        `yaml:"inkDuration,omitempty"`
	Disabled     bool           `yaml:"disabled,omitempty"`
}

// LoadConfig parses and validates YAML config data.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("inkbutton: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses the YAML config at path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inkbutton: failed to read %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("inkbutton: failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks names and lengths. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Buttons))
	for i, b := range c.Buttons {
		name := strings.TrimSpace(b.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("buttons[%d]: name is required", i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("buttons[%d]: duplicate name %q", i, name))
		}
		seen[name] = true
		for _, f := range []struct {
			field string
			v     float64
		}{
			{"width", b.Width},
			{"height", b.Height},
			{"cornerRadius", b.CornerRadius},
			{"borderWidth", b.BorderWidth},
		} {
			if f.v < 0 {
				errs = append(errs, fmt.Errorf("buttons[%d]: %s must not be negative, got %g", i, f.field, f.v))
			}
		}
		if b.InkDuration < 0 {
			errs = append(errs, fmt.Errorf("buttons[%d]: inkDuration must not be negative, got %g", i, b.InkDuration))
		}
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("inkbutton: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Style returns the button's style with defaults filled in.
func (bc *ButtonConfig) Style() Style {
	st := DefaultStyle()
	st.CornerRadius = bc.CornerRadius
	st.BorderWidth = bc.BorderWidth
	st.BorderColor = bc.BorderColor
	if bc.InkColor != nil {
		st.InkColor = *bc.InkColor
	}
	if bc.Animation != nil {
		st.Mode = *bc.Animation
	}
	return st
}

// Build creates the described button.
func (bc *ButtonConfig) Build() *Button {
	b := NewButton(strings.TrimSpace(bc.Name), bc.Width, bc.Height, bc.Style())
	b.Title = bc.Title
	b.SetPosition(bc.X, bc.Y)
	if bc.Background != nil {
		b.BackgroundColor = *bc.Background
	}
	if bc.TitleColor != nil {
		b.TitleColor = *bc.TitleColor
	}
	if bc.InkDuration > 0 {
		b.InkDuration = bc.InkDuration
	}
	b.Enabled = !bc.Disabled
	return b
}

// Populate builds every configured button, adds them to scene in order and
// applies the window background. It returns the new buttons.
func (c *Config) Populate(scene *Scene) []*Button {
	if c.Window.Background != nil {
		scene.ClearColor = *c.Window.Background
	}
	out := make([]*Button, 0, len(c.Buttons))
	for i := range c.Buttons {
		b := c.Buttons[i].Build()
		scene.AddButton(b)
		out = append(out, b)
	}
	return out
}

// --- Text forms ---

// ParseAnimationMode returns the mode with the given name. Matching ignores
// case and surrounding space.
func ParseAnimationMode(s string) (AnimationMode, error) {
	name := strings.TrimSpace(s)
	for i, n := range animationModeNames {
		if strings.EqualFold(n, name) {
			return AnimationMode(i), nil
		}
	}
	return AnimationNone, fmt.Errorf("inkbutton: unknown animation mode %q", s)
}

var namedColors = map[string]Color{
	"clear":       {},
	"transparent": {},
	"white":       ColorWhite,
	"black":       {0, 0, 0, 1},
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA", "rgb(r, g, b)",
// "rgba(r, g, b, a)" or one of clear, transparent, white, black. In the
// functional forms r, g and b are 0-255 and a is 0-1.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:], s)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFuncColor(v[len("rgba("):len(v)-1], 4, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFuncColor(v[len("rgb("):len(v)-1], 3, s)
	}
	return Color{}, fmt.Errorf("inkbutton: invalid color %q", s)
}

func parseHexColor(hex, orig string) (Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("inkbutton: invalid color %q", orig)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("inkbutton: invalid color %q: %w", orig, err)
	}
	return Color{
		R: float64(n>>24&0xff) / 255,
		G: float64(n>>16&0xff) / 255,
		B: float64(n>>8&0xff) / 255,
		A: float64(n&0xff) / 255,
	}, nil
}

func parseFuncColor(args string, want int, orig string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("inkbutton: invalid color %q: want %d components, got %d", orig, want, len(parts))
	}
	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("inkbutton: invalid color %q: %w", orig, err)
		}
		limit := 255.0
		if i == 3 {
			limit = 1
		}
		if f < 0 || f > limit {
			return Color{}, fmt.Errorf("inkbutton: invalid color %q: component %d out of range", orig, i)
		}
		vals[i] = f
	}
	return Color{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255, A: vals[3]}, nil
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
