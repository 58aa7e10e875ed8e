package levels

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var (
	ErrMissingExit  = errors.New("levels: missing exit")
	ErrNoPlatforms  = errors.New("levels: no platforms")
	ErrInvalidRect  = errors.New("levels: invalid rect")
	ErrInvalidColor = errors.New("levels: invalid background color")
)

// Level is the static layout of one level. Platform, enemy and pickup order
// is significant: collision resolution and projectile ownership follow it.
type Level struct {
	Name        string  `yaml:"name"`
	Background  string  `yaml:"background"`
	PlayerStart Point   `yaml:"player_start"`
	Platforms   []Rect  `yaml:"platforms"`
	Enemies     []Point `yaml:"enemies"`
	Pickups     []Point `yaml:"pickups"`
	Exit        *Rect   `yaml:"exit"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Validate fails fast on layouts the simulation cannot run.
func (l *Level) Validate() error {
	if l.Exit == nil {
		return ErrMissingExit
	}
	if !l.Exit.valid() {
		return fmt.Errorf("%w: exit %+v", ErrInvalidRect, *l.Exit)
	}
	if len(l.Platforms) == 0 {
		return ErrNoPlatforms
	}
	for i, p := range l.Platforms {
		if !p.valid() {
			return fmt.Errorf("%w: platform %d %+v", ErrInvalidRect, i, p)
		}
	}
	if _, err := l.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the "#rrggbb" background, defaulting to white.
func (l *Level) BackgroundColor() (color.NRGBA, error) {
	if l.Background == "" {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	c, err := colorful.Hex(l.Background)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, l.Background)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func (r Rect) valid() bool {
	return r.Width > 0 && r.Height > 0
}
