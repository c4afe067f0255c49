package stream

import (
	"io"
	"os"
	"time"

	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/matt-g-everett/ledmotion/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream    string `yaml:"stream"`
			Commands  string `yaml:"commands"`
			Positions string `yaml:"positions"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	HTTP struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`
	Display Display      `yaml:"display"`
	Motion  MotionConfig `yaml:"motion"`
	Sprites []Sprite     `yaml:"sprites"`
}

// Display describes the LED matrix sprites are drawn on.
type Display struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FrameMs    int           `yaml:"frameMs"`
	Glow       int           `yaml:"glow"`
	Trail      float64       `yaml:"trail"`
	Background string        `yaml:"background"`
	Saturation float64       `yaml:"saturation"`
	Luminance  float64       `yaml:"luminance"`
	Gradient   GradientTable `yaml:"gradient"`
}

// MotionConfig holds the engine settings by name.
type MotionConfig struct {
	Speed       float64 `yaml:"speed"`
	Easing      string  `yaml:"easing"`
	Axis        string  `yaml:"axis"`
	MinDuration float64 `yaml:"minDuration"`
	Tolerance   float64 `yaml:"tolerance"`
	Completion  string  `yaml:"completion"`
}

// Sprite is an element placed on the display at startup.
type Sprite struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// DefaultConfig returns the configuration used for anything a file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledmotion"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Commands = "home/xmastree/motion"
	c.Mqtt.Topics.Positions = "home/xmastree/positions"
	c.HTTP.Listen = ":3000"
	c.Display = Display{
		Width:      50,
		Height:     10,
		FrameMs:    33,
		Glow:       2,
		Background: "#000005",
		Saturation: 1.0,
		Luminance:  0.3,
		Gradient:   DefaultGradient(),
	}
	c.Motion = MotionConfig{
		Speed:       motion.DefaultSpeed,
		Easing:      "linear",
		Axis:        "both",
		MinDuration: motion.MinDuration,
		Tolerance:   motion.Tolerance,
		Completion:  "either",
	}
	return c
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads YAML from r on top of DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return errors.Errorf("display must be at least 1x1, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Width*c.Display.Height > 0xffff {
		return errors.Errorf("display has too many pixels: %d", c.Display.Width*c.Display.Height)
	}
	if c.Display.FrameMs <= 0 {
		return errors.Errorf("frameMs must be positive, got %d", c.Display.FrameMs)
	}
	if c.Display.Glow < 0 {
		return errors.Errorf("glow must not be negative, got %d", c.Display.Glow)
	}
	if c.Display.Trail < 0 || c.Display.Trail >= 1 {
		return errors.Errorf("trail must be in [0, 1), got %v", c.Display.Trail)
	}
	if len(c.Display.Gradient) == 0 {
		return errors.New("gradient needs at least one stop")
	}
	_, err := c.Policy()
	return err
}

// Policy converts the motion section into engine settings.
func (c Config) Policy() (motion.Policy, error) {
	m := c.Motion
	easing, err := util.Easing(m.Easing)
	if err != nil {
		return motion.Policy{}, err
	}
	axis, ok := motion.ParseAxis(m.Axis)
	if !ok {
		return motion.Policy{}, errors.Errorf("unknown axis %q", m.Axis)
	}
	completion, ok := motion.ParseCompletion(m.Completion)
	if !ok {
		return motion.Policy{}, errors.Errorf("unknown completion %q", m.Completion)
	}

	return motion.Policy{
		MinDuration: m.MinDuration,
		Tolerance:   m.Tolerance,
		Completion:  completion,
		Defaults: motion.Config{
			Speed:  m.Speed,
			Easing: easing,
			Axis:   axis,
		},
	}, nil
}

// FrameInterval is the time between frames while animating.
func (d Display) FrameInterval() time.Duration {
	return time.Duration(d.FrameMs) * time.Millisecond
}
