package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/matt-g-everett/ledmotion/util"
	"github.com/pkg/errors"
)

// Controller owns the motion state and renders it. It is not safe for
// concurrent use; the Streamer drives it from a single goroutine.
type Controller struct {
	state      motion.State
	display    Display
	background colorful.Color
	glow       []float64
	last       *Frame
}

// NewController creates an instance of a Controller with the configured
// sprites at rest.
func NewController(config Config) (*Controller, error) {
	if config.Display.Glow < 0 {
		return nil, errors.Errorf("glow must not be negative, got %d", config.Display.Glow)
	}
	policy, err := config.Policy()
	if err != nil {
		return nil, err
	}
	background, err := colorful.Hex(config.Display.Background)
	if err != nil {
		return nil, errors.Wrapf(err, "background %q", config.Display.Background)
	}

	c := new(Controller)
	c.display = config.Display
	c.background = background
	c.glow = util.GenerateLut(2*config.Display.Glow+1, ease.InOutQuad)
	c.state = motion.New(policy)
	for _, s := range config.Sprites {
		c.state = c.state.Place(s.ID, s.X, s.Y)
	}

	return c, nil
}

// State returns the current motion snapshot.
func (c *Controller) State() motion.State {
	return c.state
}

// Animating reports whether any sprite is moving.
func (c *Controller) Animating() bool {
	return c.state.Animating()
}

// Apply executes a command against the motion state.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Type {
	case CommandAnimate:
		cfg, err := c.animationConfig(cmd)
		if err != nil {
			return err
		}
		c.state = c.state.AnimateToWith(cmd.ID, cmd.X, cmd.Y, cfg)
	case CommandStop:
		c.state = c.state.Stop(cmd.ID)
	case CommandStopAll:
		c.state = c.state.StopAll()
	case CommandPlace:
		c.state = c.state.Place(cmd.ID, cmd.X, cmd.Y)
	case CommandRemove:
		c.state = c.state.Remove(cmd.ID)
	default:
		return errors.Errorf("unknown command type %q", cmd.Type)
	}
	return nil
}

func (c *Controller) animationConfig(cmd Command) (motion.Config, error) {
	cfg := c.state.Policy().Defaults
	if cmd.Speed != nil {
		cfg.Speed = *cmd.Speed
	}
	if cmd.Easing != "" {
		easing, err := util.Easing(cmd.Easing)
		if err != nil {
			return motion.Config{}, err
		}
		cfg.Easing = easing
	}
	if cmd.Axis != "" {
		axis, ok := motion.ParseAxis(cmd.Axis)
		if !ok {
			return motion.Config{}, errors.Errorf("unknown axis %q", cmd.Axis)
		}
		cfg.Axis = axis
	}
	return cfg, nil
}

// Advance moves every animation on by deltaMs milliseconds.
func (c *Controller) Advance(deltaMs float64) {
	c.state = c.state.Step(deltaMs)
}

// CalculateFrame creates a new Frame instance showing every sprite.
func (c *Controller) CalculateFrame() *Frame {
	d := c.display
	f := NewFrame(d.Width, d.Height, c.background)
	radius := len(c.glow) / 2

	for _, id := range c.state.IDs() {
		p, _ := c.state.Position(id)
		t := math.Max(0, math.Min(1, p.X/float64(d.Width)))
		colour := d.Gradient.GetColor(t, d.Saturation, d.Luminance)

		cx := int(math.Round(p.X))
		cy := int(math.Round(p.Y))
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				f.Blend(cx+dx, cy+dy, colour, c.glow[dx+radius]*c.glow[dy+radius])
			}
		}
	}

	// Nothing is sent after a resting frame, so it carries no trail.
	if d.Trail > 0 && c.last != nil && c.state.Animating() {
		f = c.last.InterpolateFrame(f, 1-d.Trail)
	}
	c.last = f

	return f
}
