package stream

import (
	"encoding/json"

	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/pkg/errors"
)

// Command types accepted on the commands topic.
const (
	CommandAnimate = "animate"
	CommandStop    = "stop"
	CommandStopAll = "stopAll"
	CommandPlace   = "place"
	CommandRemove  = "remove"
)

// Command is a JSON message asking the streamer to change a sprite.
type Command struct {
	Type   string   `json:"type"`
	ID     string   `json:"id,omitempty"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Speed  *float64 `json:"speed,omitempty"`
	Easing string   `json:"easing,omitempty"`
	Axis   string   `json:"axis,omitempty"`
}

// DecodeCommand parses and checks a command payload.
func DecodeCommand(payload []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return Command{}, errors.Wrap(err, "decode command")
	}

	switch cmd.Type {
	case CommandStopAll:
		return cmd, nil
	case CommandAnimate, CommandStop, CommandPlace, CommandRemove:
		if cmd.ID == "" {
			return Command{}, errors.Errorf("%s command without id", cmd.Type)
		}
		return cmd, nil
	}
	return Command{}, errors.Errorf("unknown command type %q", cmd.Type)
}

// PositionReport is the published view of one sprite.
type PositionReport struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Transform string  `json:"transform"`
	Animating bool    `json:"animating"`
}

// Report describes every sprite in s.
func Report(s motion.State) map[string]PositionReport {
	positions := s.Positions()
	out := make(map[string]PositionReport, len(positions))
	for id, p := range positions {
		out[id] = PositionReport{
			X:         p.X,
			Y:         p.Y,
			Transform: motion.TranslateOf(p).String(),
			Animating: s.ElementAnimating(id),
		}
	}
	return out
}
