package stream

import (
	"strings"
	"testing"

	"github.com/matt-g-everett/ledmotion/motion"
)

func TestDecodeCommand(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"type":"animate","id":"star","x":12,"y":3.5,"speed":250,"easing":"outBack","axis":"y"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Type != CommandAnimate || cmd.ID != "star" || cmd.X != 12 || cmd.Y != 3.5 {
		t.Errorf("cmd = %+v", cmd)
	}
	if cmd.Speed == nil || *cmd.Speed != 250 || cmd.Easing != "outBack" || cmd.Axis != "y" {
		t.Errorf("options = %+v", cmd)
	}

	cmd, err = DecodeCommand([]byte(`{"type":"animate","id":"star","x":1,"y":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Speed != nil {
		t.Errorf("speed = %v, want unset", *cmd.Speed)
	}

	if _, err := DecodeCommand([]byte(`{"type":"stopAll"}`)); err != nil {
		t.Errorf("stopAll: %v", err)
	}
}

func TestDecodeCommandRejects(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{`{`, "decode command"},
		{`{"type":"animate"}`, "without id"},
		{`{"type":"fly","id":"a"}`, "unknown command"},
	}

	for _, tt := range tests {
		_, err := DecodeCommand([]byte(tt.payload))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("DecodeCommand(%s) = %v, want %q", tt.payload, err, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	s := motion.Init().Place("a", 1.5, 2).AnimateTo("b", 100, 0).Step(50)
	r := Report(s)
	if len(r) != 2 {
		t.Fatalf("report = %+v", r)
	}
	if got := r["a"]; got.Transform != "translate(1.5px, 2px)" || got.Animating {
		t.Errorf("a = %+v", got)
	}
	if got := r["b"]; !got.Animating || got.X != 50 {
		t.Errorf("b = %+v", got)
	}
}
