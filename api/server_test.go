package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/matt-g-everett/ledmotion/stream"
)

type fixedSource struct {
	state motion.State
}

func (f fixedSource) Latest() motion.State {
	return f.state
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPositions(t *testing.T) {
	s := motion.Init().Place("a", 3, 4).AnimateTo("b", 100, 0).Step(50)
	h := NewApi(fixedSource{s}).Handler()

	rec := get(t, h, "/positions")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report map[string]stream.PositionReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if got := report["a"]; got.X != 3 || got.Y != 4 || got.Transform != "translate(3px, 4px)" {
		t.Errorf("a = %+v", got)
	}
	if got := report["b"]; got.X != 50 || !got.Animating {
		t.Errorf("b = %+v", got)
	}
}

func TestPosition(t *testing.T) {
	h := NewApi(fixedSource{motion.Init().Place("a", 1, 2)}).Handler()

	rec := get(t, h, "/positions/a")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got stream.PositionReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.X != 1 || got.Y != 2 {
		t.Errorf("a = %+v", got)
	}

	if rec := get(t, h, "/positions/ghost"); rec.Code != http.StatusNotFound {
		t.Errorf("unseen element status = %d, want 404", rec.Code)
	}
}

func TestAnimating(t *testing.T) {
	tests := []struct {
		state motion.State
		want  bool
	}{
		{motion.Init().Place("a", 0, 0), false},
		{motion.Init().AnimateTo("a", 10, 0), true},
	}

	for _, tt := range tests {
		rec := get(t, NewApi(fixedSource{tt.state}).Handler(), "/animating")
		var body map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["animating"] != tt.want {
			t.Errorf("animating = %v, want %v", body["animating"], tt.want)
		}
	}
}

func TestPositionsRejectsPost(t *testing.T) {
	h := NewApi(fixedSource{motion.Init()}).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/positions", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
