package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snek/internal/input"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error: %v", err)
	}
	sim.SetSize(96, 96)
	t.Cleanup(scr.Close)
	return NewRenderer(scr), sim
}

// waitKey polls until a key arrives from the event pump.
func waitKey(t *testing.T, r *Renderer) input.Key {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if k := r.PollKey(); k != input.None {
			return k
		}
		time.Sleep(time.Millisecond)
	}
	return input.None
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev     *tcell.EventKey
		want   input.Key
		wantOK bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.W, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), input.D, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.Q, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.None, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.None, false},
	}

	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("translateKey(%v) = (%v,%v), want (%v,%v)", tt.ev.Name(), got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsInterrupt(t *testing.T) {
	if !isInterrupt(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl-C should interrupt")
	}
	if isInterrupt(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should not interrupt")
	}
}

func TestRendererDrawBlock(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.DrawBlock(4, 6, '@', tcell.ColorYellow, tcell.ColorBlack)
	r.Show()

	mainc, _, style, _ := sim.GetContent(4, 6)
	if mainc != '@' {
		t.Errorf("content at (4,6) = %q, want '@'", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorYellow {
		t.Errorf("foreground = %v, want yellow", fg)
	}
}

func TestRendererPrintCentered(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.PrintCentered(5, "You are dead!")
	r.Show()

	// 96 wide, 13 runes: starts at column 41.
	for i, want := range "You are dead!" {
		got, _, _, _ := sim.GetContent(41+i, 5)
		if got != want {
			t.Fatalf("column %d = %q, want %q", 41+i, got, want)
		}
	}
}

func TestRendererPollKey(t *testing.T) {
	r, sim := newTestRenderer(t)

	if k := r.PollKey(); k != input.None {
		t.Fatalf("PollKey() with no input = %v, want none", k)
	}

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	if k := waitKey(t, r); k != input.D {
		t.Errorf("PollKey() = %v, want D", k)
	}
	if r.QuitRequested() {
		t.Error("QuitRequested() after a plain key")
	}
}

func TestRendererCtrlCRequestsQuit(t *testing.T) {
	r, sim := newTestRenderer(t)

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	deadline := time.Now().Add(2 * time.Second)
	for !r.QuitRequested() && time.Now().Before(deadline) {
		r.PollKey()
		time.Sleep(time.Millisecond)
	}

	if !r.QuitRequested() {
		t.Error("Ctrl-C did not request quit")
	}
}

func TestRendererRequestQuit(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.RequestQuit()
	if !r.QuitRequested() {
		t.Error("QuitRequested() = false after RequestQuit()")
	}
}
