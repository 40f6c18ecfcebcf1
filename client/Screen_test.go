package client

import (
	"CanvasPong/core"
	"testing"

	"github.com/gdamore/tcell"
)

func newSimulationScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestScreenRendererDrawsSnapshot(t *testing.T) {
	// 150x70 cells is exactly a tenth of the field in both directions
	screen := newSimulationScreen(t, 150, 70)
	state := core.NewState(nil)

	if err := NewScreenRenderer(screen).Render(state.Snapshot(), false); err != nil {
		t.Fatalf("render: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{name: "left paddle top", x: 1, y: 30, want: PaddleSymbol},
		{name: "left paddle bottom", x: 2, y: 39, want: PaddleSymbol},
		{name: "below left paddle", x: 1, y: 40, want: ' '},
		{name: "right paddle", x: 147, y: 35, want: PaddleSymbol},
		{name: "ball", x: 75, y: 35, want: BallSymbol},
		{name: "net", x: 75, y: 60, want: NetSymbol},
		{name: "no pause label", x: 72, y: 35, want: ' '},
		{name: "left score top row", x: 39, y: 1, want: ScoreSymbol},
		{name: "left score hole", x: 40, y: 2, want: ' '},
		{name: "right score top row", x: 100, y: 1, want: ScoreSymbol},
	}
	for _, tt := range tests {
		if got := cellAt(t, screen, tt.x, tt.y); got != tt.want {
			t.Fatalf("%s: cell (%d, %d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenRendererShowsPause(t *testing.T) {
	screen := newSimulationScreen(t, 150, 70)
	state := core.NewState(nil)

	if err := NewScreenRenderer(screen).Render(state.Snapshot(), true); err != nil {
		t.Fatalf("render: %v", err)
	}

	x := (150 - len(PausedLabel)) / 2
	for i, want := range PausedLabel {
		if got := cellAt(t, screen, x+i, 35); got != want {
			t.Fatalf("label cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestScreenRendererClampsBallOffField(t *testing.T) {
	screen := newSimulationScreen(t, 150, 70)
	snap := core.NewState(nil).Snapshot()
	snap.Ball.X = -40
	snap.Ball.Y = 5000

	if err := NewScreenRenderer(screen).Render(snap, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := cellAt(t, screen, 0, 69); got != BallSymbol {
		t.Fatalf("expected ball pinned to the corner, got %q", got)
	}
}
