package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewGame(t *testing.T) {
	g := New(testConfig(1))

	if g.Grid() != (core.Grid{Width: 32, Height: 24}) {
		t.Errorf("Grid() = %+v, expected 32x24", g.Grid())
	}
	if g.Snake().Head() != (core.Cell{Col: 16, Row: 12}) {
		t.Errorf("snake head = %v, expected (16,12)", g.Snake().Head())
	}
	if g.Snake().Occupies(g.Apple().Position()) {
		t.Error("first apple should not be placed on the snake")
	}

	state := g.State()
	if state.Score != 0 || state.Length != 1 || state.Tick != 0 {
		t.Errorf("initial state = %+v, expected score 0, length 1, tick 0", state)
	}
}

func TestScoreScenario(t *testing.T) {
	g := New(testConfig(42))

	// Eat three apples in a row, each placed right in front of the head.
	for i := range 3 {
		g.apple.position = g.snake.Head().Add(1, 0)

		result := g.Step(core.NewInputFrame())
		if len(result.Events) != 1 || result.Events[0].Kind != core.EventAppleEaten {
			t.Fatalf("apple %d: events = %+v, expected one apple_eaten", i+1, result.Events)
		}
	}

	if g.snake.Length() != 4 {
		t.Errorf("Length() = %d, expected 4", g.snake.Length())
	}
	if g.State().Score != 3 {
		t.Errorf("Score = %d, expected 3", g.State().Score)
	}

	screen := core.NewBoardScreen(g.Grid())
	g.Render(screen)
	if row := screen.Row(0); !strings.HasPrefix(row, "SCORE: 3") {
		t.Errorf("score row = %q, expected prefix \"SCORE: 3\"", row)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New(testConfig(12345))
	g2 := New(testConfig(12345))

	for i := range 300 {
		input := core.NewInputFrame()
		switch i % 37 {
		case 5:
			input.Set(core.ActionDown)
		case 17:
			input.Set(core.ActionLeft)
		case 29:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestQuitEndsTickBeforeMoving(t *testing.T) {
	g := New(testConfig(1))
	before := g.Snapshot()

	result := g.Step(core.NewInputFrame(core.ActionDown, core.ActionQuit))

	if result.Signal != core.SignalQuit {
		t.Fatalf("Signal = %v, expected SignalQuit", result.Signal)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("quit tick changed the game:\nbefore %+v\nafter  %+v", before, after)
	}
	if _, ok := g.Snake().PendingDirection(); ok {
		t.Error("quit tick should not buffer directions")
	}
}

func TestStepAppliesInputInOrder(t *testing.T) {
	g := New(testConfig(1))
	head := g.snake.Head()

	g.Step(core.NewInputFrame(core.ActionUp, core.ActionDown))

	if g.snake.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected the last press (down) to win", g.snake.Direction())
	}
	if g.snake.Head() != head.Add(0, 1) {
		t.Errorf("Head() = %v, expected %v", g.snake.Head(), head.Add(0, 1))
	}
}

func TestStepReportsReset(t *testing.T) {
	g := New(testConfig(3))
	g.apple.position = core.Cell{Col: 0, Row: 0}

	g.snake.positions = []core.Cell{
		{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}, {Col: 5, Row: 6},
	}
	g.snake.length = 4
	g.snake.direction = DirLeft
	g.tick = 10
	g.runStart = 4

	result := g.Step(core.NewInputFrame(core.ActionDown))

	if len(result.Events) == 0 || result.Events[0].Kind != core.EventReset {
		t.Fatalf("events = %+v, expected a reset first", result.Events)
	}
	ev := result.Events[0]
	if ev.Score != 3 {
		t.Errorf("reset event score = %d, expected 3", ev.Score)
	}
	if ev.Ticks != 7 {
		t.Errorf("reset event ticks = %d, expected 7", ev.Ticks)
	}
	if result.State.Resets != 1 || result.State.Length != 1 {
		t.Errorf("state after reset = %+v", result.State)
	}
	if g.RunTicks() != 0 {
		t.Errorf("RunTicks() = %d, expected a fresh run", g.RunTicks())
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := New(testConfig(8))
	g.apple.position = core.Cell{Col: 3, Row: 4}

	screen := core.NewBoardScreen(g.Grid())
	g.Render(screen)

	p := core.DefaultPalette()

	apple := screen.GetCell(3*core.CellColumns, 4)
	if apple.Rune != '[' || apple.Bg != p.Apple {
		t.Errorf("apple cell = %+v, expected '[' on apple colour", apple)
	}

	head := g.snake.Head()
	body := screen.GetCell(head.Col*core.CellColumns+1, head.Row)
	if body.Rune != ']' || body.Bg != p.Snake || body.Fg != p.Border {
		t.Errorf("head cell = %+v, expected ']' border on snake colour", body)
	}

	empty := screen.GetCell(20*core.CellColumns, 20)
	if empty.Rune != ' ' || empty.Bg != p.Background {
		t.Errorf("empty cell = %+v, expected background", empty)
	}
}

func TestRenderOrder(t *testing.T) {
	g := New(testConfig(8))
	g.snake.positions = []core.Cell{{Col: 5, Row: 5}, {Col: 4, Row: 5}}
	g.snake.length = 2
	g.apple.position = core.Cell{Col: 0, Row: 0}
	g.Step(core.NewInputFrame())

	rec := &recordingSurface{}
	g.Render(rec)

	if len(rec.ops) == 0 || rec.ops[0] != "clear" {
		t.Fatalf("ops = %v, expected clear first", rec.ops)
	}
	expectedTail := []string{
		"cell (6,5)", // head drawn again on top
		"erase (4,5)",
		"score 1",
	}
	got := rec.ops[len(rec.ops)-len(expectedTail):]
	for i := range expectedTail {
		if got[i] != expectedTail[i] {
			t.Errorf("ops tail = %v, expected %v", got, expectedTail)
			break
		}
	}
}

func TestRenderAppleOnVacatedCell(t *testing.T) {
	g := New(testConfig(8))
	g.snake.positions = []core.Cell{{Col: 5, Row: 5}, {Col: 4, Row: 5}}
	g.snake.length = 2
	g.apple.position = core.Cell{Col: 0, Row: 0}
	g.Step(core.NewInputFrame())

	vacated, ok := g.snake.LastVacated()
	if !ok {
		t.Fatal("LastVacated() should report the freed tail cell")
	}
	g.apple.position = vacated

	screen := core.NewBoardScreen(g.Grid())
	g.Render(screen)

	apple := g.cfg.Palette.Apple
	col := vacated.Col * core.CellColumns
	for dx := range core.CellColumns {
		got := screen.GetCell(col+dx, vacated.Row)
		if got.Bg != apple {
			t.Errorf("cell (%d,%d) bg = %v, expected the apple colour %v", col+dx, vacated.Row, got.Bg, apple)
		}
	}
}

func TestDebugState(t *testing.T) {
	g := New(testConfig(1))
	if s := g.DebugState(); !strings.Contains(s, "Direction: right") {
		t.Errorf("DebugState() = %q, expected the heading", s)
	}
}
