package bouncy

import "testing"

func TestParseMenuCommand(t *testing.T) {
	tests := []struct {
		in   string
		want MenuCommand
	}{
		{"define-boundary", MenuDefineBoundary},
		{"Define Boundary", MenuDefineBoundary},
		{"DEFINE_OBJECT", MenuDefineObject},
		{"  start-movement ", MenuStartMovement},
		{"Start Movement", MenuStartMovement},
	}
	for _, tt := range tests {
		got, err := ParseMenuCommand(tt.in)
		if err != nil {
			t.Errorf("ParseMenuCommand(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMenuCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseMenuCommand("stop"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection(" UP "); err != nil || got != DirectionUp {
		t.Errorf("ParseDirection(UP) = %v, %v", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestMenuLabels(t *testing.T) {
	want := []string{"Define Boundary", "Define Object", "Start Movement"}
	if len(MenuCommands) != len(want) {
		t.Fatalf("%d menu commands", len(MenuCommands))
	}
	for i, c := range MenuCommands {
		if c.Label() != want[i] {
			t.Errorf("label %d = %q, want %q", i, c.Label(), want[i])
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Tick(), "tick"},
		{Redraw(), "redraw"},
		{Click(Pt(0.5, -0.25)), "click(0.500, -0.250)"},
		{Key('t'), "key('t')"},
		{DirectionInput(DirectionLeft), "direction(left)"},
		{Menu(MenuStartMovement), "menu(start-movement)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
