package position

import "testing"

func makePos(line, col, offset int) Position {
	return Position{Filename: "a.hack", Line: line, Column: col, Offset: offset}
}

func TestPositionValidity(t *testing.T) {
	tests := []struct {
		name  string
		pos   Position
		valid bool
	}{
		{"valid position", makePos(1, 1, 0), true},
		{"zero line", Position{Filename: "a.hack", Line: 0, Column: 1, Offset: 0}, false},
		{"zero column", Position{Filename: "a.hack", Line: 1, Column: 0, Offset: 0}, false},
		{"negative offset", Position{Filename: "a.hack", Line: 1, Column: 1, Offset: -1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.pos.IsValid(); got != test.valid {
				t.Errorf("IsValid() = %v, want %v", got, test.valid)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	pos := makePos(3, 7, 42)
	if got := pos.String(); got != "a.hack:3:7" {
		t.Errorf("String() = %q, want %q", got, "a.hack:3:7")
	}

	anon := Position{Line: 3, Column: 7, Offset: 42}
	if got := anon.String(); got != "3:7" {
		t.Errorf("String() = %q, want %q", got, "3:7")
	}
}

func TestSpanContains(t *testing.T) {
	span := NewSpan(makePos(1, 1, 0), makePos(1, 10, 9))

	if !span.Contains(makePos(1, 5, 4)) {
		t.Error("span should contain interior position")
	}
	if span.Contains(makePos(1, 10, 9)) {
		t.Error("span end is exclusive")
	}
	if span.Contains(Position{Filename: "b.hack", Line: 1, Column: 2, Offset: 1}) {
		t.Error("span should not contain position from another file")
	}
}

func TestSpanMerge(t *testing.T) {
	a := NewSpan(makePos(1, 1, 0), makePos(1, 5, 4))
	b := NewSpan(makePos(1, 3, 2), makePos(2, 1, 12))

	merged := a.Merge(b)
	if merged.Start != a.Start {
		t.Errorf("merged start = %v, want %v", merged.Start, a.Start)
	}
	if merged.End != b.End {
		t.Errorf("merged end = %v, want %v", merged.End, b.End)
	}
}
