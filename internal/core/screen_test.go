package core

import (
	"strings"
	"testing"
)

func rowOf(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen = %q", s.String())
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(-1, 0, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 2, 'x')
	s.DrawText(2, 1, "abcdef")

	if s.String() != "    \n  ab" {
		t.Errorf("screen = %q", s.String())
	}
	if c := s.GetCell(9, 9); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", c)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '●', ColorBrightRed)
	s.DrawTextColored(3, 2, "ab", ColorGreen)

	if cell := s.GetCell(1, 1); cell.Rune != '●' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(1, 1) = %+v", cell)
	}
	if s.GetCell(4, 2).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  string
	}{
		{10, "█ █", "   █ █    "},
		{9, "Score", "  Score  "},
		{3, "GAME OVER", "E O"},
	}
	for _, tt := range tests {
		s := NewScreen(tt.width, 1)
		s.DrawTextCentered(0, tt.text)
		if got := rowOf(s, 0); got != tt.want {
			t.Errorf("centered %q in %d = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(7, 5)
	r := NewRect(1, 0, 5, 4)
	s.DrawRectColored(r, '#', ColorCyan)
	s.DrawBox(r)

	want := []string{
		" ┌───┐ ",
		" │###│ ",
		" │###│ ",
		" └───┘ ",
		"       ",
	}
	for y, line := range want {
		if got := rowOf(s, y); got != line {
			t.Errorf("row %d = %q, expected %q", y, got, line)
		}
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("fill color lost under the box outline")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Hello", ColorYellow)
	s.DrawText(0, 5, "gone")

	s.Resize(3, 2)
	if s.String() != "Hel\n   " {
		t.Errorf("after shrink = %q", s.String())
	}

	s.Resize(6, 3)
	if got := rowOf(s, 0); got != "Hel   " {
		t.Errorf("after grow row 0 = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("resize dropped cell colors")
	}
}
