package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/falling-up/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawText(0, 0, "plain")
	scr.DrawTextColored(2, 1, "sun", core.ColorBrightYellow)
	scr.SetColored(11, 2, '●', core.ColorBrightWhite)

	out := ansi.Strip(RenderScreen(scr))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "sun" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "●") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestStyleForUnknownColorFallsBack(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered as %q", got)
	}
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style built for color %v", c)
		}
	}
}
