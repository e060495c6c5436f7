package scene

import (
	"errors"
	"testing"

	"github.com/vovakirdan/falling-up/internal/core"
)

type fakeScene struct {
	name     string
	updates  int
	renders  int
	disposed int
}

func (f *fakeScene) Name() string                          { return f.name }
func (f *fakeScene) Update(dt float64, in core.InputFrame) { f.updates++ }
func (f *fakeScene) Render(dst *core.Screen)               { f.renders++ }
func (f *fakeScene) Dispose()                              { f.disposed++ }

func TestStackDispatchesToTopOnly(t *testing.T) {
	bottom := &fakeScene{name: "menu"}
	top := &fakeScene{name: "play"}

	st := NewStack(bottom)
	st.Push(top)

	st.Update(1.0/60.0, core.NewInputFrame())
	st.Render(core.NewScreen(10, 5))

	if top.updates != 1 || top.renders != 1 {
		t.Errorf("top: updates=%d renders=%d, expected 1 and 1", top.updates, top.renders)
	}
	if bottom.updates != 0 || bottom.renders != 0 {
		t.Errorf("bottom scene received dispatch: updates=%d renders=%d", bottom.updates, bottom.renders)
	}
	if st.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", st.Len())
	}
}

func TestStackReplaceTop(t *testing.T) {
	play := &fakeScene{name: "play"}
	over := &fakeScene{name: "gameover"}

	st := NewStack(play)
	st.ReplaceTop(over, 12.34)

	if play.disposed != 1 {
		t.Errorf("outgoing scene disposed %d times, expected 1", play.disposed)
	}
	if st.Top() != over {
		t.Errorf("Top() = %v, expected gameover scene", st.Top().Name())
	}
	if st.Carried() != 12.34 {
		t.Errorf("Carried() = %v, expected 12.34", st.Carried())
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", st.Len())
	}
	if over.disposed != 0 {
		t.Error("incoming scene must not be disposed")
	}
}

func TestStackPop(t *testing.T) {
	menu := &fakeScene{name: "menu"}
	pause := &fakeScene{name: "pause"}

	st := NewStack(menu)
	st.Push(pause)
	st.Pop()

	if pause.disposed != 1 {
		t.Errorf("popped scene disposed %d times, expected 1", pause.disposed)
	}
	if st.Top() != menu {
		t.Error("menu should be active after pop")
	}
}

func TestStackPopLastPanics(t *testing.T) {
	menu := &fakeScene{name: "menu"}
	st := NewStack(menu)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when popping the last scene")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyStack) {
			t.Errorf("panic value = %v, expected ErrEmptyStack", r)
		}
		if menu.disposed != 0 {
			t.Error("last scene must not be disposed by a rejected pop")
		}
	}()
	st.Pop()
}

func TestStackClear(t *testing.T) {
	a := &fakeScene{name: "a"}
	b := &fakeScene{name: "b"}
	st := NewStack(a)
	st.Push(b)
	st.Clear()

	if a.disposed != 1 || b.disposed != 1 {
		t.Errorf("disposed a=%d b=%d, expected 1 and 1", a.disposed, b.disposed)
	}
	if st.Top() != nil || st.Len() != 0 {
		t.Error("stack should be empty after Clear")
	}
}

func TestCameraBoundsAndScroll(t *testing.T) {
	c := NewCamera(240, 400)

	if c.X != 120 || c.Y != 200 {
		t.Errorf("center = (%v, %v), expected (120, 200)", c.X, c.Y)
	}
	if c.Top() != 400 || c.Bottom() != 0 {
		t.Errorf("Top/Bottom = %v/%v, expected 400/0", c.Top(), c.Bottom())
	}

	c.Scroll(-0.5)
	if c.Top() != 399.5 {
		t.Errorf("Top after scroll = %v, expected 399.5", c.Top())
	}
	// View lags until Update
	if c.View().Y != 0 {
		t.Errorf("View().Y = %v before Update, expected 0", c.View().Y)
	}
	c.Update()
	if c.View().Y != -0.5 {
		t.Errorf("View().Y = %v after Update, expected -0.5", c.View().Y)
	}
}

func TestCameraProject(t *testing.T) {
	c := NewCamera(240, 400)

	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{"top-left", 0, 400, 0, 0},
		{"center", 120, 200, 40, 12},
		{"just inside bottom-right", 239.9, 0.1, 79, 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := c.Project(tc.x, tc.y, 80, 24)
			if col != tc.wantCol || row != tc.wantRow {
				t.Errorf("Project(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.wantCol, tc.wantRow)
			}
		})
	}
}

func TestCameraProjectBoxMinimumCell(t *testing.T) {
	c := NewCamera(240, 400)
	r := c.ProjectBox(core.NewBox(10, 10, 0.5, 0.5), 80, 24)
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny box projected to %+v, expected at least one cell", r)
	}
}
