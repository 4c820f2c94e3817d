package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/vmath"
)

func testView() vmath.Viewport {
	return vmath.Viewport{ScaleX: 0.5, ScaleY: 0.25}
}

func mouse(x, y int, btn tcell.ButtonMask, mod tcell.ModMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, mod)
}

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		ev   *tcell.EventKey
		want Intent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), Intent{Type: IntentPause}},
		{tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), Intent{Type: IntentStep}},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Intent{Type: IntentReset}},
		{tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), Intent{Type: IntentAnchor, Slot: 0}},
		{tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), Intent{Type: IntentAnchor, Slot: 3}},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}},
	}

	for _, c := range cases {
		if got := kt.Lookup(c.ev); got != c.want {
			t.Errorf("Lookup(%s): expected %+v, got %+v", c.ev.Name(), c.want, got)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	kt := DefaultKeyTable()
	c := kt.Clone()
	delete(c.Runes, 'q')

	if _, ok := kt.Runes['q']; !ok {
		t.Error("Clone shares rune map with original")
	}

	empty := (&KeyTable{}).Clone()
	if empty.Runes == nil || empty.Keys == nil {
		t.Error("Expected Clone of empty table to allocate maps")
	}
}

func TestLoadKeyConfigMerge(t *testing.T) {
	data := []byte(`
[runes]
x = "quit"
q = "none"
space = "step"
"9" = "anchor_2"

[keys]
F1 = "reset"
ctrl-s = "none"
`)

	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if len(override.Runes) != 4 || len(override.Keys) != 2 {
		t.Fatalf("Expected sparse override 4/2, got %d/%d", len(override.Runes), len(override.Keys))
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	if kt.Runes['x'].Type != IntentQuit {
		t.Errorf("Expected x bound to quit, got %+v", kt.Runes['x'])
	}
	if _, ok := kt.Runes['q']; ok {
		t.Error("Expected q unbound by none")
	}
	if kt.Runes[' '].Type != IntentStep {
		t.Errorf("Expected space alias bound to step, got %+v", kt.Runes[' '])
	}
	if got := kt.Runes['9']; got.Type != IntentAnchor || got.Slot != 1 {
		t.Errorf("Expected 9 bound to anchor slot 1, got %+v", got)
	}
	if kt.Keys[tcell.KeyF1].Type != IntentReset {
		t.Errorf("Expected F1 bound to reset, got %+v", kt.Keys[tcell.KeyF1])
	}
	if _, ok := kt.Keys[tcell.KeyCtrlS]; ok {
		t.Error("Expected ctrl-s unbound by none")
	}
	// Untouched defaults survive
	if kt.Runes['p'].Type != IntentPause || kt.Keys[tcell.KeyEscape].Type != IntentQuit {
		t.Error("Expected default bindings to survive merge")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	cases := map[string]string{
		"parse":          "[runes\nx = \"quit\"",
		"unknown action": "[runes]\nx = \"explode\"",
		"unknown key":    "[keys]\nhyper = \"quit\"",
		"multi rune":     "[runes]\nxy = \"quit\"",
		"not string":     "[runes]\nx = 1",
		"unknown table":  "[normal]\nx = \"quit\"",
		"not table":      "runes = 1",
	}

	for name, data := range cases {
		if _, err := LoadKeyConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	joined := strings.Join(names, ",")
	for _, want := range []string{"anchor_1", "anchor_4", "mute", "none", "pause", "quit", "reset", "step"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected action %q in %v", want, names)
		}
	}

	for _, name := range names {
		in, _ := ActionEntry(name)
		if got := ActionName(in); got != name {
			t.Errorf("ActionName round trip: %q became %q", name, got)
		}
	}
}

func TestTrackerDragGesture(t *testing.T) {
	tr := NewTracker(testView())

	tr.HandleMouse(mouse(10, 4, tcell.Button1, tcell.ModNone))
	if tr.Gesture() != GestureDrag {
		t.Fatalf("Expected drag gesture, got %s", tr.Gesture())
	}

	in := tr.Sample()
	want := vmath.V2(21, 18)
	if in.Pointer != want || in.PrevPointer != want {
		t.Errorf("Expected press sample at %+v with no delta, got %+v -> %+v", want, in.PrevPointer, in.Pointer)
	}
	if !in.Drag || in.Cut {
		t.Errorf("Expected drag only, got drag=%v cut=%v", in.Drag, in.Cut)
	}

	tr.HandleMouse(mouse(12, 4, tcell.Button1, tcell.ModNone))
	in = tr.Sample()
	if in.PrevPointer != want || in.Pointer != vmath.V2(25, 18) {
		t.Errorf("Expected delta (21,18)->(25,18), got %+v -> %+v", in.PrevPointer, in.Pointer)
	}

	// Baseline advances even without movement
	in = tr.Sample()
	if in.PrevPointer != in.Pointer {
		t.Errorf("Expected zero delta on repeated sample, got %+v -> %+v", in.PrevPointer, in.Pointer)
	}

	tr.HandleMouse(mouse(12, 4, tcell.ButtonNone, tcell.ModNone))
	if in = tr.Sample(); in.Drag || in.Cut {
		t.Error("Expected release to end the gesture")
	}
}

func TestTrackerGestureClassification(t *testing.T) {
	cases := []struct {
		btn  tcell.ButtonMask
		mod  tcell.ModMask
		want Gesture
	}{
		{tcell.ButtonNone, tcell.ModNone, GestureIdle},
		{tcell.Button1, tcell.ModNone, GestureDrag},
		{tcell.Button2, tcell.ModNone, GestureCut},
		{tcell.Button1, tcell.ModCtrl, GestureCut},
		{tcell.Button1, tcell.ModShift, GestureAnchor},
	}

	for _, c := range cases {
		tr := NewTracker(testView())
		tr.HandleMouse(mouse(1, 1, c.btn, c.mod))
		if tr.Gesture() != c.want {
			t.Errorf("buttons=%v mod=%v: expected %s, got %s", c.btn, c.mod, c.want, tr.Gesture())
		}
	}
}

func TestTrackerAnchors(t *testing.T) {
	tr := NewTracker(testView())

	if !tr.ToggleAnchor(2) {
		t.Error("Expected slot 2 to toggle on")
	}
	if tr.ToggleAnchor(AnchorSlots) {
		t.Error("Expected out-of-range slot to be ignored")
	}

	in := tr.Sample()
	if !in.Anchors[2] || in.Anchors[0] {
		t.Errorf("Expected only slot 2 held, got %v", in.Anchors)
	}

	tr.HandleMouse(mouse(3, 3, tcell.Button1, tcell.ModShift))
	in = tr.Sample()
	if !in.Anchors[0] || !in.Anchors[2] {
		t.Errorf("Expected shift-drag to add slot 0, got %v", in.Anchors)
	}
	if in.Drag {
		t.Error("Expected anchor gesture to apply no pointer force")
	}

	tr.ReleaseAnchors()
	tr.HandleMouse(mouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	if in = tr.Sample(); in.Anchors != [AnchorSlots]bool{} {
		t.Errorf("Expected no anchors after release, got %v", in.Anchors)
	}
}

func TestTrackerCutTrail(t *testing.T) {
	tr := NewTracker(testView())

	for x := 0; x < parameter.CutTrailLength+5; x++ {
		tr.HandleMouse(mouse(x, 0, tcell.Button2, tcell.ModNone))
		if in := tr.Sample(); !in.Cut {
			t.Fatal("Expected cut input while right button held")
		}
	}

	trail := tr.Trail()
	if len(trail) != parameter.CutTrailLength {
		t.Fatalf("Expected trail capped at %d, got %d", parameter.CutTrailLength, len(trail))
	}
	if last := trail[len(trail)-1]; last != tr.Pointer() {
		t.Errorf("Expected newest trail point at pointer, got %+v", last)
	}
	if trail[0].X >= trail[len(trail)-1].X {
		t.Error("Expected trail ordered oldest first")
	}

	tr.HandleMouse(mouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	tr.Sample()
	if len(tr.Trail()) != 0 {
		t.Error("Expected trail cleared after cut ends")
	}
}

func TestTrackerSetViewportKeepsCell(t *testing.T) {
	tr := NewTracker(testView())
	tr.HandleMouse(mouse(4, 2, tcell.ButtonNone, tcell.ModNone))

	tr.SetViewport(vmath.Viewport{Origin: vmath.V2(100, 0), ScaleX: 1, ScaleY: 1})

	if x, y := tr.Cell(); x != 4 || y != 2 {
		t.Errorf("Expected cell (4,2), got (%d,%d)", x, y)
	}
	if tr.Pointer() != vmath.V2(104.5, 2.5) {
		t.Errorf("Expected pointer remapped to (104.5,2.5), got %+v", tr.Pointer())
	}
}

func TestMachineProcess(t *testing.T) {
	tr := NewTracker(testView())
	m := NewMachine(nil, tr)

	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)); in.Type != IntentAnchor || in.Slot != 1 {
		t.Errorf("Expected anchor slot 1, got %+v", in)
	}
	if !tr.Anchors()[1] {
		t.Error("Expected anchor key to toggle tracker slot")
	}

	if in := m.Process(mouse(5, 5, tcell.Button1, tcell.ModNone)); in.Type != IntentNone {
		t.Errorf("Expected mouse to yield no intent, got %+v", in)
	}
	if tr.Gesture() != GestureDrag {
		t.Error("Expected mouse event forwarded to tracker")
	}

	if in := m.Process(tcell.NewEventResize(80, 24)); in.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", in)
	}
}
