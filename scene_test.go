package scrollkit

import "testing"

const frameDT = 1.0 / 60

// stubReceiver records the gestures delivered to it.
type stubReceiver struct {
	node    *Node
	size    Vec2
	accept  bool
	began   []TouchSample
	moved   []TouchSample
	ended   []TouchSample
	cancels int
}

func newStubReceiver(name string, w, h float64, accept bool) *stubReceiver {
	return &stubReceiver{node: NewContainer(name), size: Vec2{w, h}, accept: accept}
}

func (r *stubReceiver) Node() *Node { return r.node }
func (r *stubReceiver) Size() Vec2  { return r.size }

func (r *stubReceiver) TouchBegan(t TouchSample) bool {
	r.began = append(r.began, t)
	return r.accept
}

func (r *stubReceiver) TouchMoved(t TouchSample) bool {
	r.moved = append(r.moved, t)
	return true
}

func (r *stubReceiver) TouchEnded(t TouchSample) bool {
	r.ended = append(r.ended, t)
	return true
}

func (r *stubReceiver) TouchCancelled() { r.cancels++ }

type countingUpdater struct {
	name  string
	order *[]string
	total float64
}

func (u *countingUpdater) Update(dt float64) {
	u.total += dt
	if u.order != nil {
		*u.order = append(*u.order, u.name)
	}
}

func runFrames(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.UpdateWithDelta(frameDT)
	}
}

// --- Scene basics ---

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("scene should have a root container")
	}
	if s.Clock() != 0 || s.Frame() != 0 {
		t.Error("new scene clock should be zero")
	}
}

func TestSceneClockAndUpdaters(t *testing.T) {
	s := NewScene()
	var order []string
	a := &countingUpdater{name: "a", order: &order}
	b := &countingUpdater{name: "b", order: &order}
	s.AddUpdater(a)
	s.AddUpdater(b)

	s.UpdateWithDelta(0.5)
	s.UpdateWithDelta(0.25)
	if s.Frame() != 2 || s.Clock() != 0.75 {
		t.Errorf("frame=%d clock=%v", s.Frame(), s.Clock())
	}
	if a.total != 0.75 || b.total != 0.75 {
		t.Errorf("updaters saw %v and %v", a.total, b.total)
	}
	if len(order) != 4 || order[0] != "a" || order[1] != "b" {
		t.Errorf("update order = %v", order)
	}

	s.RemoveUpdater(a)
	s.UpdateWithDelta(1)
	if a.total != 0.75 {
		t.Error("removed updater still runs")
	}
}

// --- Pointer dispatch ---

func TestSceneDispatchesLocalSamples(t *testing.T) {
	s := NewScene()
	r := newStubReceiver("panel", 100, 100, true)
	r.node.SetPosition(50, 20)
	s.Root().AddChild(r.node)
	s.AddTouchReceiver(r)

	s.InjectPress(60, 30)
	s.InjectMove(70, 50)
	s.InjectRelease(70, 60)
	runFrames(s, 3)

	if len(r.began) != 1 || r.began[0].Pos != (Vec2{10, 10}) {
		t.Fatalf("began = %+v", r.began)
	}
	if len(r.moved) != 1 || r.moved[0].Pos != (Vec2{20, 30}) {
		t.Errorf("moved = %+v", r.moved)
	}
	if len(r.ended) != 1 || r.ended[0].Pos != (Vec2{20, 40}) {
		t.Errorf("ended = %+v", r.ended)
	}
	if !approxEqual(r.began[0].Time, frameDT, 1e-12) || !approxEqual(r.ended[0].Time, 3*frameDT, 1e-12) {
		t.Errorf("sample times = %v .. %v", r.began[0].Time, r.ended[0].Time)
	}
}

func TestSceneMissesReceiver(t *testing.T) {
	s := NewScene()
	r := newStubReceiver("panel", 100, 100, true)
	s.Root().AddChild(r.node)
	s.AddTouchReceiver(r)

	s.InjectTap(150, 50)
	runFrames(s, 2)
	if len(r.began) != 0 || len(r.ended) != 0 {
		t.Error("touch outside the receiver was delivered")
	}
}

func TestSceneTopmostReceiverFirst(t *testing.T) {
	s := NewScene()
	below := newStubReceiver("below", 100, 100, true)
	above := newStubReceiver("above", 100, 100, false)
	s.Root().AddChild(below.node)
	s.Root().AddChild(above.node)
	s.AddTouchReceiver(below)
	s.AddTouchReceiver(above)

	s.InjectDrag(10, 10, 10, 50, 3)
	runFrames(s, 3)

	if len(above.began) != 1 {
		t.Error("topmost receiver should be asked first")
	}
	if len(above.moved) != 0 || len(above.ended) != 0 {
		t.Error("declining receiver should not get the rest of the gesture")
	}
	if len(below.began) != 1 || len(below.moved) != 1 || len(below.ended) != 1 {
		t.Errorf("below got began=%d moved=%d ended=%d", len(below.began), len(below.moved), len(below.ended))
	}
}

func TestSceneHiddenReceiverSkipped(t *testing.T) {
	s := NewScene()
	r := newStubReceiver("panel", 100, 100, true)
	r.node.Visible = false
	s.Root().AddChild(r.node)
	s.AddTouchReceiver(r)
	s.InjectTap(10, 10)
	runFrames(s, 2)
	if len(r.began) != 0 {
		t.Error("hidden receiver got a touch")
	}
}

func TestSceneStationaryPointerNoMove(t *testing.T) {
	s := NewScene()
	r := newStubReceiver("panel", 100, 100, true)
	s.Root().AddChild(r.node)
	s.AddTouchReceiver(r)

	s.InjectPress(10, 10)
	s.InjectMove(10, 10)
	s.InjectMove(10, 10)
	runFrames(s, 3)
	if len(r.moved) != 0 {
		t.Errorf("stationary pointer produced %d moves", len(r.moved))
	}
}

func TestSceneRemoveReceiverCancels(t *testing.T) {
	s := NewScene()
	r := newStubReceiver("panel", 100, 100, true)
	s.Root().AddChild(r.node)
	s.AddTouchReceiver(r)

	s.InjectPress(10, 10)
	runFrames(s, 1)
	s.RemoveTouchReceiver(r)
	if r.cancels != 1 {
		t.Errorf("cancels = %d, want 1", r.cancels)
	}
	s.InjectRelease(10, 10)
	runFrames(s, 1)
	if len(r.ended) != 0 {
		t.Error("removed receiver got TouchEnded")
	}
}

// --- Tables in a scene ---

func TestSceneDragScrollsTable(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	tv, _ := newFixedTable(DefaultTableConfig(320, 400), 50, 40)
	s.AddTable(tv, 10, 20)

	s.InjectDrag(110, 320, 110, 120, 5)
	runFrames(s, 5)

	if tv.ScrollOffset() != 200 {
		t.Errorf("offset = %v, want 200", tv.ScrollOffset())
	}
	if tv.IsTouching() {
		t.Error("gesture should have ended")
	}
	if store.count(EventTouchBegan) != 1 || store.count(EventTouchMoved) != 3 || store.count(EventTouchEnded) != 1 {
		t.Errorf("touch events = %+v", store.events)
	}
	first := store.events[0]
	if first.Source != "table" || first.LocalX != 100 || first.LocalY != 300 || first.GlobalY != 320 {
		t.Errorf("first event = %+v", first)
	}
}

func TestSceneTapSelectsRow(t *testing.T) {
	s := NewScene()
	tv, src := newFixedTable(DefaultTableConfig(320, 400), 50, 40)
	s.AddTable(tv, 0, 100)

	s.InjectTap(50, 150)
	runFrames(s, 2)
	assertLog(t, src.log, "select [0 1]")
}

func TestSceneSetEntityStorePropagates(t *testing.T) {
	s := NewScene()
	tv, _ := newFixedTable(DefaultTableConfig(320, 400), 5, 40)
	s.AddTable(tv, 0, 0)

	store := &recordingStore{}
	s.SetEntityStore(store)
	tv.SelectRow(IndexPath{Row: 0}, false)
	if store.count(EventRowSelected) != 1 {
		t.Error("table should forward to the scene's new store")
	}

	s.RemoveTable(tv)
	tv.SelectRow(IndexPath{Row: 1}, false)
	if store.count(EventRowSelected) != 1 {
		t.Error("removed table should stop forwarding")
	}
	if tv.Node().Parent != nil {
		t.Error("removed table still attached")
	}
}

// --- Injection ---

func TestInjectDragFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 100, 0, 6)
	if s.PendingInjections() != 6 {
		t.Errorf("pending = %d, want 6", s.PendingInjections())
	}
	s.InjectDrag(0, 0, 10, 10, 1)
	if s.PendingInjections() != 8 {
		t.Errorf("short drag should still press and release, pending = %d", s.PendingInjections())
	}
	runFrames(s, 8)
	if s.PendingInjections() != 0 {
		t.Error("queue should drain one event per frame")
	}
}

// --- Test runner ---

func TestLoadTestScript(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "mark", "label": "start"},
		{"action": "tap", "x": 100, "y": 200},
		{"action": "wait", "frames": 3},
		{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 5}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("tap coordinates not parsed")
	}
	if runner.steps[3].ToY != 4 || runner.steps[3].Frames != 5 {
		t.Error("drag fields not parsed")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	for name, data := range map[string]string{
		"invalid json":   `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "screenshot"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerWaitAndMark(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "mark", "label": "a"},
		{"action": "wait", "frames": 3},
		{"action": "mark", "label": "b"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	marks := map[string]int{}
	runner.OnMark = func(label string) { marks[label] = s.Frame() }
	s.SetTestRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		s.UpdateWithDelta(frameDT)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if marks["a"] != 1 || marks["b"] != 4 {
		t.Errorf("marks = %v, want a=1 b=4", marks)
	}
}

func TestRunnerTapSelectsRow(t *testing.T) {
	s := NewScene()
	tv, src := newFixedTable(DefaultTableConfig(320, 400), 50, 40)
	s.AddTable(tv, 0, 0)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "tap", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for i := 0; i < 10 && !runner.Done(); i++ {
		s.UpdateWithDelta(frameDT)
	}
	if !runner.Done() || s.Frame() != 3 {
		t.Errorf("done=%v after %d frames, want 3", runner.Done(), s.Frame())
	}
	assertLog(t, src.log, "select [0 1]")
}

func TestRunnerPressMoveRelease(t *testing.T) {
	s := NewScene()
	tv, _ := newFixedTable(DefaultTableConfig(320, 400), 50, 40)
	s.AddTable(tv, 0, 0)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 50, "y": 300},
		{"action": "move", "x": 50, "y": 250},
		{"action": "move", "x": 50, "y": 150},
		{"action": "release", "x": 50, "y": 150}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		s.UpdateWithDelta(frameDT)
	}
	if tv.ScrollOffset() != 150 {
		t.Errorf("offset = %v, want 150", tv.ScrollOffset())
	}
}

// --- Debug ---

func TestDebugModeDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })

	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on disposed node")
		}
	}()
	s.Root().AddChild(n)
}

func TestDebugStats(t *testing.T) {
	s := NewScene()
	tv, _ := newFixedTable(DefaultTableConfig(320, 400), 50, 40)
	s.AddTable(tv, 0, 0)
	s.AddUpdater(&countingUpdater{})
	tv.Update(0)

	var stats debugStats
	s.collectStats(&stats)
	if stats.tables != 1 {
		t.Errorf("tables = %d, want 1", stats.tables)
	}
	if stats.visible != 10 {
		t.Errorf("visible = %d, want 10", stats.visible)
	}
	if stats.relayout != 51 {
		t.Errorf("relayout = %d, want 51", stats.relayout)
	}
}
