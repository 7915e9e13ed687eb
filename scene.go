package scrollkit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type EventType
	// Source names what the event concerns: the receiver's node name for
	// touches and row events, the goal key for goal moves.
	Source  string
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	// Row fields (valid for EventRowSelected, EventRowDeselected)
	Index IndexPath
	// Motion fields (valid for EventTouchMoved, EventGoalMoved)
	DeltaX float64
	DeltaY float64
	// Time is the scene clock in seconds when the event was produced.
	Time float64
}

// Updater is advanced once per frame by the scene.
type Updater interface {
	Update(dt float64)
}

// TouchReceiver takes primary-pointer gestures in its node's local space.
// Samples are delivered while the pointer that started over the receiver's
// bounds (0..Size) stays down. TouchBegan returning false passes the touch
// on to the next receiver below.
type TouchReceiver interface {
	Node() *Node
	Size() Vec2
	TouchBegan(TouchSample) bool
	TouchMoved(TouchSample) bool
	TouchEnded(TouchSample) bool
	TouchCancelled()
}

// Scene is the top-level object that owns the node tree, frame clock,
// pointer state and the list of things to advance each frame.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	updaters  []Updater
	receivers []TouchReceiver
	clock     float64
	frame     int

	// Input state
	pointer     pointerState
	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Clock returns the seconds of simulated time the scene has advanced.
func (s *Scene) Clock() float64 { return s.clock }

// Frame returns the number of frames the scene has advanced.
func (s *Scene) Frame() int { return s.frame }

// AddUpdater registers u to be advanced every frame, after input.
func (s *Scene) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

// RemoveUpdater unregisters u.
func (s *Scene) RemoveUpdater(u Updater) {
	for i, x := range s.updaters {
		if x == u {
			s.updaters = append(s.updaters[:i], s.updaters[i+1:]...)
			return
		}
	}
}

// AddTouchReceiver registers r for pointer gestures. Receivers added later
// are considered first, matching paint order.
func (s *Scene) AddTouchReceiver(r TouchReceiver) {
	s.receivers = append(s.receivers, r)
}

// RemoveTouchReceiver unregisters r, cancelling its gesture if one is active.
func (s *Scene) RemoveTouchReceiver(r TouchReceiver) {
	for i, x := range s.receivers {
		if x == r {
			s.receivers = append(s.receivers[:i], s.receivers[i+1:]...)
			break
		}
	}
	if s.pointer.target == r {
		r.TouchCancelled()
		s.pointer.target = nil
	}
}

// AddTable attaches tv's node to the root at (x, y) and registers it for
// updates and touches. The table forwards selection events to the scene's
// entity store.
func (s *Scene) AddTable(tv *TableView, x, y float64) {
	tv.Node().SetPosition(x, y)
	s.root.AddChild(tv.Node())
	s.AddUpdater(tv)
	s.AddTouchReceiver(tv)
	tv.SetEntityStore(s.store)
}

// RemoveTable undoes AddTable.
func (s *Scene) RemoveTable(tv *TableView) {
	tv.Node().RemoveFromParent()
	s.RemoveUpdater(tv)
	s.RemoveTouchReceiver(tv)
	tv.SetEntityStore(nil)
}

// Update advances the scene by one tick of ebiten's TPS.
func (s *Scene) Update() {
	s.UpdateWithDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateWithDelta advances the scene by dt seconds: transforms are
// refreshed, the test runner steps, input is dispatched, then every updater
// runs.
func (s *Scene) UpdateWithDelta(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.clock += dt
	s.frame++
	updateWorldTransform(s.root, identityTransform, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	if s.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, u := range s.updaters {
		u.Update(dt)
	}

	if s.debug {
		stats.updateTime = time.Since(t0)
		s.collectStats(&stats)
		s.debugLog(stats)
	}
}

// SetEntityStore sets the optional ECS bridge. Tables already added with
// AddTable are switched to the new store.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
	for _, u := range s.updaters {
		if tv, ok := u.(*TableView); ok {
			tv.SetEntityStore(store)
		}
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-frame stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
