package scrollkit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the single primary pointer. Mouse and the first
// active touch both feed it; additional touches are ignored.
type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target TouchReceiver
}

// --- Hit testing ---

// receiverContains reports whether the world point lies inside r's bounds.
func receiverContains(r TouchReceiver, wx, wy float64) bool {
	n := r.Node()
	if n == nil || !n.Visible {
		return false
	}
	lx, ly := n.WorldToLocal(wx, wy)
	size := r.Size()
	return lx >= 0 && lx <= size.X && ly >= 0 && ly <= size.Y
}

func (s *Scene) localSample(r TouchReceiver, wx, wy float64) TouchSample {
	lx, ly := r.Node().WorldToLocal(wx, wy)
	return TouchSample{Pos: Vec2{lx, ly}, Time: s.clock}
}

// --- Input processing ---

// processInput is called from Scene.Update to handle the primary pointer.
// An injected event, when queued, replaces real input for the frame.
// World transforms are already refreshed at the start of Scene.Update.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	x, y, pressed := s.readPointer()
	s.processPointer(x, y, pressed)
}

// readPointer samples the first active touch, falling back to the mouse.
func (s *Scene) readPointer() (x, y float64, pressed bool) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if s.touchActive {
		for _, id := range s.touchIDs {
			if id == s.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		s.touchActive = false
		return s.pointer.lastX, s.pointer.lastY, false
	}
	if len(s.touchIDs) > 0 && !s.pointer.down {
		s.touchID = s.touchIDs[0]
		s.touchActive = true
		tx, ty := ebiten.TouchPosition(s.touchID)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer runs the pointer state machine.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = wx, wy
		ps.target = nil
		for i := len(s.receivers) - 1; i >= 0; i-- {
			r := s.receivers[i]
			if !receiverContains(r, wx, wy) {
				continue
			}
			if r.TouchBegan(s.localSample(r, wx, wy)) {
				ps.target = r
				break
			}
		}
		s.emitTouch(EventTouchBegan, ps.target, wx, wy, 0, 0)

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			return
		}
		dx, dy := wx-ps.lastX, wy-ps.lastY
		ps.lastX, ps.lastY = wx, wy
		if ps.target != nil {
			ps.target.TouchMoved(s.localSample(ps.target, wx, wy))
		}
		s.emitTouch(EventTouchMoved, ps.target, wx, wy, dx, dy)

	case !pressed && ps.down:
		dx, dy := wx-ps.lastX, wy-ps.lastY
		ps.lastX, ps.lastY = wx, wy
		if ps.target != nil {
			ps.target.TouchEnded(s.localSample(ps.target, wx, wy))
		}
		s.emitTouch(EventTouchEnded, ps.target, wx, wy, dx, dy)
		ps.down = false
		ps.target = nil

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// --- ECS bridge ---

// emitTouch forwards a gesture event for a receiver. Touches that no
// receiver took are not forwarded.
func (s *Scene) emitTouch(t EventType, r TouchReceiver, wx, wy, dx, dy float64) {
	if s.store == nil || r == nil {
		return
	}
	n := r.Node()
	lx, ly := n.WorldToLocal(wx, wy)
	s.store.EmitEvent(InteractionEvent{
		Type:    t,
		Source:  n.Name,
		GlobalX: wx,
		GlobalY: wy,
		LocalX:  lx,
		LocalY:  ly,
		DeltaX:  dx,
		DeltaY:  dy,
		Time:    s.clock,
	})
}
