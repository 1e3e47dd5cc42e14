package garden

// Direction is one of the four movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// keyDirections maps key names to directions. Arrow keys and WASD are
// interchangeable; both terminal key names and browser key codes are known.
var keyDirections = map[string]Direction{
	"left": DirLeft, "a": DirLeft, "ArrowLeft": DirLeft, "KeyA": DirLeft,
	"right": DirRight, "d": DirRight, "ArrowRight": DirRight, "KeyD": DirRight,
	"up": DirUp, "w": DirUp, "ArrowUp": DirUp, "KeyW": DirUp,
	"down": DirDown, "s": DirDown, "ArrowDown": DirDown, "KeyS": DirDown,
}

// DirectionForKey returns the direction bound to key.
func DirectionForKey(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// InputState tracks which movement keys are currently held.
type InputState struct {
	held map[string]bool
}

// NewInputState creates an empty input state.
func NewInputState() InputState {
	return InputState{held: make(map[string]bool)}
}

// Press marks key as held. Returns false for keys that are not movement keys.
func (s *InputState) Press(key string) bool {
	if _, ok := keyDirections[key]; !ok {
		return false
	}
	if s.held == nil {
		s.held = make(map[string]bool)
	}
	s.held[key] = true
	return true
}

// Release marks key as no longer held.
func (s *InputState) Release(key string) {
	delete(s.held, key)
}

// ReleaseAll forgets every held key.
func (s *InputState) ReleaseAll() {
	clear(s.held)
}

// Held reports whether any key bound to d is held.
func (s *InputState) Held(d Direction) bool {
	for key := range s.held {
		if keyDirections[key] == d {
			return true
		}
	}
	return false
}

// Intent returns the raw direction from the union of held keys.
// Opposite directions held together cancel out.
func (s *InputState) Intent() (dx, dy int) {
	if s.Held(DirLeft) {
		dx--
	}
	if s.Held(DirRight) {
		dx++
	}
	if s.Held(DirUp) {
		dy--
	}
	if s.Held(DirDown) {
		dy++
	}
	return dx, dy
}
