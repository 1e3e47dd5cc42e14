package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bee-garden/internal/core"
	"github.com/vovakirdan/bee-garden/internal/garden"
)

// KeyMapper translates Bubble Tea key messages to garden input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter", " ":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "s":
		return core.ActionShare, false
	case "tab":
		return core.ActionScoreboard, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MovementKey returns the key name if msg steers the bee.
func (km *KeyMapper) MovementKey(msg tea.KeyMsg) (string, bool) {
	key := msg.String()
	if _, ok := garden.DirectionForKey(key); !ok {
		return "", false
	}
	return key, true
}

// heldKey is a direction kept down until its deadline.
type heldKey struct {
	key   string
	until time.Time
}

// HoldTracker turns the press-only key stream of a terminal into held keys.
// A first press holds for the initial duration, long enough to cover the
// terminal's auto-repeat delay; every repeat extends the hold. Pressing the
// opposite direction releases the current one at once.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[garden.Direction]heldKey
}

// NewHoldTracker creates a tracker with the given hold durations.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[garden.Direction]heldKey),
	}
}

// Press records a press of key at now. It returns the keys that were
// released by it and false if key is not a movement key.
func (h *HoldTracker) Press(key string, now time.Time) (released []string, ok bool) {
	dir, ok := garden.DirectionForKey(key)
	if !ok {
		return nil, false
	}

	if cur, held := h.held[dir]; held {
		until := now.Add(h.repeat)
		if until.Before(cur.until) {
			until = cur.until
		}
		if cur.key != key {
			released = append(released, cur.key)
		}
		h.held[dir] = heldKey{key: key, until: until}
		return released, true
	}

	if opp, held := h.held[dir.Opposite()]; held {
		released = append(released, opp.key)
		delete(h.held, dir.Opposite())
	}
	h.held[dir] = heldKey{key: key, until: now.Add(h.initial)}
	return released, true
}

// Expire releases every key whose hold ran out by now.
func (h *HoldTracker) Expire(now time.Time) []string {
	var released []string
	for dir, k := range h.held {
		if !now.Before(k.until) {
			released = append(released, k.key)
			delete(h.held, dir)
		}
	}
	return released
}

// ReleaseAll drops every hold and returns the released keys.
func (h *HoldTracker) ReleaseAll() []string {
	released := make([]string, 0, len(h.held))
	for _, k := range h.held {
		released = append(released, k.key)
	}
	clear(h.held)
	return released
}

// Held reports whether a key for dir is currently held.
func (h *HoldTracker) Held(dir garden.Direction) bool {
	_, ok := h.held[dir]
	return ok
}
