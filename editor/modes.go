package editor

// Mode is the painting tool selected by the held modifier keys
type Mode int

const (
	ModeWall     Mode = iota // No modifier: toggle walls
	ModeStart                // Place the start cell
	ModeGoal                 // Place the goal cell
	ModeWeighted             // Paint weighted cells
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeWall:
		return "WALL"
	case ModeStart:
		return "START"
	case ModeGoal:
		return "GOAL"
	case ModeWeighted:
		return "WEIGHT"
	default:
		return "UNKNOWN"
	}
}

// ModifierKey is a key that selects a mode while held
type ModifierKey int

const (
	KeyStart    ModifierKey = iota // S
	KeyGoal                        // G
	KeyWeighted                    // C
	modifierCount
)

// InputMode decides how key presses are interpreted
type InputMode int

const (
	InputNormal  InputMode = iota // Keys are editor shortcuts
	InputCommand                  // Keys edit the command line
)

// PressKey marks a modifier key as held.
func (e *EditorState) PressKey(k ModifierKey) {
	if k < 0 || k >= modifierCount || e.held[k] {
		return
	}
	e.held[k] = true
	e.touch()
}

// ReleaseKey marks a modifier key as released.
func (e *EditorState) ReleaseKey(k ModifierKey) {
	if k < 0 || k >= modifierCount || !e.held[k] {
		return
	}
	e.held[k] = false
	e.touch()
}

// ToggleKey flips a modifier key. Hosts without key-release events
// latch modifiers with it.
func (e *EditorState) ToggleKey(k ModifierKey) {
	if k < 0 || k >= modifierCount {
		return
	}
	if e.held[k] {
		e.ReleaseKey(k)
	} else {
		e.PressKey(k)
	}
}

// ReleaseAll releases every modifier key.
func (e *EditorState) ReleaseAll() {
	for k := range e.held {
		e.ReleaseKey(ModifierKey(k))
	}
}

// Held reports whether a modifier key is held.
func (e *EditorState) Held(k ModifierKey) bool {
	return k >= 0 && k < modifierCount && e.held[k]
}

// Mode returns the active tool. With several modifiers held the highest
// priority wins: start, then goal, then weighted.
func (e *EditorState) Mode() Mode {
	switch {
	case e.held[KeyStart]:
		return ModeStart
	case e.held[KeyGoal]:
		return ModeGoal
	case e.held[KeyWeighted]:
		return ModeWeighted
	default:
		return ModeWall
	}
}

// InputMode returns how keys are currently interpreted.
func (e *EditorState) InputMode() InputMode {
	return e.input
}
