package editor

import "unicode"

// HandleKey processes one key press and reports whether the editor
// should quit. Modifier keys are latched: s, g and c toggle start, goal
// and weighted mode.
func (e *EditorState) HandleKey(key rune) bool {
	if e.dialog != "" {
		e.DismissDialog()
		return false
	}

	switch e.input {
	case InputCommand:
		e.handleCommandKey(key)
		return e.GetQuitRequest()
	default:
		return e.handleNormalKey(key)
	}
}

// handleNormalKey processes keys in normal mode
func (e *EditorState) handleNormalKey(key rune) bool {
	switch key {
	case 'q', 3: // q or Ctrl+C
		return true

	case 's', 'S':
		e.ToggleKey(KeyStart)
	case 'g', 'G':
		e.ToggleKey(KeyGoal)
	case 'c', 'C':
		e.ToggleKey(KeyWeighted)

	case 27: // ESC drops every latched modifier
		e.ReleaseAll()

	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		e.SetCost(int(key - '0'))

	case '+', '=':
		e.SetCellSize(e.cellSize + 1)
	case '-':
		if e.cellSize > 1 {
			e.SetCellSize(e.cellSize - 1)
		}

	case 'a':
		e.CycleAlgorithm()
	case 'h':
		e.CycleHeuristic()
	case 'p':
		e.CyclePreset()
	case 'n':
		e.NewMap()
	case 'r':
		e.RequestRefresh()

	case 13, 10, ' ':
		e.searchRequested = true

	case 'w': // Prefill the save command with the current name
		initial := "save "
		if e.mapName != "" {
			initial += e.mapName
		}
		e.startCommand(initial)

	case ':':
		e.startCommand("")
	}

	return false
}

// handleCommandKey processes keys in command mode
func (e *EditorState) handleCommandKey(key rune) {
	switch key {
	case 27: // ESC - cancel command
		e.endCommand()

	case 127, 8: // Backspace
		if len(e.commandBuffer) > 0 {
			e.commandBuffer = e.commandBuffer[:len(e.commandBuffer)-1]
			e.touch()
		}

	case 13, 10: // Enter - execute command
		line := string(e.commandBuffer)
		e.endCommand()
		e.ExecuteCommand(line)

	default:
		if unicode.IsPrint(key) {
			e.commandBuffer = append(e.commandBuffer, key)
			e.touch()
		}
	}
}
