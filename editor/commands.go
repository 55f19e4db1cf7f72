package editor

import (
	"errors"
	"fmt"
	"gridmap/core"
	"gridmap/export"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned by ExecuteCommand for unrecognised input.
var ErrUnknownCommand = errors.New("unknown command")

// CommandBuffer returns the command line being typed, without the colon.
func (e *EditorState) CommandBuffer() string {
	return string(e.commandBuffer)
}

// startCommand switches to command mode with an initial buffer.
func (e *EditorState) startCommand(initial string) {
	e.input = InputCommand
	e.commandBuffer = []rune(initial)
	e.touch()
}

// endCommand returns to normal key handling.
func (e *EditorState) endCommand() {
	e.input = InputNormal
	e.commandBuffer = e.commandBuffer[:0]
	e.touch()
}

// ExecuteCommand runs one command line, e.g. "cost 4" or "save maze".
// Requests that need the network or the filesystem are left for the host
// to pick up with the Get*Request methods.
func (e *EditorState) ExecuteCommand(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	args := parts[1:]

	switch parts[0] {
	case "q", "quit":
		e.quitRequested = true

	case "search", "run":
		e.searchRequested = true

	case "w", "save":
		name := e.mapName
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		e.saveRequested = true
		e.saveName = name

	case "load", "open":
		if len(args) == 0 {
			return e.usage("load <map>")
		}
		return e.LoadPreset(strings.Join(args, " "))

	case "new":
		return e.NewMap()

	case "maps", "refresh":
		e.RequestRefresh()

	case "cell":
		n, err := e.intArg(args, "cell <size>")
		if err != nil {
			return err
		}
		return e.SetCellSize(n)

	case "cost":
		n, err := e.intArg(args, "cost <1-9>")
		if err != nil {
			return err
		}
		return e.SetCost(n)

	case "alg", "algorithm":
		if len(args) != 1 {
			return e.usage("alg <" + joinIDs(core.Algorithms()) + ">")
		}
		a, err := core.ParseAlgorithm(args[0])
		if err != nil {
			e.SetStatus(err.Error())
			return err
		}
		e.SetAlgorithm(a)

	case "heur", "heuristic":
		if len(args) != 1 {
			return e.usage("heur <" + joinIDs(core.Heuristics()) + ">")
		}
		h, err := core.ParseHeuristic(args[0])
		if err != nil {
			e.SetStatus(err.Error())
			return err
		}
		if !e.SetHeuristic(h) {
			e.SetStatus(e.msgs.Get("Heuristic is not used by %s", string(e.algorithm)))
		}

	case "export":
		if len(args) != 2 {
			return e.usage("export <text|png|ansi> <file>")
		}
		if _, err := export.ParseFormat(args[0]); err != nil {
			e.SetStatus(err.Error())
			return err
		}
		e.exportFormat = args[0]
		e.exportFilename = args[1]

	default:
		e.SetStatus(e.msgs.Get("Unknown command: %s", parts[0]))
		return fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
	return nil
}

func (e *EditorState) usage(text string) error {
	e.SetStatus(e.msgs.Get("Usage: %s", text))
	return fmt.Errorf("usage: %s", text)
}

func (e *EditorState) intArg(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, e.usage(usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, e.usage(usage)
	}
	return n, nil
}

func joinIDs[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, "|")
}

// GetSearchRequest returns and clears any search request
func (e *EditorState) GetSearchRequest() bool {
	requested := e.searchRequested
	e.searchRequested = false
	return requested
}

// GetSaveRequest returns and clears any save request
func (e *EditorState) GetSaveRequest() (bool, string) {
	requested := e.saveRequested
	name := e.saveName
	e.saveRequested = false
	e.saveName = ""
	return requested, name
}

// GetExportRequest returns and clears any export request
func (e *EditorState) GetExportRequest() (format, filename string) {
	format = e.exportFormat
	filename = e.exportFilename
	e.exportFormat = ""
	e.exportFilename = ""
	return format, filename
}

// GetQuitRequest returns and clears any quit request
func (e *EditorState) GetQuitRequest() bool {
	requested := e.quitRequested
	e.quitRequested = false
	return requested
}
