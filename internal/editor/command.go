package editor

import "context"

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// Skipped means pre-conditions weren't met (e.g., backspace at 0,0).
	// The key is still consumed.
	Skipped
)

// Command is one key-triggered editing operation.
//
// Registered commands are shared prototypes: they must keep no state between
// executions. Commands carrying data (the typed byte) are built per key.
type Command interface {
	// Execute applies the command to the session. A non-nil error is fatal.
	Execute(ctx context.Context, s *Session) (ExecuteResult, error)

	// Keys returns the trigger key(s) that invoke this command.
	// For single-key commands: []string{"h"}
	// For special keys: []string{"<backspace>"}, []string{"<enter>"}
	Keys() []string

	// Mode returns which mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier, e.g. "move.down", "insert.char".
	ID() string

	// ChangesContent returns true if this command can modify the document.
	ChangesContent() bool

	// IsModeChange returns true if this command switches modes.
	IsModeChange() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Command implementations
// ============================================================================

// MotionBase is embedded by cursor motions: no content change, no mode change.
type MotionBase struct{}

func (MotionBase) ChangesContent() bool { return false }
func (MotionBase) IsModeChange() bool   { return false }

// ModeEntryBase is embedded by commands that only switch modes.
type ModeEntryBase struct{}

func (ModeEntryBase) ChangesContent() bool { return false }
func (ModeEntryBase) IsModeChange() bool   { return true }

// InsertBase is embedded by INSERT mode edits.
type InsertBase struct{}

func (InsertBase) ChangesContent() bool { return true }
func (InsertBase) IsModeChange() bool   { return false }

// CommandLineBase is embedded by commands editing the COMMAND mode accumulator.
type CommandLineBase struct{}

func (CommandLineBase) ChangesContent() bool { return false }
func (CommandLineBase) IsModeChange() bool   { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
type CommandRegistry struct {
	// commands maps Mode -> trigger key -> prototype command
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[string]Command),
	}
}

// Register adds a command under each of its Keys() for its Mode().
func (r *CommandRegistry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves a command for a specific mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// ============================================================================
// PendingCommandRegistry - Multi-key sequence dispatch
// ============================================================================

// PendingCommandRegistry maps (operator rune, following keys) -> prototype Command.
// Example: ('g', "g") -> MoveToFirstLineCommand
type PendingCommandRegistry struct {
	commands map[rune]map[string]Command
}

// NewPendingCommandRegistry creates an empty pending command registry.
func NewPendingCommandRegistry() *PendingCommandRegistry {
	return &PendingCommandRegistry{
		commands: make(map[rune]map[string]Command),
	}
}

// Register adds a command for a specific operator and key sequence.
func (r *PendingCommandRegistry) Register(operator rune, keys string, cmd Command) {
	if r.commands[operator] == nil {
		r.commands[operator] = make(map[string]Command)
	}
	r.commands[operator][keys] = cmd
}

// Get retrieves a command for a specific operator and key sequence.
func (r *PendingCommandRegistry) Get(operator rune, keySequence string) (Command, bool) {
	if opMap, ok := r.commands[operator]; ok {
		if cmd, ok := opMap[keySequence]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// ============================================================================
// Default Registries
// ============================================================================

// DefaultPendingRegistry holds every multi-key sequence.
var DefaultPendingRegistry = newDefaultPendingRegistry()

func newDefaultPendingRegistry() *PendingCommandRegistry {
	r := NewPendingCommandRegistry()
	r.Register('g', "g", &MoveToFirstLineCommand{})
	return r
}

// DefaultRegistry holds every single-key command.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Normal mode
	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MoveDownCommand{})
	r.Register(&MoveUpCommand{})
	r.Register(&MoveToLastLineCommand{})
	r.Register(&StartPendingCommand{operator: 'g'})
	r.Register(&EnterInsertModeCommand{})
	r.Register(&EnterInsertModeAfterCommand{})
	r.Register(&EnterCommandModeCommand{})

	// Insert mode
	r.Register(&SplitLineCommand{})
	r.Register(&BackspaceCommand{})
	r.Register(&EscapeCommand{})

	// Command mode
	r.Register(&CommandLineSubmitCommand{})
	r.Register(&CommandLineBackspaceCommand{})
	r.Register(&CommandLineEscapeCommand{})

	return r
}
