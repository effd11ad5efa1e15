package editor

import "context"

// ============================================================================
// Mode Entry Commands
// ============================================================================

// EnterInsertModeCommand enters insert mode at the cursor position (i command).
type EnterInsertModeCommand struct {
	ModeEntryBase
}

// Execute enters insert mode at the current cursor position.
func (c *EnterInsertModeCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.setMode(ModeInsert)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeCommand) Keys() []string {
	return []string{"i"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeCommand) ID() string {
	return "mode.insert"
}

// EnterInsertModeAfterCommand enters insert mode after the cursor (a command).
type EnterInsertModeAfterCommand struct {
	ModeEntryBase
}

// Execute moves right by one (if not at end of line) and enters insert mode.
func (c *EnterInsertModeAfterCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cursor.SetColumn(min(s.cursor.Col+1, s.doc.RowLength(s.cursor.Row)))
	s.setMode(ModeInsert)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeAfterCommand) Keys() []string {
	return []string{"a"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeAfterCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeAfterCommand) ID() string {
	return "mode.insert_after"
}

// EnterCommandModeCommand opens the command line (: command).
type EnterCommandModeCommand struct {
	ModeEntryBase
}

// Execute clears the command line and any status message and enters command mode.
func (c *EnterCommandModeCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cmdline = s.cmdline[:0]
	s.clearMessage()
	s.setMode(ModeCommand)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *EnterCommandModeCommand) Keys() []string {
	return []string{":"}
}

// Mode returns the mode this command operates in.
func (c *EnterCommandModeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterCommandModeCommand) ID() string {
	return "mode.command"
}

// StartPendingCommand begins a multi-key sequence such as gg. The sequence is
// abandoned if the next key does not arrive before the session's timeout.
type StartPendingCommand struct {
	MotionBase
	operator rune
}

// Execute records the operator and its deadline.
func (c *StartPendingCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.pending.Start(c.operator, s.clock.Now().Add(s.sequenceTimeout))
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *StartPendingCommand) Keys() []string {
	return []string{string(c.operator)}
}

// Mode returns the mode this command operates in.
func (c *StartPendingCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *StartPendingCommand) ID() string {
	return "pending." + string(c.operator)
}

// ============================================================================
// Escape Commands
// ============================================================================

// EscapeCommand exits insert mode and returns to normal mode.
type EscapeCommand struct {
	ModeEntryBase
}

// Execute restores the block cursor and returns to normal mode.
func (c *EscapeCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.setMode(ModeNormal)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *EscapeCommand) Keys() []string {
	return []string{"<escape>"}
}

// Mode returns the mode this command operates in.
func (c *EscapeCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *EscapeCommand) ID() string {
	return "mode.escape"
}

// ============================================================================
// Command Line Commands
// ============================================================================

// CommandLineAppendCommand appends a typed byte to the command line.
// Built per key by the session; never registered.
type CommandLineAppendCommand struct {
	CommandLineBase
	char byte
}

// Execute appends the byte.
func (c *CommandLineAppendCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cmdline = append(s.cmdline, c.char)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *CommandLineAppendCommand) Keys() []string {
	return []string{string(rune(c.char))}
}

// Mode returns the mode this command operates in.
func (c *CommandLineAppendCommand) Mode() Mode {
	return ModeCommand
}

// ID returns the hierarchical identifier for this command.
func (c *CommandLineAppendCommand) ID() string {
	return "cmdline.append"
}

// CommandLineBackspaceCommand deletes the last byte of the command line.
// On an empty command line it leaves command mode.
type CommandLineBackspaceCommand struct {
	CommandLineBase
}

// IsModeChange returns true; an empty command line returns to normal mode.
func (c *CommandLineBackspaceCommand) IsModeChange() bool { return true }

// Execute drops the last byte, or returns to normal mode when nothing is left.
func (c *CommandLineBackspaceCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	if len(s.cmdline) == 0 {
		s.setMode(ModeNormal)
		return Executed, nil
	}
	s.cmdline = s.cmdline[:len(s.cmdline)-1]
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *CommandLineBackspaceCommand) Keys() []string {
	return []string{"<backspace>"}
}

// Mode returns the mode this command operates in.
func (c *CommandLineBackspaceCommand) Mode() Mode {
	return ModeCommand
}

// ID returns the hierarchical identifier for this command.
func (c *CommandLineBackspaceCommand) ID() string {
	return "cmdline.backspace"
}

// CommandLineEscapeCommand discards the command line.
type CommandLineEscapeCommand struct {
	ModeEntryBase
}

// Execute clears the command line and returns to normal mode.
func (c *CommandLineEscapeCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cmdline = s.cmdline[:0]
	s.setMode(ModeNormal)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *CommandLineEscapeCommand) Keys() []string {
	return []string{"<escape>"}
}

// Mode returns the mode this command operates in.
func (c *CommandLineEscapeCommand) Mode() Mode {
	return ModeCommand
}

// ID returns the hierarchical identifier for this command.
func (c *CommandLineEscapeCommand) ID() string {
	return "cmdline.escape"
}

// CommandLineSubmitCommand runs the command line (enter in command mode).
type CommandLineSubmitCommand struct {
	ModeEntryBase
}

// Execute returns to normal mode and dispatches the accumulated text.
func (c *CommandLineSubmitCommand) Execute(ctx context.Context, s *Session) (ExecuteResult, error) {
	line := string(s.cmdline)
	s.cmdline = s.cmdline[:0]
	s.setMode(ModeNormal)
	return s.runExCommand(ctx, line), nil
}

// Keys returns the trigger keys for this command.
func (c *CommandLineSubmitCommand) Keys() []string {
	return []string{"<enter>"}
}

// Mode returns the mode this command operates in.
func (c *CommandLineSubmitCommand) Mode() Mode {
	return ModeCommand
}

// ID returns the hierarchical identifier for this command.
func (c *CommandLineSubmitCommand) ID() string {
	return "cmdline.submit"
}
