package editor

import "time"

// PendingCommandBuilder accumulates a multi-key sequence in NORMAL mode.
// A sequence holds its operator plus at most one following key and is
// abandoned once its deadline passes.
type PendingCommandBuilder struct {
	operator  rune      // 'g' or 0 for none
	keyBuffer string    // keys after the operator
	deadline  time.Time // when the sequence is abandoned
}

// NewPendingCommandBuilder creates an empty pending command builder.
func NewPendingCommandBuilder() *PendingCommandBuilder {
	return &PendingCommandBuilder{}
}

// Clear resets the builder to empty state.
func (b *PendingCommandBuilder) Clear() {
	b.operator = 0
	b.keyBuffer = ""
	b.deadline = time.Time{}
}

// IsEmpty returns true if no pending command is being built.
func (b *PendingCommandBuilder) IsEmpty() bool {
	return b.operator == 0
}

// Start records op as the first key of a sequence that must complete before
// deadline.
func (b *PendingCommandBuilder) Start(op rune, deadline time.Time) {
	b.operator = op
	b.keyBuffer = ""
	b.deadline = deadline
}

// Operator returns the current pending operator.
func (b *PendingCommandBuilder) Operator() rune {
	return b.operator
}

// AppendKey adds a key to the buffer for multi-key sequences.
func (b *PendingCommandBuilder) AppendKey(key string) {
	b.keyBuffer += key
}

// KeyBuffer returns the current buffered keys.
func (b *PendingCommandBuilder) KeyBuffer() string {
	return b.keyBuffer
}

// Deadline returns when the pending sequence expires.
func (b *PendingCommandBuilder) Deadline() time.Time {
	return b.deadline
}

// Expired reports whether a pending sequence has outlived its deadline.
func (b *PendingCommandBuilder) Expired(now time.Time) bool {
	return !b.IsEmpty() && !now.Before(b.deadline)
}
