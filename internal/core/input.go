package core

// Command is a discrete player intent, abstracted from physical key presses.
type Command int

const (
	CommandNone      Command = iota
	CommandMoveLeft          // A, Left arrow
	CommandMoveRight         // D, Right arrow
	CommandJump              // Space, W, Up arrow
	CommandRestart           // Enter, R - only honoured after game over
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandJump:
		return "Jump"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// CommandBuffer collects commands produced between two frames.
// Commands are coalesced rather than queued: lane moves collapse into a net
// shift and repeated jumps or restarts collapse into a single flag.
type CommandBuffer struct {
	laneShift int
	jump      bool
	restart   bool
}

// Push records a command for the next frame.
func (b *CommandBuffer) Push(c Command) {
	switch c {
	case CommandMoveLeft:
		b.laneShift--
	case CommandMoveRight:
		b.laneShift++
	case CommandJump:
		b.jump = true
	case CommandRestart:
		b.restart = true
	}
}

// LaneShift returns the net lane change requested since the last Clear.
func (b CommandBuffer) LaneShift() int {
	return b.laneShift
}

// Jump reports whether a jump was requested.
func (b CommandBuffer) Jump() bool {
	return b.jump
}

// Restart reports whether a restart was requested.
func (b CommandBuffer) Restart() bool {
	return b.restart
}

// Empty reports whether nothing is pending.
func (b CommandBuffer) Empty() bool {
	return b.laneShift == 0 && !b.jump && !b.restart
}

// Clear drops all pending commands.
func (b *CommandBuffer) Clear() {
	*b = CommandBuffer{}
}

// Take returns the pending commands and clears the buffer.
func (b *CommandBuffer) Take() CommandBuffer {
	taken := *b
	b.Clear()
	return taken
}
