package progress

// State is the mutually exclusive display state of a module.
type State string

const (
	StateLocked    State = "locked"
	StateUnlocked  State = "unlocked"
	StateCompleted State = "completed"
)

// StateFor derives a module's state purely from the aggregate completed
// count. Module i (i > 1) is locked while fewer than i-1 modules are
// complete; module 1 is never locked. A module shows as completed once the
// completed count reaches its index.
//
// Note the completed check is deliberately count-based rather than a lookup
// of that module's own record. Modules finished out of order shift the
// whole display window; changing this is a product decision, not a bug fix.
func StateFor(moduleID, completedCount int) State {
	if completedCount >= moduleID {
		return StateCompleted
	}
	if completedCount < moduleID-1 {
		return StateLocked
	}
	return StateUnlocked
}
