// Package applysession tracks the legal order of an in-place apply:
// the backup must exist before patching, and patched text must exist before
// the target is written.
package applysession

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Session states.
const (
	StatePending    = "pending"
	StateBackedUp   = "backed_up"
	StatePatched    = "patched"
	StateCommitted  = "committed"
	StateRolledBack = "rolled_back"
)

// Session events.
const (
	EventBackup = "backup"
	EventPatch  = "patch"
	EventCommit = "commit"
	EventFail   = "fail"
)

// SessionContext carries session data.
type SessionContext struct {
	Target string
}

// Session wraps a statekit interpreter over the apply lifecycle.
type Session struct {
	interpreter *statekit.Interpreter[SessionContext]
}

func NewSession(target string) (*Session, error) {
	builder := statekit.NewMachine[SessionContext]("apply-session").
		WithInitial(StatePending).
		WithContext(SessionContext{Target: target})

	builder.State(StatePending).
		On(EventBackup).Target(StateBackedUp).
		Done()

	builder.State(StateBackedUp).
		On(EventPatch).Target(StatePatched).
		On(EventFail).Target(StateRolledBack).
		Done()

	builder.State(StatePatched).
		On(EventCommit).Target(StateCommitted).
		On(EventFail).Target(StateRolledBack).
		Done()

	builder.State(StateCommitted).
		Done()

	builder.State(StateRolledBack).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build apply session machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Session{interpreter: interpreter}, nil
}

// Transition attempts to advance the session. In statekit, if no transition
// matches the event the state stays the same, which here means the step
// ordering was violated.
func (s *Session) Transition(event string) error {
	before := s.Current()
	s.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := s.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("apply step '%s' is not allowed while the session is in the '%s' state", event, before)
}

func (s *Session) Current() string {
	return string(s.interpreter.State().Value)
}
