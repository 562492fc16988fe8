// Package agents defines the client interface for invoking the managed
// Bedrock agents, the agent descriptors, and the error taxonomy shared by
// implementations.
package agents

import (
	"context"
	"encoding/json"
)

// Agent names as they appear in logs and error messages.
const (
	CourseCreatorName = "CourseCreatorAgent"
	TrainerName       = "TrainerAgent"
)

// Agent identifies a deployed Bedrock agent by its ID/alias pair.
type Agent struct {
	Name    string
	ID      string
	AliasID string
}

// Configured reports whether both identifiers are present.
func (a Agent) Configured() bool {
	return a.ID != "" && a.AliasID != ""
}

// Client defines the interface for invoking a managed agent with a prompt.
// Implementations return the agent's completion as raw JSON so callers can
// relay it verbatim.
type Client interface {
	Invoke(ctx context.Context, agent Agent, prompt string) (json.RawMessage, error)
}
