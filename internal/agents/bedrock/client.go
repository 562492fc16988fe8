// Package bedrock implements the agents.Client interface on top of the AWS
// Bedrock agent runtime. Each invocation opens a fresh session, sends the
// prompt as the session's input text, drains the streamed completion into a
// single UTF-8 string, and decodes it as JSON.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	smithy "github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents"
	"github.com/anirudhnekkanti/LMSAgentAPI/internal/logging"
)

// AgentRuntime mirrors the subset of the AWS Bedrock agent runtime client
// required by the adapter. It matches *bedrockagentruntime.Client so callers
// can pass either the real client or a mock in tests.
type AgentRuntime interface {
	InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeAgentOutput, error)
}

// Client implements agents.Client over the Bedrock InvokeAgent operation.
type Client struct {
	runtime AgentRuntime
}

// New creates a Bedrock-backed agent client.
func New(runtime AgentRuntime) (*Client, error) {
	if runtime == nil {
		return nil, errors.New("bedrock agent runtime client is required")
	}
	return &Client{runtime: runtime}, nil
}

// Invoke sends the prompt to the given agent under a fresh session ID and
// returns the agent's completion as raw JSON. Session IDs are never reused:
// every call is an independent conversation.
func (c *Client) Invoke(ctx context.Context, agent agents.Agent, prompt string) (json.RawMessage, error) {
	if !agent.Configured() {
		return nil, fmt.Errorf("%s: %w", agent.Name, agents.ErrNotConfigured)
	}

	sessionID := uuid.New().String()
	logging.LogInvocation(agent.Name, sessionID, prompt)

	output, err := c.runtime.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(agent.ID),
		AgentAliasId: aws.String(agent.AliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(prompt),
	})
	if err != nil {
		return nil, wrapInvokeError(agent.Name, err)
	}

	stream := output.GetStream()
	if stream == nil {
		return nil, fmt.Errorf("%s: invoke output missing event stream", agent.Name)
	}
	defer stream.Close()

	completion, err := drainCompletion(stream)
	if err != nil {
		return nil, wrapInvokeError(agent.Name, err)
	}
	if completion == "" {
		return nil, fmt.Errorf("%s: %w", agent.Name, agents.ErrEmptyCompletion)
	}
	logging.LogCompletion(agent.Name, sessionID, completion)

	return decodeCompletion(completion)
}

// wrapInvokeError annotates transport and API failures with the agent name
// and the provider error code or HTTP status when one is available.
func wrapInvokeError(agent string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: invoke agent failed (%s): %w", agent, apiErr.ErrorCode(), err)
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Errorf("%s: invoke agent failed (HTTP %d): %w", agent, respErr.HTTPStatusCode(), err)
	}
	return fmt.Errorf("%s: invoke agent failed: %w", agent, err)
}
