package bedrock

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents"
)

// drainCompletion consumes the whole event stream, concatenating the payload
// bytes of every chunk event. Trace and control events carry no completion
// text and are skipped. The stream error, if any, only surfaces after the
// events channel closes, so a partial completion never masks a failure.
func drainCompletion(stream *bedrockagentruntime.InvokeAgentEventStream) (string, error) {
	var sb strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.ResponseStreamMemberChunk); ok {
			sb.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// decodeCompletion validates the drained completion as JSON and returns the
// original bytes, so callers relay the agent's reply verbatim rather than a
// re-marshalled copy.
func decodeCompletion(completion string) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal([]byte(completion), &v); err != nil {
		return nil, &agents.MalformedJSONError{Raw: completion, Err: err}
	}
	return json.RawMessage(completion), nil
}
