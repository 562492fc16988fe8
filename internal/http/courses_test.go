package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents"
)

func TestHandleGenerateCoursePlan(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		server := newTestServer(&MockAgentClient{})

		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", nil)
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Request body must be a valid JSON" {
			t.Errorf("Expected invalid JSON error, got '%s'", body["error"])
		}
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		server := newTestServer(&MockAgentClient{})

		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader("not json"))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Request body must be a valid JSON" {
			t.Errorf("Expected invalid JSON error, got '%s'", body["error"])
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		mock := &MockAgentClient{}
		server := newTestServer(mock)

		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(`{"experience": "5 years"}`))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Missing required fields: experience, techStack, expectedRole" {
			t.Errorf("Expected missing fields error, got '%s'", body["error"])
		}
		if mock.CapturedPrompt != "" {
			t.Error("Expected no agent invocation for invalid request")
		}
	})

	t.Run("empty string field treated as missing", func(t *testing.T) {
		server := newTestServer(&MockAgentClient{})

		body := `{"experience": "5 years", "techStack": "", "expectedRole": "Architect"}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("empty object body reported as missing fields", func(t *testing.T) {
		mock := &MockAgentClient{}
		server := newTestServer(mock)

		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Missing required fields: experience, techStack, expectedRole" {
			t.Errorf("Expected missing fields error, got '%s'", body["error"])
		}
		if mock.CapturedPrompt != "" {
			t.Error("Expected no agent invocation for invalid request")
		}
	})

	t.Run("numeric experience accepted", func(t *testing.T) {
		mock := &MockAgentClient{Response: json.RawMessage(`{"weeks": []}`)}
		server := newTestServer(mock)

		body := `{"experience": 5, "techStack": "Python, SQL", "expectedRole": "Backend Engineer"}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if mock.CapturedAgent.Name != agents.CourseCreatorName {
			t.Errorf("Expected %s invoked, got '%s'", agents.CourseCreatorName, mock.CapturedAgent.Name)
		}
		if !strings.Contains(mock.CapturedPrompt, "Years of Experience: 5.") {
			t.Errorf("Expected numeric experience in prompt, got: %s", mock.CapturedPrompt)
		}
	})

	t.Run("non-scalar field rejected", func(t *testing.T) {
		mock := &MockAgentClient{}
		server := newTestServer(mock)

		body := `{"experience": ["5 years"], "techStack": "Go", "expectedRole": "SRE"}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Request body must be a valid JSON" {
			t.Errorf("Expected invalid JSON error, got '%s'", body["error"])
		}
		if mock.CapturedPrompt != "" {
			t.Error("Expected no agent invocation for invalid request")
		}
	})

	t.Run("relays agent response verbatim", func(t *testing.T) {
		plan := `{"weeks": [{"week": 1, "tasks": ["Read the language tour"]}]}`
		mock := &MockAgentClient{Response: json.RawMessage(plan)}
		server := newTestServer(mock)

		body := `{"experience": "5 years", "techStack": "Python, SQL", "expectedRole": "Backend Engineer"}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != plan {
			t.Errorf("Expected agent response relayed verbatim, got '%s'", rec.Body.String())
		}
		if mock.CapturedAgent.Name != agents.CourseCreatorName {
			t.Errorf("Expected %s invoked, got '%s'", agents.CourseCreatorName, mock.CapturedAgent.Name)
		}
		if !strings.HasPrefix(mock.CapturedPrompt, "Create a personalized learning plan") {
			t.Errorf("Unexpected prompt: %s", mock.CapturedPrompt)
		}
		for _, want := range []string{"5 years", "Python, SQL", "Backend Engineer"} {
			if !strings.Contains(mock.CapturedPrompt, want) {
				t.Errorf("Expected prompt to contain '%s', got: %s", want, mock.CapturedPrompt)
			}
		}
	})

	t.Run("agent failure", func(t *testing.T) {
		mock := &MockAgentClient{Err: errors.New("InvokeAgent timed out")}
		server := newTestServer(mock)

		body := `{"experience": "2 years", "techStack": "Go", "expectedRole": "SRE"}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGenerateCoursePlan(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, rec.Code)
		}
		respBody := decodeError(t, rec)
		if respBody["error"] != "Failed to generate course plan from agent." {
			t.Errorf("Expected course plan failure message, got '%s'", respBody["error"])
		}
		if respBody["details"] != "InvokeAgent timed out" {
			t.Errorf("Expected failure details, got '%s'", respBody["details"])
		}
	})
}

func TestHandleGetTopicContent(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		server := newTestServer(&MockAgentClient{})

		req := httptest.NewRequest(http.MethodPost, "/api/course/content", strings.NewReader(`{"courseTitle": "Go Basics"}`))
		rec := httptest.NewRecorder()

		server.handleGetTopicContent(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Missing required fields: courseTitle, topicTitle" {
			t.Errorf("Expected missing fields error, got '%s'", body["error"])
		}
	})

	t.Run("relays trainer response", func(t *testing.T) {
		content := `{"explanation": "Slices wrap arrays.", "links": [], "quizRecommended": true}`
		mock := &MockAgentClient{Response: json.RawMessage(content)}
		server := newTestServer(mock)

		body := `{"courseTitle": "Go Basics", "topicTitle": "Slices"}`
		req := httptest.NewRequest(http.MethodPost, "/api/course/content", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGetTopicContent(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != content {
			t.Errorf("Expected trainer response relayed verbatim, got '%s'", rec.Body.String())
		}
		if mock.CapturedAgent.Name != agents.TrainerName {
			t.Errorf("Expected %s invoked, got '%s'", agents.TrainerName, mock.CapturedAgent.Name)
		}
		if !strings.Contains(mock.CapturedPrompt, "'Slices'") || !strings.Contains(mock.CapturedPrompt, "'Go Basics'") {
			t.Errorf("Expected prompt to name topic and course, got: %s", mock.CapturedPrompt)
		}
	})

	t.Run("agent failure", func(t *testing.T) {
		mock := &MockAgentClient{Err: errors.New("no such host")}
		server := newTestServer(mock)

		body := `{"courseTitle": "Go Basics", "topicTitle": "Slices"}`
		req := httptest.NewRequest(http.MethodPost, "/api/course/content", strings.NewReader(body))
		rec := httptest.NewRecorder()

		server.handleGetTopicContent(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, rec.Code)
		}
		if body := decodeError(t, rec); body["error"] != "Failed to fetch topic content from agent." {
			t.Errorf("Expected topic content failure message, got '%s'", body["error"])
		}
	})
}
