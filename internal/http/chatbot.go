package http

import (
	"net/http"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/prompt"
)

// ChatbotQueryRequest carries a student's free-form question
type ChatbotQueryRequest struct {
	Query Field `json:"query"`
}

func (s *Server) handleChatbotQuery(w http.ResponseWriter, r *http.Request) {
	var req ChatbotQueryRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request body must be a valid JSON")
		return
	}

	if req.Query == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing required field: query")
		return
	}

	answer, err := s.client.Invoke(r.Context(), s.config.TrainerAgent(), prompt.ChatbotAnswer(string(req.Query)))
	if err != nil {
		s.errorDetailsResponse(w, http.StatusInternalServerError, "Failed to get answer from agent.", err)
		return
	}

	s.relayResponse(w, answer)
}
