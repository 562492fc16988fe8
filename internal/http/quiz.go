package http

import (
	"net/http"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/prompt"
)

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request body must be a valid JSON")
		return
	}

	if req.CourseTitle == "" || req.TopicTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: courseTitle, topicTitle")
		return
	}

	quiz, err := s.client.Invoke(r.Context(), s.config.TrainerAgent(), prompt.TopicQuiz(string(req.CourseTitle), string(req.TopicTitle)))
	if err != nil {
		s.errorDetailsResponse(w, http.StatusInternalServerError, "Failed to generate quiz from agent.", err)
		return
	}

	s.relayResponse(w, quiz)
}
