package http

import (
	"net/http"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/prompt"
)

// GenerateCourseRequest carries the learner profile used to build a course plan
type GenerateCourseRequest struct {
	Experience   Field `json:"experience"`
	TechStack    Field `json:"techStack"`
	ExpectedRole Field `json:"expectedRole"`
}

// TopicRequest identifies a topic within a course
type TopicRequest struct {
	CourseTitle Field `json:"courseTitle"`
	TopicTitle  Field `json:"topicTitle"`
}

func (s *Server) handleGenerateCoursePlan(w http.ResponseWriter, r *http.Request) {
	var req GenerateCourseRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request body must be a valid JSON")
		return
	}

	if req.Experience == "" || req.TechStack == "" || req.ExpectedRole == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: experience, techStack, expectedRole")
		return
	}

	plan, err := s.client.Invoke(r.Context(), s.config.CourseCreatorAgent(), prompt.CoursePlan(string(req.Experience), string(req.TechStack), string(req.ExpectedRole)))
	if err != nil {
		s.errorDetailsResponse(w, http.StatusInternalServerError, "Failed to generate course plan from agent.", err)
		return
	}

	s.relayResponse(w, plan)
}

func (s *Server) handleGetTopicContent(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request body must be a valid JSON")
		return
	}

	if req.CourseTitle == "" || req.TopicTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: courseTitle, topicTitle")
		return
	}

	content, err := s.client.Invoke(r.Context(), s.config.TrainerAgent(), prompt.TopicContent(string(req.CourseTitle), string(req.TopicTitle)))
	if err != nil {
		s.errorDetailsResponse(w, http.StatusInternalServerError, "Failed to fetch topic content from agent.", err)
		return
	}

	s.relayResponse(w, content)
}
