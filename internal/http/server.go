package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/anirudhnekkanti/LMSAgentAPI/internal/agents"
	"github.com/anirudhnekkanti/LMSAgentAPI/internal/config"
	"github.com/anirudhnekkanti/LMSAgentAPI/internal/logging"
)

// Server represents the HTTP API server
type Server struct {
	config *config.Config
	client agents.Client
	router chi.Router
	port   int
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, client agents.Client, port int) *Server {
	s := &Server{
		config: cfg,
		client: client,
		port:   port,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(s.requestLogger)

	// CORS configuration - allow all origins so any frontend can call the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false, // Must be false when AllowedOrigins is "*"
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", s.handleHealth)

		// Course plan and topic content
		r.Post("/courses/generate", s.handleGenerateCoursePlan)
		r.Post("/course/content", s.handleGetTopicContent)

		// Quiz generation
		r.Post("/quiz/generate", s.handleGenerateQuiz)

		// Chatbot queries
		r.Post("/chatbot/query", s.handleChatbotQuery)
	})

	s.router = r
}

// Run starts the HTTP server
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.port)
	logging.Info("Starting HTTP server on %s", addr)
	fmt.Printf("LMS backend running on http://0.0.0.0:%d (accessible from any host)\n", s.port)

	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		logging.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	return server.ListenAndServe()
}

// --- Handlers ---

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: "LMS backend is healthy and running.",
	})
}

// requestLogger records every request with its response status in the log
// file instead of stdout.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.LogRequest(r.Method, r.URL.Path, ww.Status())
	})
}

// --- Request decoding ---

// Field is a required request value that may arrive as a JSON string or a
// JSON number. Numbers keep their source text, so the prompt templates embed
// them exactly as sent.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("field must be a string or a number")
	}
	*f = Field(n.String())
	return nil
}

// decodeRequest reads the whole body and decodes it as a single JSON value.
// Trailing bytes after the value make the body invalid.
func (s *Server) decodeRequest(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// --- Response helpers ---

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// relayResponse forwards the agent's JSON reply byte for byte, without
// re-encoding it.
func (s *Server) relayResponse(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	logging.Error("HTTP error: %d - %s", status, message)
	s.jsonResponse(w, status, map[string]string{"error": message})
}

func (s *Server) errorDetailsResponse(w http.ResponseWriter, status int, message string, err error) {
	logging.Error("HTTP error: %d - %s: %v", status, message, err)
	s.jsonResponse(w, status, map[string]string{"error": message, "details": err.Error()})
}
