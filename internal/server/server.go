// Package server exposes the guided workflow over a small JSON API that
// mirrors the three UI steps: create a session from an industry name,
// discover reference pages, then generate the report. Sessions are held in
// memory; each one is owned by its id and advanced one step at a time.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wikibrief/wikibrief/internal/validate"
	"github.com/wikibrief/wikibrief/internal/wordcount"
	"github.com/wikibrief/wikibrief/internal/workflow"
)

// remoteFailureMessage is the generic user-facing text for model-call
// failures; details stay in the logs.
const remoteFailureMessage = "research service unavailable, please try again"

// stepTimeout bounds each model-backed step at the request boundary.
const stepTimeout = 120 * time.Second

type Server struct {
	runner *workflow.Runner
	store  *sessionStore
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]workflow.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]workflow.Session)}
}

func (s *sessionStore) set(id string, sess workflow.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (workflow.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(runner *workflow.Runner) (*Server, error) {
	if runner == nil {
		return nil, errors.New("workflow runner required")
	}
	return &Server{runner: runner, store: newStore()}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.handleSessionCreate)
	mux.HandleFunc("/api/sessions/", s.handleSessionByID)
	return logMiddleware(mux)
}

// --- Handlers ---

type sessionCreateReq struct {
	Industry string `json:"industry"`
}

type referenceResp struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type sessionResp struct {
	SessionID  string          `json:"session_id"`
	Step       string          `json:"step"`
	Industry   string          `json:"industry,omitempty"`
	References []referenceResp `json:"references,omitempty"`
}

type reportResp struct {
	sessionResp
	Report    string `json:"report"`
	HTML      string `json:"html"`
	WordCount int    `json:"word_count"`
	WordLimit int    `json:"word_limit"`
	Status    string `json:"status"`
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req sessionCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, err := workflow.Session{}.WithIndustry(req.Industry)
	if err != nil {
		var ve *validate.Error
		if errors.As(err, &ve) {
			// Specific, user-facing message per failure kind.
			http.Error(w, ve.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := newSessionID()
	s.store.set(id, sess)
	writeJSON(w, toSessionResp(id, sess))
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		writeJSON(w, toSessionResp(id, sess))
	case action == "" && r.Method == http.MethodDelete:
		s.handleReset(w, id, sess)
	case action == "references" && r.Method == http.MethodPost:
		s.handleReferences(w, r, id, sess)
	case action == "report" && r.Method == http.MethodPost:
		s.handleReport(w, r, id, sess)
	case action == "report.txt" && r.Method == http.MethodGet:
		s.handleDownload(w, sess)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleReferences(w http.ResponseWriter, r *http.Request, id string, sess workflow.Session) {
	ctx, cancel := contextWithStepTimeout(r)
	defer cancel()
	next, err := s.runner.Research(ctx, sess)
	if err != nil {
		if errors.Is(err, workflow.ErrNoIndustry) || errors.Is(err, workflow.ErrReferencesFixed) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		// Session state stays whatever was last successfully computed.
		log.Error().Err(err).Str("session", id).Msg("reference discovery failed")
		http.Error(w, remoteFailureMessage, http.StatusBadGateway)
		return
	}
	s.store.set(id, next)
	writeJSON(w, toSessionResp(id, next))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, id string, sess workflow.Session) {
	ctx, cancel := contextWithStepTimeout(r)
	defer cancel()
	next, err := s.runner.Report(ctx, sess)
	if err != nil {
		if errors.Is(err, workflow.ErrNoIndustry) || errors.Is(err, workflow.ErrNoReferences) || errors.Is(err, workflow.ErrReportFixed) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("session", id).Msg("report generation failed")
		http.Error(w, remoteFailureMessage, http.StatusBadGateway)
		return
	}
	s.store.set(id, next)

	words := next.WordCount()
	status := "under"
	if !wordcount.UnderLimit(words) {
		status = "at-or-over"
	}
	writeJSON(w, reportResp{
		sessionResp: toSessionResp(id, next),
		Report:      next.Report,
		HTML:        renderHTML(next.Report),
		WordCount:   words,
		WordLimit:   wordcount.Limit,
		Status:      status,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, sess workflow.Session) {
	if sess.Step < workflow.HasReport {
		http.Error(w, "no report generated yet", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+sess.ArtifactName()+`"`)
	_, _ = w.Write([]byte(sess.Report))
}

func (s *Server) handleReset(w http.ResponseWriter, id string, sess workflow.Session) {
	fresh := sess.Reset()
	s.store.set(id, fresh)
	writeJSON(w, toSessionResp(id, fresh))
}

// --- Helpers ---

func toSessionResp(id string, sess workflow.Session) sessionResp {
	resp := sessionResp{SessionID: id, Step: sess.Step.String(), Industry: sess.Industry}
	for _, ref := range sess.References {
		resp.References = append(resp.References, referenceResp{Title: ref.Title, URL: ref.URL})
	}
	return resp
}

func newSessionID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("elapsed", time.Since(start)).Msg("request")
	})
}
