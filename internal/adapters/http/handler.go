package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Jodansky/mindtext-journal/internal/app/conversation"
	"github.com/Jodansky/mindtext-journal/internal/app/journal"
	"github.com/Jodansky/mindtext-journal/internal/domain"
	"github.com/Jodansky/mindtext-journal/internal/observability"
	"github.com/Jodansky/mindtext-journal/internal/search"
)

type Server struct {
	conv    *conversation.Service
	entries *journal.Store
}

func NewServer(conv *conversation.Service, entries *journal.Store) http.Handler {
	s := &Server{conv: conv, entries: entries}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /draft          → GET: current thread + input
	// /draft/messages → POST: send a message
	// /draft/input    → PUT: update pending input
	// /draft/reset    → POST: start a fresh conversation
	mux.HandleFunc("/draft", s.handleDraft)
	mux.HandleFunc("/draft/", s.handleDraftAction)

	// /entries      → POST: save & summarize, GET: search archive
	// /entries/{id} → DELETE: remove entry
	mux.HandleFunc("/entries", s.handleEntries)
	mux.HandleFunc("/entries/", s.handleEntryWithID)

	mux.HandleFunc("/keywords", s.handleKeywords)

	return chainMiddlewares(mux, withCORS, withLogging)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	IsTyping  bool      `json:"isTyping,omitempty"`
	IsSeed    bool      `json:"isSeed,omitempty"`
}

type draftResponse struct {
	Thread []messageResponse `json:"thread"`
	Input  string            `json:"input"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type setInputRequest struct {
	Input string `json:"input"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

type entryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	UserText      string    `json:"userText"`
	AssistantText string    `json:"assistantText"`
	CreatedAt     time.Time `json:"createdAt"`
	Keywords      []string  `json:"keywords"`
}

type searchResultResponse struct {
	entryResponse

	TitleSpans   []search.Span `json:"titleSpans"`
	SummarySpans []search.Span `json:"summarySpans"`

	// MatchedInWriting flags entries where only the user's own words,
	// not the displayed summary, contain the query.
	MatchedInWriting bool `json:"matchedInWriting"`
}

type searchResponse struct {
	Query   string                 `json:"query"`
	Results []searchResultResponse `json:"results"`
}

type keywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{
		Thread: toMessagesResponse(s.conv.Thread()),
		Input:  s.conv.Input(),
	})
}

func (s *Server) handleDraftAction(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimPrefix(r.URL.Path, "/draft/")

	switch action {
	case "messages":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleSendMessage(w, r)
	case "input":
		if r.Method != http.MethodPut {
			methodNotAllowed(w)
			return
		}
		s.handleSetInput(w, r)
	case "reset":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleReset(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	thread, err := s.conv.Send(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{
		Thread: toMessagesResponse(thread),
		Input:  s.conv.Input(),
	})
}

func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request) {
	var req setInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := s.conv.SetInput(r.Context(), req.Input); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := s.conv.Reset(r.Context(), req.Confirm); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{
		Thread: toMessagesResponse(s.conv.Thread()),
		Input:  s.conv.Input(),
	})
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleSaveEntry(w, r)
	case http.MethodGet:
		s.handleSearchEntries(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.conv.Save(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (s *Server) handleSearchEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	normalized := strings.ToLower(strings.TrimSpace(query))

	results := search.Filter(s.entries.List(), query)

	out := make([]searchResultResponse, 0, len(results))
	for _, e := range results {
		item := searchResultResponse{
			entryResponse: toEntryResponse(e),
			TitleSpans:    search.Highlight(e.Title, query),
			SummarySpans:  search.Highlight(e.AssistantText, query),
		}
		if normalized != "" {
			inWriting := strings.Contains(strings.ToLower(e.UserText), normalized)
			inSummary := strings.Contains(strings.ToLower(e.AssistantText), normalized)
			item.MatchedInWriting = inWriting && !inSummary
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Results: out,
	})
}

func (s *Server) handleEntryWithID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/entries/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}

	if err := s.entries.Remove(r.Context(), domain.EntryID(id)); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	keywords := search.RankedKeywords(s.entries.List())
	writeJSON(w, http.StatusOK, keywordsResponse{Keywords: keywords})
}

// ─────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        string(m.ID),
		Role:      string(m.Role),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		IsTyping:  m.IsTyping,
		IsSeed:    m.IsSeed,
	}
}

func toMessagesResponse(msgs []domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		ID:            string(e.ID),
		Title:         e.Title,
		UserText:      e.UserText,
		AssistantText: e.AssistantText,
		CreatedAt:     e.CreatedAt,
		Keywords:      e.Keywords,
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		badRequest(w, verr.Msg)
		return
	}

	var terr *domain.TransportError
	if errors.As(err, &terr) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": terr.UserMessage,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrBusy):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "Another action is already in progress. Try again in a moment.",
		})
	case errors.Is(err, domain.ErrConfirmRequired):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "Start a fresh entry? Your current conversation will be cleared.",
			"code":  "confirm_required",
		})
	default:
		internalError(w, err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	observability.Logger().Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
