package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jodansky/mindtext-journal/internal/app/draft"
	"github.com/Jodansky/mindtext-journal/internal/app/journal"
	"github.com/Jodansky/mindtext-journal/internal/domain"
	"github.com/Jodansky/mindtext-journal/internal/observability"
)

const (
	welcomeText = "How are you feeling?"

	// historyLimit caps the conversational context shared with the
	// completion service.
	historyLimit = 8

	fallbackReply   = "I'm not sure what to say yet, but I'm listening."
	fallbackSummary = "You checked in with MindText but we could not create a summary this time."

	sendFailedMsg  = "MindText had trouble responding. Please try again."
	saveFailedMsg  = "MindText could not save that entry. Please try again."
	emptyThreadMsg = "Add a thought before saving this entry."
	emptyInputMsg  = "Add a thought before sending."
)

// Service drives the conversation-to-entry lifecycle: it owns the live
// thread and pending input, mirrors both into the draft session, and
// commits finished conversations into the journal store. A busy flag
// keeps sends, saves and resets single-flight.
type Service struct {
	mu      sync.Mutex
	llm     domain.CompletionClient
	entries *journal.Store
	drafts  *draft.Session
	now     func() time.Time

	thread []domain.Message
	input  string
	busy   bool
}

// NewService builds the controller and hydrates its thread from the draft
// session. The draft must already be loaded; an empty draft yields a
// fresh thread holding only the welcome message.
func NewService(
	llm domain.CompletionClient,
	entries *journal.Store,
	drafts *draft.Session,
) *Service {
	s := &Service{
		llm:     llm,
		entries: entries,
		drafts:  drafts,
		now:     time.Now,
	}

	restored := drafts.Current()
	if len(restored.Thread) > 0 {
		s.thread = append(s.thread, restored.Thread...)
	} else {
		s.thread = []domain.Message{s.welcomeMessage()}
	}
	s.input = restored.Input

	return s
}

// Thread returns a snapshot of the current thread.
func (s *Service) Thread() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Input returns the pending, unsent input text.
func (s *Service) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput records the pending input text and mirrors it into the draft.
// Rejected while a send or save is in flight, like every other mutation.
func (s *Service) SetInput(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return domain.ErrBusy
	}

	s.input = text
	s.persistDraftLocked(ctx)
	return nil
}

// Reset discards the current conversation and starts a fresh one. When
// the thread already contains a user message the caller must confirm,
// otherwise ErrConfirmRequired is returned and nothing changes.
func (s *Service) Reset(ctx context.Context, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return domain.ErrBusy
	}
	if s.hasUserMessageLocked() && !confirm {
		return domain.ErrConfirmRequired
	}

	s.thread = []domain.Message{s.welcomeMessage()}
	s.input = ""
	s.drafts.Clear(ctx)

	observability.LoggerFromContext(ctx).Info("conversation reset")
	return nil
}

// Send appends the user's message and an in-flight typing placeholder,
// then asks the completion service for a reply. On success the placeholder
// is replaced in place by the assistant message; on failure it is spliced
// out so the thread never carries a stale placeholder.
func (s *Service) Send(ctx context.Context, text string) ([]domain.Message, error) {
	log := observability.LoggerFromContext(ctx)

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, domain.ErrBusy
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.mu.Unlock()
		return nil, domain.NewValidationError(emptyInputMsg)
	}

	s.busy = true
	now := s.now()
	userMsg := domain.Message{
		ID:        newMessageID("user"),
		Role:      domain.RoleUser,
		Text:      trimmed,
		CreatedAt: now,
	}
	typing := domain.Message{
		ID:        newMessageID("assistant-typing"),
		Role:      domain.RoleAssistant,
		CreatedAt: now,
		IsTyping:  true,
	}
	s.thread = append(s.thread, userMsg, typing)
	s.input = ""
	s.persistDraftLocked(ctx)
	history := s.historyLocked()
	s.mu.Unlock()

	reply, err := s.llm.GenerateReply(ctx, trimmed, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		log.Error("reply generation failed", "error", err)
		s.removeMessageLocked(typing.ID)
		s.persistDraftLocked(ctx)
		return nil, &domain.TransportError{UserMessage: sendFailedMsg, Err: err}
	}

	replyText := strings.TrimSpace(reply)
	if replyText == "" {
		replyText = fallbackReply
	}
	s.replaceMessageLocked(typing.ID, domain.Message{
		ID:        newMessageID("assistant"),
		Role:      domain.RoleAssistant,
		Text:      replyText,
		CreatedAt: s.now(),
	})
	s.persistDraftLocked(ctx)

	log.Info("reply appended", "thread_len", len(s.thread))
	return s.snapshotLocked(), nil
}

// Save collects the user's narrative from the thread, asks the completion
// service for a reflection, and commits both as a new journal entry. The
// thread then resets to a fresh welcome message and the draft is cleared.
// On failure the thread is left untouched.
func (s *Service) Save(ctx context.Context) (domain.Entry, error) {
	log := observability.LoggerFromContext(ctx)

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.Entry{}, domain.ErrBusy
	}

	var parts []string
	for _, m := range s.thread {
		if m.IsTyping || m.IsSeed || m.Role != domain.RoleUser {
			continue
		}
		if t := strings.TrimSpace(m.Text); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		s.mu.Unlock()
		return domain.Entry{}, domain.NewValidationError(emptyThreadMsg)
	}

	body := strings.Join(parts, "\n\n")
	if body == "" {
		s.mu.Unlock()
		return domain.Entry{}, domain.NewValidationError(emptyThreadMsg)
	}

	s.busy = true
	s.mu.Unlock()

	summary, err := s.llm.Summarize(ctx, body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		log.Error("summarization failed", "error", err)
		return domain.Entry{}, &domain.TransportError{UserMessage: saveFailedMsg, Err: err}
	}

	summaryText := strings.TrimSpace(summary)
	if summaryText == "" {
		summaryText = fallbackSummary
	}

	entry, err := s.entries.Add(ctx, body, summaryText)
	if err != nil {
		log.Error("failed to commit entry", "error", err)
		return domain.Entry{}, &domain.TransportError{UserMessage: saveFailedMsg, Err: err}
	}

	s.drafts.Clear(ctx)
	s.thread = []domain.Message{s.welcomeMessage()}
	s.input = ""

	log.Info("entry saved", "entry_id", entry.ID)
	return entry, nil
}

func (s *Service) welcomeMessage() domain.Message {
	return domain.Message{
		ID:        newMessageID("assistant-welcome"),
		Role:      domain.RoleAssistant,
		Text:      welcomeText,
		CreatedAt: s.now(),
		IsSeed:    true,
	}
}

func (s *Service) hasUserMessageLocked() bool {
	for _, m := range s.thread {
		if m.Role == domain.RoleUser {
			return true
		}
	}
	return false
}

// historyLocked builds the role+content pairs shared with the completion
// service: the last 8 non-seed messages, typing placeholders excluded.
// No other message metadata crosses the boundary.
func (s *Service) historyLocked() []domain.ChatTurn {
	var turns []domain.ChatTurn
	for _, m := range s.thread {
		if m.IsSeed || m.IsTyping {
			continue
		}
		turns = append(turns, domain.ChatTurn{Role: m.Role, Content: m.Text})
	}
	if len(turns) > historyLimit {
		turns = turns[len(turns)-historyLimit:]
	}
	return turns
}

func (s *Service) replaceMessageLocked(id domain.MessageID, replacement domain.Message) {
	for i, m := range s.thread {
		if m.ID == id {
			s.thread[i] = replacement
			return
		}
	}
}

func (s *Service) removeMessageLocked(id domain.MessageID) {
	kept := s.thread[:0:0]
	for _, m := range s.thread {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.thread = kept
}

func (s *Service) persistDraftLocked(ctx context.Context) {
	s.drafts.Save(ctx, s.thread, s.input)
}

func (s *Service) snapshotLocked() []domain.Message {
	out := make([]domain.Message, len(s.thread))
	copy(out, s.thread)
	return out
}

func newMessageID(prefix string) domain.MessageID {
	if id, err := uuid.NewRandom(); err == nil {
		return domain.MessageID(prefix + "-" + id.String())
	}
	return domain.MessageID(prefix + "-" + time.Now().Format("20060102150405.000000000"))
}
