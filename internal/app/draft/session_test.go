package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/Jodansky/mindtext-journal/internal/adapters/storage/memory"
	"github.com/Jodansky/mindtext-journal/internal/app/draft"
	"github.com/Jodansky/mindtext-journal/internal/domain"
)

func TestSaveBeforeLoadIsDropped(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	session := draft.NewSession(kv)

	session.Save(ctx, []domain.Message{userMessage("m1", "hello")}, "pending")

	if _, err := kv.Get("draft"); err == nil {
		t.Fatalf("expected no draft persisted before load")
	}

	loaded := session.Load(ctx)
	if len(loaded.Thread) != 0 || loaded.Input != "" {
		t.Fatalf("expected empty draft, got %+v", loaded)
	}
}

func TestSaveStripsTypingPlaceholder(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	session := draft.NewSession(kv)
	session.Load(ctx)

	thread := []domain.Message{
		userMessage("m1", "rough day"),
		{
			ID:        "typing-1",
			Role:      domain.RoleAssistant,
			CreatedAt: time.Now(),
			IsTyping:  true,
		},
	}
	session.Save(ctx, thread, "next thought")

	restored := draft.NewSession(kv).Load(ctx)
	if len(restored.Thread) != 1 {
		t.Fatalf("expected 1 persisted message, got %d", len(restored.Thread))
	}
	for _, m := range restored.Thread {
		if m.IsTyping {
			t.Fatalf("typing placeholder survived persistence: %+v", m)
		}
	}
	if restored.Input != "next thought" {
		t.Fatalf("expected input to round-trip, got %q", restored.Input)
	}
}

func TestLoadCorruptDraftStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	if err := kv.Set("draft", []byte("][ garbage")); err != nil {
		t.Fatal(err)
	}

	loaded := draft.NewSession(kv).Load(ctx)
	if len(loaded.Thread) != 0 || loaded.Input != "" {
		t.Fatalf("expected empty draft on corruption, got %+v", loaded)
	}
}

func TestClearErasesDurableRecord(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	session := draft.NewSession(kv)
	session.Load(ctx)

	session.Save(ctx, []domain.Message{userMessage("m1", "note")}, "")
	if _, err := kv.Get("draft"); err != nil {
		t.Fatalf("expected draft persisted, got %v", err)
	}

	session.Clear(ctx)
	if _, err := kv.Get("draft"); err == nil {
		t.Fatalf("expected draft record erased")
	}
	if current := session.Current(); len(current.Thread) != 0 || current.Input != "" {
		t.Fatalf("expected cleared session, got %+v", current)
	}
}

func userMessage(id, text string) domain.Message {
	return domain.Message{
		ID:        domain.MessageID(id),
		Role:      domain.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
