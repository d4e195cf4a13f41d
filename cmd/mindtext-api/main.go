package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/Jodansky/mindtext-journal/internal/adapters/http"
	"github.com/Jodansky/mindtext-journal/internal/adapters/llm"
	diskvstore "github.com/Jodansky/mindtext-journal/internal/adapters/storage/diskv"
	memstore "github.com/Jodansky/mindtext-journal/internal/adapters/storage/memory"
	"github.com/Jodansky/mindtext-journal/internal/app/conversation"
	"github.com/Jodansky/mindtext-journal/internal/app/draft"
	"github.com/Jodansky/mindtext-journal/internal/app/journal"
	"github.com/Jodansky/mindtext-journal/internal/config"
	"github.com/Jodansky/mindtext-journal/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Completion client: mock or OpenAI by config (useful for dev)
	var (
		llmClient domain.CompletionClient
		err       error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK completion client")
		llmClient = llm.NewMockClient()
	} else {
		log.Println("[LLM] Using OpenAI completion client")
		llmClient, err = llm.NewOpenAIClient(llm.Settings{
			APIKey:       cfg.OpenAIAPIKey,
			BaseURL:      cfg.OpenAIBaseURL,
			ChatModel:    cfg.ChatModel,
			SummaryModel: cfg.SummaryModel,
		})
		if err != nil {
			log.Fatalf("error initializing OpenAI client: %v", err)
		}
	}

	// Storage: diskv or memory
	var kv domain.KeyValue

	switch cfg.StorageBackend {
	case "memory":
		log.Println("[STORE] Using in-memory storage")
		kv = memstore.NewKV()
	default:
		log.Printf("[STORE] Using diskv storage (path=%s)", cfg.DataPath)
		kv, err = diskvstore.New(cfg.DataPath)
		if err != nil {
			log.Fatalf("error initializing diskv store: %v", err)
		}
	}

	// Explicit load-before-anything lifecycle: the entry store and the
	// draft session both hydrate from storage before the conversation
	// service starts writing.
	entries := journal.NewStore(kv)
	entries.Load(ctx)

	drafts := draft.NewSession(kv)
	drafts.Load(ctx)

	convSvc := conversation.NewService(llmClient, entries, drafts)

	handler := httpadapter.NewServer(convSvc, entries)

	port := ":" + cfg.Port
	log.Println("MindText API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
