package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

// Settings holds the base configuration for the OpenAI-backed client.
type Settings struct {
	APIKey       string
	BaseURL      string
	ChatModel    string
	SummaryModel string
}

// OpenAIClient implements domain.CompletionClient using the official
// openai-go SDK (chat completions).
type OpenAIClient struct {
	chatModel    string
	summaryModel string
	opts         []option.RequestOption
}

func NewOpenAIClient(cfg Settings) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.ChatModel == "" || cfg.SummaryModel == "" {
		return nil, errors.New("chat and summary models are required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		chatModel:    cfg.ChatModel,
		summaryModel: cfg.SummaryModel,
		opts:         opts,
	}, nil
}

// GenerateReply implements domain.CompletionClient.
func (c *OpenAIClient) GenerateReply(
	ctx context.Context,
	prompt string,
	history []domain.ChatTurn,
) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(chatSystemPrompt),
	}
	for _, turn := range history {
		switch turn.Role {
		case domain.RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(turn.Content))
		default:
			msgs = append(msgs, openai.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.chatModel),
		Messages:    msgs,
		Temperature: openai.Float(0.6),
		MaxTokens:   openai.Int(180),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Summarize implements domain.CompletionClient.
func (c *OpenAIClient) Summarize(ctx context.Context, entryText string) (string, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.summaryModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarySystemPrompt),
			openai.UserMessage(entryText),
		},
		Temperature: openai.Float(0.6),
		MaxTokens:   openai.Int(420),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
