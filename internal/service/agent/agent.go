// Package agent answers support queries. Messages either hit a canned
// short circuit, or are categorized by keyword and answered through a
// per-category model chain with the user's conversation window as context.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"support-widget/internal/config"
	"support-widget/internal/model/support"
	"support-widget/internal/service/memory"
)

// Agent answers support queries for the /support endpoint.
type Agent struct {
	cfg    config.AgentConfig
	store  *memory.Store
	chains map[Category]compose.Runnable[map[string]any, *schema.Message]
}

// New builds the agent. Without model credentials the agent still serves
// canned replies and the configured fallback; chains stay nil.
func New(ctx context.Context, cfg config.AgentConfig, store *memory.Store) (*Agent, error) {
	a := &Agent{cfg: cfg, store: store}
	if !cfg.Enabled() {
		return a, nil
	}

	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	a.chains = make(map[Category]compose.Runnable[map[string]any, *schema.Message], len(categoryPrompts))
	for category, system := range categoryPrompts {
		template := prompt.FromMessages(
			schema.FString,
			schema.SystemMessage(system),
			schema.UserMessage("{user_message}"),
		)

		chain := compose.NewChain[map[string]any, *schema.Message]()
		chain.AppendChatTemplate(template)
		chain.AppendChatModel(chatModel)

		runnable, err := chain.Compile(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s chain: %w", category, err)
		}
		a.chains[category] = runnable
	}

	return a, nil
}

// ModelEnabled reports whether model-backed answers are available.
func (a *Agent) ModelEnabled() bool {
	return a.chains != nil
}

// StreamingEnabled reports whether streamed answers are available.
func (a *Agent) StreamingEnabled() bool {
	return a.chains != nil && a.cfg.StreamResponse
}

// Respond answers one user message. Canned replies carry no category and
// are not recorded in the conversation window; categorized replies are.
func (a *Agent) Respond(ctx context.Context, userID string, details support.UserDetails, message string) (string, Category, error) {
	if reply, ok := a.canned(message); ok {
		return reply, "", nil
	}

	category := Categorize(message)
	reply, err := a.generate(ctx, userID, details, message, category)
	if err != nil {
		return "", "", err
	}

	a.RecordTurn(ctx, userID, message, reply)
	log.Printf("[agent] answered user=%s category=%s length=%d", userID, category, len(reply))
	return reply, category, nil
}

// Stream answers one user message as a token stream. For canned replies
// and non-streaming configurations the full reply is returned instead of
// a reader, and the caller is responsible for calling RecordTurn once a
// streamed reply has been fully read.
func (a *Agent) Stream(ctx context.Context, userID string, details support.UserDetails, message string) (*schema.StreamReader[*schema.Message], string, Category, error) {
	if reply, ok := a.canned(message); ok {
		return nil, reply, "", nil
	}

	category := Categorize(message)
	if !a.StreamingEnabled() {
		reply, err := a.generate(ctx, userID, details, message, category)
		if err != nil {
			return nil, "", "", err
		}
		a.RecordTurn(ctx, userID, message, reply)
		return nil, reply, category, nil
	}

	input := a.chainInput(ctx, userID, details, message)
	stream, err := a.chains[category].Stream(ctx, input)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to stream %s chain: %w", category, err)
	}
	return stream, "", category, nil
}

// RecordTurn stores a completed exchange in the user's conversation window.
func (a *Agent) RecordTurn(ctx context.Context, userID, message, reply string) {
	if err := a.store.Append(ctx, userID, support.AuthorUser, message); err != nil {
		log.Printf("[agent] failed to record user turn: %v", err)
		return
	}
	if err := a.store.Append(ctx, userID, support.AuthorBot, reply); err != nil {
		log.Printf("[agent] failed to record bot turn: %v", err)
	}
}

func (a *Agent) generate(ctx context.Context, userID string, details support.UserDetails, message string, category Category) (string, error) {
	if a.chains == nil {
		return a.cfg.FallbackReply, nil
	}

	input := a.chainInput(ctx, userID, details, message)
	response, err := a.chains[category].Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run %s chain: %w", category, err)
	}
	return response.Content, nil
}

// chainInput assembles the template variables. The conversation window is
// loaded before the current message is recorded, so the history never
// contains the message being answered.
func (a *Agent) chainInput(ctx context.Context, userID string, details support.UserDetails, message string) map[string]any {
	detailsJSON, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		detailsJSON = []byte("{}")
	}

	history := a.store.History(ctx, userID)
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Author, turn.Content))
	}

	return map[string]any{
		"user_details":         string(detailsJSON),
		"conversation_history": strings.Join(lines, "\n"),
		"user_message":         message,
	}
}
