// Package refine calls the external LLM service to rephrase weak local
// answers. It is an optional collaborator: the FAQ engine never depends on
// it, and every failure degrades to the unrefined local result.
package refine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/singleflight"

	"tapfolio/internal/kb"
)

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("refine: no api key configured")

const requestTimeout = 10 * time.Second

const systemPrompt = "You are the Tapfolio support assistant. Tapfolio is a digital business card " +
	"product in Ghana. Answer using ONLY the FAQ excerpts provided; if they do not cover the " +
	"question, say you are not sure and suggest contacting support@tapfolio.me. Keep answers short."

// Client wraps the chat-completion API. Identical in-flight queries are
// coalesced so a spike of the same weak question costs one upstream call.
type Client struct {
	api   *openai.Client
	model string
	group singleflight.Group
}

// New returns a ready Client, or nil if apiKey is empty (refinement disabled).
func New(apiKey, model string) *Client {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Refine asks the LLM to answer the query given the local result and its
// candidate entries as context. Returns the refined answer, or an error the
// caller should treat as soft.
func (c *Client) Refine(ctx context.Context, query string, res kb.Result, entries []kb.Entry) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	key := strings.ToLower(strings.TrimSpace(query))
	answer, err, _ := c.group.Do(key, func() (any, error) {
		return c.refine(ctx, query, res, entries)
	})
	if err != nil {
		return "", err
	}
	return answer.(string), nil
}

func (c *Client) refine(ctx context.Context, query string, res kb.Result, entries []kb.Entry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(query, res, entries)},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("refine: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("refine: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt assembles the user prompt from the local result and the FAQ
// entries it was drawn from. Exported for tests.
func BuildPrompt(query string, res kb.Result, entries []kb.Entry) string {
	var b strings.Builder
	b.WriteString("FAQ excerpts:\n\n")

	byID := make(map[string]kb.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	write := func(id string) {
		e, ok := byID[id]
		if !ok {
			return
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", e.Question, e.Answer)
	}
	write(res.ID)
	for _, rel := range res.Related {
		write(rel.ID)
	}

	fmt.Fprintf(&b, "The local matcher picked %q with a weak score of %.2f.\n", res.ID, res.Score)
	fmt.Fprintf(&b, "User question: %s\n", query)
	return b.String()
}
