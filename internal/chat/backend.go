package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/five82/missionctl/internal/fetch"
)

// Backend produces a reply for a single message. Implementations must honor
// ctx cancellation.
type Backend interface {
	Reply(ctx context.Context, message string) (string, error)
}

// DefaultEndpoint is used when no chat endpoint is configured.
const DefaultEndpoint = "http://127.0.0.1:8000/api/chat"

// HTTPBackend posts {"message": ...} and expects {"reply": ...}.
type HTTPBackend struct {
	Endpoint string
	Client   *fetch.Client
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply *string `json:"reply"`
}

// Reply implements Backend.
func (b HTTPBackend) Reply(ctx context.Context, message string) (string, error) {
	client := b.Client
	if client == nil {
		client = fetch.NewClient()
	}
	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	var resp chatResponse
	if err := client.PostJSON(ctx, endpoint, chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	if resp.Reply == nil {
		return "", fmt.Errorf("%w: response has no reply field", fetch.ErrDecode)
	}
	return *resp.Reply, nil
}

const systemPrompt = "You are the mission control assistant of a spaceflight operations dashboard. " +
	"Answer briefly, in the calm register of a flight controller."

// OpenAIBackend answers through the Chat Completions API. Each call carries
// only the system prompt and the one user message.
type OpenAIBackend struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAIBackend validates settings and returns a backend. apiKey may be
// empty when OPENAI_API_KEY is set in the environment.
func NewOpenAIBackend(apiKey, model, baseURL string) (*OpenAIBackend, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("openai chat backend requires a model")
	}
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	// The widget owns the deadline; no SDK retries past it.
	opts = append(opts, option.WithMaxRetries(0))
	return &OpenAIBackend{Model: model, Opts: opts}, nil
}

// Reply implements Backend.
func (o *OpenAIBackend) Reply(ctx context.Context, message string) (string, error) {
	client := openai.NewClient(o.Opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(message),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", fetch.ErrEmpty)
	}
	return resp.Choices[0].Message.Content, nil
}

// ErrOffline is returned by OfflineBackend.
var ErrOffline = errors.New("chat backend disabled")

// OfflineBackend never reaches a server.
type OfflineBackend struct{}

// Reply implements Backend.
func (OfflineBackend) Reply(context.Context, string) (string, error) {
	return "", ErrOffline
}
