// Package llm talks to an Ollama-compatible text generation service.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"petverse/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "phi3:mini"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Generator struct {
	baseURL string
	model   string
	timeout time.Duration
	client  *client.Client
}

func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c, err := client.NewClient(client.WithDialTimeout(5 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}
	return &Generator{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		client:  c,
	}, nil
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (g *Generator) Generate(ctx context.Context, p ports.Prompt) (ports.Generation, error) {
	body, err := json.Marshal(generateRequest{
		Model:  g.model,
		Prompt: buildPrompt(p),
		Format: "json",
	})
	if err != nil {
		return ports.Generation{}, fmt.Errorf("marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)
	req.SetRequestURI(g.baseURL + "/api/generate")
	req.SetMethod(consts.MethodPost)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	deadline := time.Now().Add(g.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := g.client.DoDeadline(ctx, req, resp, deadline); err != nil {
		return ports.Generation{}, fmt.Errorf("call llm: %w", err)
	}
	if resp.StatusCode() != consts.StatusOK {
		return ports.Generation{}, fmt.Errorf("llm status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return ports.Generation{}, fmt.Errorf("decode llm response: %w", err)
	}
	gen := parseGeneration(out.Response)
	if gen.Content == "" {
		return ports.Generation{}, fmt.Errorf("llm returned empty content")
	}
	return gen, nil
}
