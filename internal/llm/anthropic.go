package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const anthropicURL = "https://api.anthropic.com/v1/messages"

// AnthropicProvider extracts via the Anthropic messages API. No SDK, just a
// timeout-bounded HTTP client.
type AnthropicProvider struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewAnthropicProvider(apiKey, model string, timeout time.Duration) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not set")
	}
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	content, err := p.complete(ctx, skillsPrompt, text, 800, 0.3)
	if err != nil {
		return nil, err
	}
	skills := splitSkills(content)
	if len(skills) == 0 {
		return nil, errors.New("empty skill list from Anthropic")
	}
	return skills, nil
}

func (p *AnthropicProvider) ExtractDetails(ctx context.Context, text string) (*Details, error) {
	content, err := p.complete(ctx, detailsPrompt, text, 1500, 0.1)
	if err != nil {
		return nil, err
	}

	raw, err := firstJSONObject(content)
	if err != nil {
		return nil, err
	}

	var d Details
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("failed to parse Anthropic response: %w", err)
	}
	return &d, nil
}

func (p *AnthropicProvider) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	reqBody := map[string]any{
		"model":      p.model,
		"max_tokens": maxTokens,
		"system":     system,
		"messages": []map[string]string{
			{"role": "user", "content": user},
		},
		"temperature": temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Anthropic API error: %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("Anthropic error: %s", result.Error.Message)
	}

	for _, c := range result.Content {
		if c.Type == "text" && c.Text != "" {
			return c.Text, nil
		}
	}
	return "", errors.New("no response from Anthropic")
}
