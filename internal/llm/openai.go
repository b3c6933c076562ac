package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider extracts via the OpenAI chat-completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	content, err := p.complete(ctx, skillsPrompt, text, 0.3, false)
	if err != nil {
		return nil, err
	}
	skills := splitSkills(content)
	if len(skills) == 0 {
		return nil, errors.New("empty skill list from OpenAI")
	}
	return skills, nil
}

func (p *OpenAIProvider) ExtractDetails(ctx context.Context, text string) (*Details, error) {
	content, err := p.complete(ctx, detailsPrompt, text, 0.1, true)
	if err != nil {
		return nil, err
	}

	raw, err := firstJSONObject(content)
	if err != nil {
		return nil, err
	}

	var d Details
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	return &d, nil
}

func (p *OpenAIProvider) complete(ctx context.Context, system, user string, temperature float32, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
