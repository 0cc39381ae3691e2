package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

// Client is the Gemini API client using the OpenAI-compatible interface
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new Gemini client
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = geminiBaseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const safetyPrompt = `Analyze the following text for: 1. Violent planning 2. Illegal instructions 3. Self-harm glorification.

Return ONLY valid JSON: { "safe": boolean, "reason": "short explanation if unsafe" }`

// SafetyResult is the parsed safety verdict
type SafetyResult struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

// CheckSafety asks the model for a safety verdict on free text
func (c *Client) CheckSafety(ctx context.Context, text string) (SafetyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: safetyPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
		MaxTokens:   100,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return SafetyResult{}, fmt.Errorf("safety completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return SafetyResult{}, fmt.Errorf("no response choices")
	}

	var result SafetyResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return SafetyResult{}, fmt.Errorf("parse safety verdict: %w", err)
	}
	return result, nil
}

const (
	chaosPrompt = "Generate a short, empathetic reflection for someone struggling. Max 12 words. Do NOT give advice. Do NOT say 'it gets better'. Just acknowledge the feeling. Warm, deep, dark-comfort tone. Lowercase."

	reliefPrompt = "Generate a short, calming sentence. Max 12 words. Very gentle. Acknowledge that it's okay to stop. Lowercase."
)

// GenerateLine generates a short empathetic line. mode is "chaos" or
// "relief"; anything else falls back to the chaos prompt.
func (c *Client) GenerateLine(ctx context.Context, mode string) (string, error) {
	prompt := chaosPrompt
	if mode == "relief" {
		prompt = reliefPrompt
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.8,
		MaxTokens:   30,
	})
	if err != nil {
		return "", fmt.Errorf("line completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	line := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	if line == "" {
		return "", fmt.Errorf("empty line")
	}
	return line, nil
}
