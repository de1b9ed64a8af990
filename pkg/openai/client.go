// Package openai calls the OpenAI chat completions API to turn a fitting
// wizard submission into structured recommendations. Every failure path -
// missing key, timeout, transport error, unparseable or incomplete reply -
// degrades to the deterministic fallback, never to an error.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/logger"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-5-mini"
	defaultTimeout = 20 * time.Second
)

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewClient builds a generator. An empty apiKey is valid and means every
// Generate call answers with the local fallback.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   defaultModel,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate implements domain.StructuredGenerator.
func (c *Client) Generate(ctx context.Context, payload *domain.WizardPayload) *domain.StructuredRecommendations {
	if c.apiKey == "" {
		return Fallback(payload)
	}

	content, err := c.complete(ctx, payload)
	if err != nil {
		logger.Log.Warn("openai generation failed, using fallback", "error", err)
		return Fallback(payload)
	}

	var out domain.StructuredRecommendations
	if err := json.Unmarshal([]byte(content), &out); err != nil || !out.Complete() {
		logger.Log.Warn("openai returned incomplete recommendations, using fallback")
		return Fallback(payload)
	}
	return &out
}

func (c *Client) complete(ctx context.Context, payload *domain.WizardPayload) (string, error) {
	contextData, _ := json.MarshalIndent(payload, "", "  ")

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are a golf fitting and coaching assistant. " +
					"Respond with a single JSON object with keys equipment " +
					"(driver, iron, wedges, grip, ball, putter specs), " +
					"gameImprovements (plan with longGame/shortGame/putting and " +
					"extras with trainingAids/apps/enjoymentUpgrades) and " +
					"scoring (handicapCalculation with estimate, method, notes).",
			},
			{
				Role:    "assistant",
				Content: "CONTEXT DATA:\nUser information:\n" + string(contextData),
			},
			{
				Role: "user",
				Content: "Generate equipment specs, game improvements, a 3-part " +
					"practice plan with aids/apps/enjoyment upgrades, scoring and " +
					"handicap calculation.",
			},
		},
	}
	req.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}
