// Package openai provides the OpenAI-compatible AI service adapter
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

// Client implements the AIService interface against any
// OpenAI-compatible chat completion endpoint
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	imageModel  string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new AI client from configuration
func NewClient(cfg *config.Config, logger *zap.Logger) outbound.AIService {
	return &Client{
		apiKey:      cfg.AI.APIKey,
		baseURL:     cfg.AI.BaseURL,
		model:       cfg.AI.Model,
		imageModel:  cfg.AI.ImageModel,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
		client: &http.Client{
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("openai"),
	}
}

// Request and response structures for the chat completion API

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Tools       []tool        `json:"tools,omitempty"`
	ToolChoice  interface{}   `json:"tool_choice,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Complete runs a free-form chat completion
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.chat(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.NewExternalServiceError("openai", fmt.Errorf("empty completion"))
	}
	return resp.Choices[0].Message.Content, nil
}

const recommendSystemPrompt = `You are a nutrition-focused recipe recommendation assistant. Your job is to analyze nutritional gaps and suggest the best recipes to fill those gaps while respecting dietary preferences and allergies.

Guidelines:
- Prioritize recipes that fill the biggest nutritional gaps
- Never recommend recipes containing allergens the user has specified
- Consider dietary preferences (vegetarian, vegan, keto, etc.)
- Explain WHY each recipe was chosen based on nutritional benefits
- Return exactly 3 recommendations`

var recommendToolSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "recipe_id": {"type": "string", "description": "The UUID of the recommended recipe"},
          "reason": {"type": "string", "description": "Brief explanation of why this recipe was chosen"},
          "nutrition_highlight": {"type": "string", "description": "Key nutrient this recipe helps with"}
        },
        "required": ["recipe_id", "reason", "nutrition_highlight"],
        "additionalProperties": false
      }
    }
  },
  "required": ["recommendations"],
  "additionalProperties": false
}`)

// RecommendRecipes asks the model to pick three candidates, using a
// forced tool call so the response is structured
func (c *Client) RecommendRecipes(ctx context.Context, req outbound.RecommendationRequest) ([]outbound.Recommendation, error) {
	gaps, _ := json.Marshal(req.Goals)
	candidates, _ := json.Marshal(req.Candidates)

	userPrompt := fmt.Sprintf(`Based on the following data, recommend 3 recipes from the available list:

NUTRITIONAL GAPS (what the user needs more of today):
%s

USER'S DIETARY PREFERENCES: %s

USER'S ALLERGIES (MUST AVOID): %s

AVAILABLE RECIPES:
%s`,
		gaps, joinOrNone(req.Preferences), joinOrNone(req.Allergies), candidates)

	resp, err := c.chat(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: recommendSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "suggest_recipes",
				Description: "Return 3 recipe recommendations with explanations",
				Parameters:  recommendToolSchema,
			},
		}},
		ToolChoice: map[string]interface{}{
			"type":     "function",
			"function": map[string]string{"name": "suggest_recipes"},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, errors.NewExternalServiceError("openai", fmt.Errorf("no tool call in response"))
	}

	var parsed struct {
		Recommendations []outbound.Recommendation `json:"recommendations"`
	}
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &parsed); err != nil {
		return nil, errors.NewExternalServiceError("openai", fmt.Errorf("malformed tool arguments: %w", err))
	}
	return parsed.Recommendations, nil
}

// GenerateRecipeImage produces a recipe photo
func (c *Client) GenerateRecipeImage(ctx context.Context, recipeName, description string) ([]byte, string, error) {
	prompt := fmt.Sprintf("Professional food photography of %s. %s. Overhead shot, natural light, appetizing presentation.",
		recipeName, description)

	body, err := json.Marshal(imageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, "", err
	}

	data, err := c.post(ctx, "/images/generations", body)
	if err != nil {
		return nil, "", err
	}

	var resp imageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, "", errors.NewExternalServiceError("openai", err)
	}
	if len(resp.Data) == 0 {
		return nil, "", errors.NewExternalServiceError("openai", fmt.Errorf("empty image response"))
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, "", errors.NewExternalServiceError("openai", err)
	}
	return raw, "image/png", nil
}

func (c *Client) chat(ctx context.Context, req chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	data, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.NewExternalServiceError("openai", err)
	}
	return &resp, nil
}

// post sends a request to the API and maps provider throttling and
// billing failures to typed retryable errors
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalServiceError("openai", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExternalServiceError("openai", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("ai provider rate limited")
		return nil, errors.NewAIRateLimitedError()
	case resp.StatusCode == http.StatusPaymentRequired:
		c.logger.Warn("ai provider requires payment")
		return nil, errors.NewAIPaymentRequiredError()
	case resp.StatusCode >= 400:
		c.logger.Error("ai provider error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data),
		)
		return nil, errors.NewExternalServiceError("openai",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return data, nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
