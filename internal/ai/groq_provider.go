package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ayursetu/ayur-hub/internal/config"
)

const groqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqProvider talks to Groq's OpenAI-compatible chat completions API.
type GroqProvider struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	baseURL     string
	httpClient  *http.Client
}

func NewGroqProvider(cfg *config.Config) *GroqProvider {
	timeoutSeconds := cfg.AITimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 20
	}

	return &GroqProvider{
		apiKey:      cfg.GroqAPIKey,
		model:       cfg.GroqModel,
		maxTokens:   cfg.AIMaxOutputTokens,
		temperature: cfg.AITemperature,
		baseURL:     groqChatCompletionsURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

func (p *GroqProvider) GenerateWeeklyPlan(ctx context.Context, req PlanRequest) (string, error) {
	messages := []chatMessageRequest{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: buildPlanPrompt(req)},
	}
	return p.complete(ctx, messages)
}

func (p *GroqProvider) SuggestMeals(ctx context.Context, req SuggestionRequest) (string, error) {
	messages := []chatMessageRequest{
		{Role: "system", Content: suggestionSystemPrompt},
		{Role: "user", Content: buildSuggestionPrompt(req)},
	}
	return p.complete(ctx, messages)
}

func (p *GroqProvider) complete(ctx context.Context, messages []chatMessageRequest) (string, error) {
	requestPayload := chatCompletionsRequest{
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		Messages:    messages,
	}

	body, err := json.Marshal(requestPayload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq request failed with status %d", resp.StatusCode)
	}

	var parsed chatCompletionsResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq response does not contain choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

const planSystemPrompt = "You are an expert Ayurvedic nutritionist with deep knowledge of " +
	"traditional Indian medicine and nutrition. You create personalized diet plans " +
	"based on dosha constitution and health conditions."

const suggestionSystemPrompt = "You are an Ayurvedic nutritionist. Suggest appropriate " +
	"foods based on patient constitution."

func buildPlanPrompt(req PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Create a 7-day Ayurvedic diet plan for %s (%dyo %s, Prakriti: %s, Dosha: V%d%% P%d%% K%d%%, BMI: %.1f).\n\n",
		req.Patient.Name,
		req.Patient.Age,
		req.Patient.Gender,
		req.Patient.Prakriti,
		req.Patient.Dosha.Vata,
		req.Patient.Dosha.Pitta,
		req.Patient.Dosha.Kapha,
		req.Patient.BMI,
	)
	if len(req.Patient.HealthConditions) > 0 {
		fmt.Fprintf(&b, "Health conditions: %s.\n\n", strings.Join(req.Patient.HealthConditions, ", "))
	}
	fmt.Fprintf(&b, "IMPORTANT: Use ONLY these exact food names from our database:\n%s\n\n",
		strings.Join(req.FoodNames, ", "))
	b.WriteString("Create a varied 7-day plan using different combinations of these foods. " +
		"Respond with ONLY a valid JSON object, no other text.\n\n")
	b.WriteString(`Keys: Monday..Sunday; per day keys: earlyMorning, breakfast, midMorning, lunch, evening, dinner, bedtime; ` +
		`each a list of {"foodName": "...", "quantity": "...", "notes": "..."}.` + "\n\n")
	b.WriteString(`Example day: {"Monday": {"earlyMorning": [{"foodName": "Warm Water with Lemon", "quantity": "1 glass", "notes": "cleansing"}], ` +
		`"breakfast": [{"foodName": "Oatmeal", "quantity": "1 bowl", "notes": "with ghee"}], "midMorning": [{"foodName": "Green Tea", "quantity": "1 cup", "notes": "antioxidants"}], ` +
		`"lunch": [{"foodName": "Basmati Rice", "quantity": "1 cup", "notes": "with dal"}, {"foodName": "Dal (Lentils)", "quantity": "1 bowl", "notes": "protein"}], ` +
		`"evening": [{"foodName": "Herbal Tea", "quantity": "1 cup", "notes": "digestion"}], "dinner": [{"foodName": "Vegetable Soup", "quantity": "1 bowl", "notes": "light"}], ` +
		`"bedtime": [{"foodName": "Warm Milk with Turmeric", "quantity": "1 glass", "notes": "golden milk"}]}}`)
	return b.String()
}

func buildSuggestionPrompt(req SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Suggest 2-3 appropriate Ayurvedic foods for %s on %s for a patient with:\n- Constitution: %s\n- Dosha Balance: Vata %d%%, Pitta %d%%, Kapha %d%%\n\n",
		req.MealLabel,
		req.Weekday,
		req.Patient.Prakriti,
		req.Patient.Dosha.Vata,
		req.Patient.Dosha.Pitta,
		req.Patient.Dosha.Kapha,
	)
	b.WriteString("Include common Ayurvedic foods like rice, dal, vegetables, fruits, spices, herbal teas.\n\n")
	b.WriteString(`Respond with JSON array only: [{"foodName": "Basmati Rice", "quantity": "1 cup", "notes": "good for digestion"}]`)
	return b.String()
}

type chatCompletionsRequest struct {
	Model       string               `json:"model"`
	Messages    []chatMessageRequest `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type chatMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
