package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Talapoin/config"
	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/lshigami/Talapoin/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// QuestionGeneratorService drafts trivia questions with Gemini. Drafts are
// returned for admin review and are never persisted here.
type QuestionGeneratorService interface {
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionSuggestionResponse, error)
}

type questionGeneratorService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuestionGeneratorService(cfg *config.Config) (QuestionGeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuestionGeneratorService will be non-functional.")
		return &questionGeneratorService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiModel := client.GenerativeModel("gemini-1.5-flash")
	return &questionGeneratorService{client: geminiModel, cfg: cfg}, nil
}

const generatorPrompt = `You are a trivia question writer.
Write ONE multiple-choice question about the topic %q with difficulty %q.
Respond with ONLY valid JSON (no markdown, no code fences) in exactly this format:
{
  "text": "Question text?",
  "options": {"A": "First option", "B": "Second option", "C": "Third option", "D": "Fourth option"},
  "correct_option": "A",
  "difficulty": "%s"
}
Rules:
- Provide 3 or 4 options keyed "A", "B", "C", "D".
- correct_option must be one of the option keys.
- The question must be factually accurate.`

func (s *questionGeneratorService) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionSuggestionResponse, error) {
	if s.client == nil {
		return nil, apperror.Unavailable("question generator is not configured")
	}
	if !model.ValidDifficulty(req.Difficulty) {
		return nil, apperror.BadRequest("difficulty must be one of: easy, medium, hard")
	}

	prompt := fmt.Sprintf(generatorPrompt, req.Topic, req.Difficulty, req.Difficulty)
	result, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Gemini generation failed")
		return nil, fmt.Errorf("generate question: %w", err)
	}
	raw, err := textFromResponse(result)
	if err != nil {
		return nil, err
	}

	var suggestion dto.QuestionSuggestionResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &suggestion); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Gemini returned non-JSON output")
		return nil, fmt.Errorf("parse generated question: %w", err)
	}

	// The model occasionally invents keys or mislabels the answer; reject
	// drafts that would fail question creation anyway.
	if len(suggestion.Options) == 0 {
		return nil, fmt.Errorf("generated question has no options")
	}
	if _, ok := suggestion.Options[suggestion.CorrectOption]; !ok {
		return nil, fmt.Errorf("generated correct_option %q is not an option key", suggestion.CorrectOption)
	}
	suggestion.Difficulty = req.Difficulty

	return &suggestion, nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in Gemini response")
	}
	return sb.String(), nil
}

func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
