package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"everest-finance/config"
	"everest-finance/display"
	"everest-finance/domain"
)

// minimumFeeNote is appended to every summary so a fee quoted at the bottom
// of the tier's range is never read as the final figure.
const minimumFeeNote = "Frais estimés au taux minimum de la formule choisie."

// AdvisorService writes a short plain-language summary of a projection,
// through an OpenAI-compatible chat endpoint when one is configured.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(cfg config.AdvisorConfig, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		model:   cfg.Model,
		enabled: cfg.APIKey != "" && cfg.APIURL != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Summarize never fails: without an endpoint, or when the call fails, it
// returns a templated summary.
func (s *AdvisorService) Summarize(
	ctx context.Context,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) string {
	if !s.enabled {
		return s.fallbackSummary(input, result)
	}

	prompt := fmt.Sprintf(`Résume cette simulation de placement pour un client d'une société de gestion et d'intermédiation (SGI) en zone UEMOA.

SIMULATION :
- Capital initial : %s
- Versement mensuel : %s
- Horizon : %d ans
- Rendement annuel attendu : %.2f %%
- Formule de gestion : %s (frais annuels de %.2f %% à %.2f %%)

RÉSULTATS :
- Total investi : %s
- Valeur projetée : %s
- Frais estimés : %s
- Gain net estimé : %s

Rédige 2 à 3 phrases claires, sans promesse de rendement.`,
		display.FormatAmount(input.InitialAmount),
		display.FormatAmount(input.MonthlyContribution),
		input.TimeHorizonYears,
		input.ExpectedAnnualReturn*100,
		input.ServiceTier.Name, input.ServiceTier.FeeMin*100, input.ServiceTier.FeeMax*100,
		display.FormatAmount(result.TotalInvested),
		display.FormatAmount(result.ProjectedValue),
		display.FormatAmount(result.TotalFees),
		display.FormatAmount(result.NetReturn),
	)

	summary, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.logger.Warn("advisor call failed, using fallback summary", zap.Error(err))
		return s.fallbackSummary(input, result)
	}
	return strings.TrimSpace(summary) + " " + minimumFeeNote
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "Tu es conseiller financier dans une SGI d'Afrique de l'Ouest. Tu expliques les simulations de placement en français simple, en francs CFA, sans jargon.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("advisor API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", errors.New("advisor API returned no content")
	}
	return chatResp.Choices[0].Message.Content, nil
}

func (s *AdvisorService) fallbackSummary(input domain.ProjectionInput, result domain.ProjectionResult) string {
	return fmt.Sprintf(
		"Sur %d ans, avec %s au départ et %s par mois, votre placement pourrait atteindre %s pour %s investis. "+
			"Après %s de frais de gestion (%s), le gain net estimé est de %s. %s",
		input.TimeHorizonYears,
		display.FormatAmount(input.InitialAmount),
		display.FormatAmount(input.MonthlyContribution),
		display.FormatAmount(result.ProjectedValue),
		display.FormatAmount(result.TotalInvested),
		display.FormatAmount(result.TotalFees),
		input.ServiceTier.Name,
		display.FormatAmount(result.NetReturn),
		minimumFeeNote,
	)
}
