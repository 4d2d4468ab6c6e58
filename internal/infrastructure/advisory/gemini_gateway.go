package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"forro_orcamento/internal/config"
	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyModelResponse  = errors.New("empty gemini response")
	ErrNonJSONOutput       = errors.New("gemini returned non-json output")
)

// GeminiGateway asks the Gemini generateContent endpoint for installation
// tips, forcing a JSON answer through a response schema.
type GeminiGateway struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	mockMode   bool
	logger     *zap.Logger
}

var _ interfaces.IAdvisoryGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(cfg config.Config, logger *zap.Logger) (*GeminiGateway, error) {
	logger = logging.OrNop(logger).Named("advisory.gateway")
	if cfg.AdvisoryMock {
		logger.Info("mock mode enabled")
		return &GeminiGateway{mockMode: true, logger: logger}, nil
	}
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	rps := cfg.AdvisoryRPS
	if rps <= 0 {
		rps = 2
	}
	return &GeminiGateway{
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}, nil
}

// BuildAdvicePrompt is the Portuguese instruction sent to the model.
func BuildAdvicePrompt(req entities.AdviceRequest) string {
	return fmt.Sprintf(`Analise a instalação de um forro de %s para um ambiente de %sm x %sm.

Forneça:
1. 3 dicas técnicas curtas e práticas de instalação específicas para essa proporção de área (ex: direção das réguas, estrutura).
2. Uma justificativa econômica curta sobre como a otimização de corte reduz custos.

Retorne APENAS JSON.`, req.MaterialLabel, formatMeters(req.Width), formatMeters(req.Length))
}

var adviceSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"tips": map[string]any{
			"type":        "ARRAY",
			"items":       map[string]any{"type": "STRING"},
			"description": "Lista de 3 dicas técnicas.",
		},
		"economyJustification": map[string]any{
			"type":        "STRING",
			"description": "Justificativa de economia.",
		},
	},
	"required": []string{"tips", "economyJustification"},
}

func (g *GeminiGateway) GenerateAdvice(ctx context.Context, req entities.AdviceRequest) (entities.Advice, error) {
	if g.mockMode {
		return mockAdvice(req), nil
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return entities.Advice{}, fmt.Errorf("advisory rate limit: %w", err)
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": BuildAdvicePrompt(req)}}},
		},
		"generationConfig": map[string]any{
			"temperature":      0.2,
			"maxOutputTokens":  1024,
			"responseMimeType": "application/json",
			"responseSchema":   adviceSchema,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Advice{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.Advice{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return entities.Advice{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Advice{}, err
	}
	g.logger.Debug("gemini response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(raw)))

	if resp.StatusCode != http.StatusOK {
		return entities.Advice{}, fmt.Errorf("gemini api error: status %d: %s", resp.StatusCode, string(raw))
	}
	return parseAdvice(raw)
}

func parseAdvice(raw []byte) (entities.Advice, error) {
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return entities.Advice{}, err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return entities.Advice{}, ErrEmptyModelResponse
	}

	output := result.Candidates[0].Content.Parts[0].Text
	if !json.Valid([]byte(output)) {
		return entities.Advice{}, ErrNonJSONOutput
	}

	var insight struct {
		Tips                 []string `json:"tips"`
		EconomyJustification string   `json:"economyJustification"`
	}
	if err := json.Unmarshal([]byte(output), &insight); err != nil {
		return entities.Advice{}, fmt.Errorf("decode advice: %w", err)
	}
	return entities.Advice{
		Tips:        insight.Tips,
		EconomyNote: insight.EconomyJustification,
		Source:      entities.AdviceSourceModel,
	}, nil
}

func mockAdvice(req entities.AdviceRequest) entities.Advice {
	return entities.Advice{
		Tips: []string{
			fmt.Sprintf("Instale as réguas no sentido do lado de %sm para reduzir emendas.", formatMeters(max(req.Width, req.Length))),
			"Mantenha a estrutura a cada 0,60m e confira o nível antes de fixar as réguas.",
			"Comece pela parede oposta à entrada para esconder o último corte.",
		},
		EconomyNote: "Réguas inteiras no sentido do comprimento reduzem sobras de corte.",
		Source:      entities.AdviceSourceModel,
	}
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
