package usecase

import (
	"context"
	"strings"
	"time"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const DefaultAdvisoryTimeout = 8 * time.Second

// IAdvisoryUseCase supplies optional installation tips. It never fails:
// every problem with the external service degrades to canned advice.
type IAdvisoryUseCase interface {
	GetInstallationAdvice(ctx context.Context, width, length float64, materialLabel string) entities.Advice
	Start(ctx context.Context, width, length float64, materialLabel string) <-chan entities.Advice
}

type AdvisoryUseCase struct {
	gateway interfaces.IAdvisoryGateway
	timeout time.Duration
	logger  *zap.Logger
}

var _ IAdvisoryUseCase = (*AdvisoryUseCase)(nil)

// NewAdvisoryUseCase accepts a nil gateway, meaning the service is not configured.
func NewAdvisoryUseCase(gateway interfaces.IAdvisoryGateway, timeout time.Duration, logger *zap.Logger) *AdvisoryUseCase {
	if timeout <= 0 {
		timeout = DefaultAdvisoryTimeout
	}
	return &AdvisoryUseCase{gateway: gateway, timeout: timeout, logger: logging.OrNop(logger).Named("advisory")}
}

func NotConfiguredAdvice() entities.Advice {
	return entities.Advice{
		Tips:        []string{"Chave de API não configurada. Não é possível gerar dicas personalizadas."},
		EconomyNote: "Cálculo padrão aplicado sem análise de IA.",
		Source:      entities.AdviceSourceFallback,
	}
}

func FallbackAdvice() entities.Advice {
	return entities.Advice{
		Tips: []string{
			"Instale as réguas perpendicularmente à estrutura de sustentação.",
			"Verifique o nivelamento em todos os cantos antes de iniciar.",
			"Utilize equipamentos de proteção individual.",
		},
		EconomyNote: "Otimização baseada em cálculo geométrico padrão.",
		Source:      entities.AdviceSourceFallback,
	}
}

func (u *AdvisoryUseCase) GetInstallationAdvice(ctx context.Context, width, length float64, materialLabel string) entities.Advice {
	if u == nil || u.gateway == nil {
		return NotConfiguredAdvice()
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	type outcome struct {
		advice entities.Advice
		err    error
	}
	done := make(chan outcome, 1)
	req := entities.AdviceRequest{Width: width, Length: length, MaterialLabel: strings.TrimSpace(materialLabel)}
	go func() {
		a, err := u.gateway.GenerateAdvice(ctx, req)
		done <- outcome{advice: a, err: err}
	}()

	select {
	case <-ctx.Done():
		u.logger.Warn("advisory call timed out", zap.Duration("timeout", u.timeout), zap.Error(ctx.Err()))
		return FallbackAdvice()
	case out := <-done:
		if out.err != nil {
			u.logger.Warn("advisory call failed", zap.Error(out.err))
			return FallbackAdvice()
		}
		advice, ok := normalizeAdvice(out.advice)
		if !ok {
			u.logger.Warn("advisory returned unusable content")
			return FallbackAdvice()
		}
		return advice
	}
}

// Start runs the advisory call on its own goroutine. The channel receives
// exactly one value and is then closed.
func (u *AdvisoryUseCase) Start(ctx context.Context, width, length float64, materialLabel string) <-chan entities.Advice {
	ch := make(chan entities.Advice, 1)
	go func() {
		defer close(ch)
		ch <- u.GetInstallationAdvice(ctx, width, length, materialLabel)
	}()
	return ch
}

func normalizeAdvice(a entities.Advice) (entities.Advice, bool) {
	tips := make([]string, 0, len(a.Tips))
	for _, t := range a.Tips {
		if t = strings.TrimSpace(t); t != "" {
			tips = append(tips, t)
		}
	}
	note := strings.TrimSpace(a.EconomyNote)
	if len(tips) == 0 || note == "" {
		return entities.Advice{}, false
	}
	return entities.Advice{Tips: tips, EconomyNote: note, Source: entities.AdviceSourceModel}, true
}
