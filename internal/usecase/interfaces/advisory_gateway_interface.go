package interfaces

import (
	"context"
	"forro_orcamento/internal/domain/entities"
)

//go:generate mockgen -source=advisory_gateway_interface.go -destination=mocks/advisory_gateway_mock.go -package=mock_interfaces

// IAdvisoryGateway abstracts the external text generation service used for
// installation tips. Errors are expected; callers fall back to canned text.
type IAdvisoryGateway interface {
	GenerateAdvice(ctx context.Context, req entities.AdviceRequest) (entities.Advice, error)
}
