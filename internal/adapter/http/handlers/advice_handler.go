package handlers

import (
	"net/http"

	request "forro_orcamento/internal/adapter/http/dto/request"
	response "forro_orcamento/internal/adapter/http/dto/response"
	"forro_orcamento/internal/usecase"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/advisory_usecase.go -destination=mocks/advisory_usecase_mock.go -package=mocks

type AdviceHandler struct {
	usecase usecase.IAdvisoryUseCase
}

func NewAdviceHandler(uc usecase.IAdvisoryUseCase) *AdviceHandler {
	return &AdviceHandler{usecase: uc}
}

// Advice godoc
// @Summary      Installation tips for a room
// @Description  Always answers 200; when the advisory service is unavailable the canned tips are returned with source "fallback".
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      request.AdviceRequest  true  "Room and material"
// @Success      200   {object}  response.AdviceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /advice [post]
func (h *AdviceHandler) Advice(c *gin.Context) {
	var payload request.AdviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Valid() {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	advice := h.usecase.GetInstallationAdvice(c.Request.Context(), payload.Width, payload.Length, payload.Material)
	c.JSON(http.StatusOK, response.FromAdvice(advice))
}
