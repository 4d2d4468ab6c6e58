package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	request "forro_orcamento/internal/adapter/http/dto/request"
	response "forro_orcamento/internal/adapter/http/dto/response"
	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/infrastructure/export"
	"forro_orcamento/internal/infrastructure/logging"
	"forro_orcamento/internal/usecase"
	"forro_orcamento/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=../../../usecase/budget_usecase.go -destination=mocks/budget_usecase_mock.go -package=mocks

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidWorkbook = pkg.NewDomainErrorSimple("INVALID_WORKBOOK", "A non-empty .xlsx file is required in the 'file' field", http.StatusBadRequest)
)

// BudgetHandler serves the catalog queries and every budget rendering
// (JSON, SSE stream, PDF, XLSX, batch import).
type BudgetHandler struct {
	budgets  usecase.IBudgetUseCase
	advisory usecase.IAdvisoryUseCase
	logger   *zap.Logger
	now      func() time.Time
}

func NewBudgetHandler(budgets usecase.IBudgetUseCase, advisory usecase.IAdvisoryUseCase, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgets:  budgets,
		advisory: advisory,
		logger:   logging.OrNop(logger).Named("http.budget"),
		now:      time.Now,
	}
}

// SubCategories godoc
// @Summary      List main covering lines
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.SubCategoriesResponse
// @Router       /catalog/subcategories [get]
func (h *BudgetHandler) SubCategories(c *gin.Context) {
	list := h.budgets.SubCategories()
	if list == nil {
		list = []string{}
	}
	c.JSON(http.StatusOK, response.SubCategoriesResponse{SubCategories: list})
}

// Colors godoc
// @Summary      List colors of a main covering line
// @Tags         catalog
// @Produce      json
// @Param        sub_category  query     string  true  "Main covering line, e.g. PVC Liso"
// @Success      200           {object}  response.ColorsResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /catalog/colors [get]
func (h *BudgetHandler) Colors(c *gin.Context) {
	sub := strings.TrimSpace(c.Query("sub_category"))
	if sub == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	colors := h.budgets.Colors(sub)
	if colors == nil {
		colors = []string{}
	}
	c.JSON(http.StatusOK, response.ColorsResponse{SubCategory: sub, Colors: colors})
}

// Products godoc
// @Summary      Filter catalog products
// @Tags         catalog
// @Produce      json
// @Param        category      query     string  false  "Forro, Arremate, Acessorio or Estrutura"
// @Param        sub_category  query     string  false  "Sub-category tag (substring)"
// @Param        color         query     string  false  "Color (case-insensitive)"
// @Success      200           {object}  response.ProductsResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /catalog/products [get]
func (h *BudgetHandler) Products(c *gin.Context) {
	category := entities.Category(strings.TrimSpace(c.Query("category")))
	if category != "" && !category.Valid() {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	products := h.budgets.Products(category, c.Query("sub_category"), c.Query("color"))
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// Estimate godoc
// @Summary      Estimate a ceiling budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      request.BudgetRequest  true  "Room and main product"
// @Success      200   {object}  response.BudgetResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) Estimate(c *gin.Context) {
	budget, ok := h.estimateFromBody(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// Stream godoc
// @Summary      Estimate a budget and stream installation advice
// @Description  Server-sent events: a "budget" event right away, then an "advice" event once the advisory service answers or times out. The advice is asked for the main product's sub-category (e.g. "PVC Liso"), the same value /advice takes as free-text material.
// @Tags         budgets
// @Accept       json
// @Produce      text/event-stream
// @Param        body  body  request.BudgetRequest  true  "Room and main product"
// @Success      200
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets/stream [post]
func (h *BudgetHandler) Stream(c *gin.Context) {
	budget, ok := h.estimateFromBody(c)
	if !ok {
		return
	}

	// The stream asks for advice on the main line's sub-category.
	label := ""
	if len(budget.MainProducts) > 0 {
		label = budget.MainProducts[0].Product.SubCategory
	}
	adviceCh := h.advisory.Start(c.Request.Context(), budget.Dimensions.Width, budget.Dimensions.Length, label)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("budget", response.FromBudget(budget))
	c.Writer.Flush()

	select {
	case advice, ok := <-adviceCh:
		if ok {
			c.SSEvent("advice", response.FromAdvice(advice))
			c.Writer.Flush()
		}
	case <-c.Request.Context().Done():
		h.logger.Debug("client left before advice", zap.String("budget_id", budget.ID))
	}
}

// PDF godoc
// @Summary      Download the budget as a PDF quote
// @Tags         budgets
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  request.BudgetRequest  true  "Room and main product"
// @Success      200   {file}    file
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets/pdf [post]
func (h *BudgetHandler) PDF(c *gin.Context) {
	budget, ok := h.estimateFromBody(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteBudgetPDF(&buf, budget, h.now()); err != nil {
		h.logger.Error("pdf generation failed", zap.String("budget_id", budget.ID), zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.attachment(c, budget.ID, "pdf", contentTypePDF, buf.Bytes())
}

// XLSX godoc
// @Summary      Download the budget as a spreadsheet
// @Tags         budgets
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  request.BudgetRequest  true  "Room and main product"
// @Success      200   {file}    file
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets/xlsx [post]
func (h *BudgetHandler) XLSX(c *gin.Context) {
	budget, ok := h.estimateFromBody(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteBudgetXLSX(&buf, budget); err != nil {
		h.logger.Error("xlsx generation failed", zap.String("budget_id", budget.ID), zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.attachment(c, budget.ID, "xlsx", contentTypeXLSX, buf.Bytes())
}

// Import godoc
// @Summary      Estimate every room of a spreadsheet
// @Description  First sheet, header row, then one room per row: width, length, product_id, waste_margin (optional), structure (optional).
// @Tags         budgets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook (.xlsx)"
// @Success      200   {object}  response.BatchResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /budgets/import [post]
func (h *BudgetHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidWorkbook.HTTPStatus, errInvalidWorkbook.ToHTTPError())
		return
	}
	file, err := fh.Open()
	if err != nil {
		c.JSON(errInvalidWorkbook.HTTPStatus, errInvalidWorkbook.ToHTTPError())
		return
	}
	defer file.Close()

	reqs, rejected, err := export.ParseBudgetRequests(file)
	if err != nil {
		h.logger.Info("workbook rejected", zap.String("filename", fh.Filename), zap.Error(err))
		c.JSON(errInvalidWorkbook.HTTPStatus, errInvalidWorkbook.ToHTTPError())
		return
	}

	items := append(h.budgets.EstimateBatch(c.Request.Context(), reqs), rejected...)
	res := response.FromBatch(items)
	h.logger.Info("batch estimated", zap.String("filename", fh.Filename), zap.Int("rows", res.Count), zap.Int("failed", res.Failed))
	c.JSON(http.StatusOK, res)
}

func (h *BudgetHandler) estimateFromBody(c *gin.Context) (entities.BudgetResult, bool) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return entities.BudgetResult{}, false
	}

	budget, err := h.budgets.Estimate(c.Request.Context(), payload.Dimensions(), payload.ResolveProductID(), payload.Options())
	if err != nil {
		appErr := mapBudgetError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("estimate failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.BudgetResult{}, false
	}
	return budget, true
}

func (h *BudgetHandler) attachment(c *gin.Context, budgetID, ext, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"orcamento-%s.%s\"", budgetID, ext))
	c.DataFromReader(http.StatusOK, int64(len(body)), contentType, io.NopCloser(bytes.NewReader(body)), nil)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimensions), errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidWasteMargin), errors.Is(err, usecase.ErrInvalidStructure):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Main product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
