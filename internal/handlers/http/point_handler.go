package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/handlers/dto"
	"github.com/rafabene/plazamap-backend/internal/handlers/middleware"
	"github.com/rafabene/plazamap-backend/internal/handlers/ws"
	"github.com/rafabene/plazamap-backend/internal/services"
)

// PointHandler lida com as requisições HTTP dos pontos no mapa
type PointHandler struct {
	pointService *services.PointService
	hub          *ws.Hub
}

// NewPointHandler cria um novo PointHandler
func NewPointHandler(pointService *services.PointService, hub *ws.Hub) *PointHandler {
	return &PointHandler{
		pointService: pointService,
		hub:          hub,
	}
}

// ListPoints lista todos os pontos para a tela do cliente
// @Summary Listar pontos
// @Description Lista todos os pontos do mapa, com filtro opcional de categoria
// @Tags points
// @Produce json
// @Param category query string false "Id da categoria ('all' ou vazio lista tudo)"
// @Security BearerAuth
// @Success 200 {array} dto.PointResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /points [get]
func (h *PointHandler) ListPoints(c *gin.Context) {
	points, err := h.pointService.ListAll(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPointResponses(points))
}

// ListMyPoints lista os pontos do vendedor autenticado
// @Summary Listar meus pontos
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyPointsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /points/mine [get]
func (h *PointHandler) ListMyPoints(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	points, err := h.pointService.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.MyPointsResponse{
		Points: dto.ToPointResponses(points),
		Count:  len(points),
		Limit:  entities.MaxPointsPerOwner,
	})
}

// CreatePoint salva a localização escolhida no mapa
// @Summary Criar ponto
// @Description Cria o ponto na coordenada clicada; título/descrição ganham placeholders
// @Tags points
// @Accept json
// @Produce json
// @Param request body dto.CreatePointRequest true "Coordenadas e campos opcionais"
// @Security BearerAuth
// @Success 201 {object} dto.PointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Limite de pontos atingido"
// @Router /points [post]
func (h *PointHandler) CreatePoint(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.CreatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFrom(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	point, err := h.pointService.Create(c.Request.Context(), services.CreatePointInput{
		OwnerID:     user.ID,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Category:    req.Category,
	})
	if err != nil {
		h.renderPointError(c, err)
		return
	}

	response := dto.ToPointResponse(point)
	h.hub.BroadcastPointCreated(response)
	c.JSON(http.StatusCreated, response)
}

// UpdatePoint aplica a edição do formulário do vendedor
// @Summary Editar ponto
// @Tags points
// @Accept json
// @Produce json
// @Param id path string true "Id do ponto"
// @Param request body dto.UpdatePointRequest true "Campos editáveis"
// @Security BearerAuth
// @Success 200 {object} dto.PointResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /points/{id} [put]
func (h *PointHandler) UpdatePoint(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.UpdatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFrom(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	point, err := h.pointService.Update(c.Request.Context(), user.ID, c.Param("id"), services.UpdatePointInput{
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Category:    req.Category,
	})
	if err != nil {
		h.renderPointError(c, err)
		return
	}

	response := dto.ToPointResponse(point)
	h.hub.BroadcastPointUpdated(response)
	c.JSON(http.StatusOK, response)
}

// DeletePoint exclui um ponto do vendedor
// @Summary Excluir ponto
// @Description Exclui o ponto e remove a imagem associada (best-effort); idempotente
// @Tags points
// @Produce json
// @Param id path string true "Id do ponto"
// @Security BearerAuth
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Router /points/{id} [delete]
func (h *PointHandler) DeletePoint(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	pointID := c.Param("id")
	if err := h.pointService.Delete(c.Request.Context(), user.ID, pointID); err != nil {
		h.renderPointError(c, err)
		return
	}

	h.hub.BroadcastPointDeleted(pointID)
	c.Status(http.StatusNoContent)
}

// Stream assina os eventos de pontos em tempo real via WebSocket
// @Summary Stream de eventos de pontos
// @Description Emite point.created, point.updated e point.deleted
// @Tags points
// @Security BearerAuth
// @Router /points/stream [get]
func (h *PointHandler) Stream(c *gin.Context) {
	h.hub.ServeWS(c)
}

// renderPointError mapeia erros de domínio para problem details
func (h *PointHandler) renderPointError(c *gin.Context, err error) {
	var domainErr *errors.DomainError

	switch {
	case errs.Is(err, errors.ErrPointNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Point"))
	case errs.Is(err, errors.ErrNotPointOwner):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrPointLimitReached):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error(),
			map[string]interface{}{"Limit": entities.MaxPointsPerOwner}))
	case errs.Is(err, errors.ErrInvalidCategory), errs.Is(err, errors.ErrEmptyTitle):
		c.JSON(http.StatusUnprocessableEntity, dto.UnprocessableErrorResponseI18n(c, err.Error()))
	case errs.As(err, &domainErr):
		response := dto.ValidationErrorResponseI18n(c, nil)
		response.Detail = domainErr.Message
		c.JSON(http.StatusUnprocessableEntity, response)
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
