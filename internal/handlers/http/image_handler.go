package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/handlers/dto"
	"github.com/rafabene/plazamap-backend/internal/handlers/middleware"
	"github.com/rafabene/plazamap-backend/internal/handlers/ws"
	"github.com/rafabene/plazamap-backend/internal/services"
)

// ImageHandler lida com o upload e a remoção da imagem de um ponto
type ImageHandler struct {
	imageService *services.ImageService
	hub          *ws.Hub
}

// NewImageHandler cria um novo ImageHandler
func NewImageHandler(imageService *services.ImageService, hub *ws.Hub) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		hub:          hub,
	}
}

// UploadImage recebe a imagem do ponto via multipart
// @Summary Enviar imagem do ponto
// @Description Aceita somente image/* até 5MiB; substitui a imagem anterior
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Id do ponto"
// @Param file formData file true "Arquivo de imagem"
// @Security BearerAuth
// @Success 200 {object} dto.ImageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Arquivo grande demais ou não é imagem"
// @Router /points/{id}/image [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "file", Message: "required"},
		})
		c.JSON(http.StatusBadRequest, response)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}
	defer file.Close()

	pointID := c.Param("id")
	url, err := h.imageService.Upload(c.Request.Context(), services.UploadInput{
		OwnerID:     user.ID,
		PointID:     pointID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		h.renderImageError(c, err)
		return
	}

	h.hub.BroadcastPointUpdated(gin.H{"id": pointID, "image_url": url})
	c.JSON(http.StatusOK, dto.ImageResponse{ImageURL: url})
}

// DeleteImage remove a imagem de um ponto
// @Summary Remover imagem do ponto
// @Tags images
// @Produce json
// @Param id path string true "Id do ponto"
// @Security BearerAuth
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /points/{id}/image [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	pointID := c.Param("id")
	if err := h.imageService.Remove(c.Request.Context(), user.ID, pointID); err != nil {
		h.renderImageError(c, err)
		return
	}

	h.hub.BroadcastPointUpdated(gin.H{"id": pointID, "image_url": nil})
	c.Status(http.StatusNoContent)
}

// renderImageError mapeia erros de domínio para problem details
func (h *ImageHandler) renderImageError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrPointNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Point"))
	case errs.Is(err, errors.ErrNotPointOwner):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrImageTooLarge):
		c.JSON(http.StatusUnprocessableEntity, dto.UnprocessableErrorResponseI18n(c, err.Error(),
			map[string]interface{}{"Limit": "5MiB"}))
	case errs.Is(err, errors.ErrNotAnImage):
		c.JSON(http.StatusUnprocessableEntity, dto.UnprocessableErrorResponseI18n(c, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
