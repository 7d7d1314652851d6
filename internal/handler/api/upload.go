package api

import (
	"context"
	"net/http"

	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cmds commands.UploadCommands
}

func NewUploadHandler(cmds commands.UploadCommands) *UploadHandler {
	return &UploadHandler{cmds: cmds}
}

type uploadFunc func(ctx context.Context, vendorID uuid.UUID, file commands.UploadFile) (*commands.UploadResult, error)

// @Summary Upload a menu item image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} resdto.UploadResponse
// @Failure 415 {object} httperr.Response
// @Router /uploads/menu-image [post]
func (h *UploadHandler) MenuImage(c *gin.Context) {
	h.handle(c, h.cmds.UploadMenuImage)
}

// @Summary Upload a storefront image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} resdto.UploadResponse
// @Failure 415 {object} httperr.Response
// @Router /uploads/vendor-image [post]
func (h *UploadHandler) VendorImage(c *gin.Context) {
	h.handle(c, h.cmds.UploadVendorImage)
}

func (h *UploadHandler) handle(c *gin.Context, upload uploadFunc) {
	s, ok := subject(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "file is required", nil)
		return
	}
	f, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "file could not be read", nil)
		return
	}
	defer f.Close()

	result, err := upload(c.Request.Context(), s.ID, commands.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	})
	if err != nil {
		httperr.Abort(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.UploadResponse{Bucket: result.Bucket, Path: result.Path, URL: result.URL})
}
