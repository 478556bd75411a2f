package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
	"irbana.com/pontosync/web/common"
)

type assinaturaInput struct {
	Assinatura    string  `json:"assinatura" binding:"required"`
	FuncionarioID int     `json:"funcionario_id" binding:"required"`
	Geoloc        *string `json:"geoloc"`
	Timestamp     string  `json:"timestamp" binding:"required"`
	Observacoes   *string `json:"observacoes"`
}

// AssinarDocumentoHandler handles POST /api/assinaturas/assinar/:id.
func (h *Handler) AssinarDocumentoHandler(c *gin.Context) {
	documentoID := c.Param("id")

	var input assinaturaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if _, err := utils.ParseISOTime(input.Timestamp); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Timestamp da assinatura inválido"))
		return
	}
	if !funcionarioPermitido(c, input.FuncionarioID) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	documentos := h.documentos[input.FuncionarioID]
	for i, doc := range documentos {
		if doc.ID != documentoID {
			continue
		}
		if doc.Status == "assinado" {
			c.JSON(http.StatusConflict, common.NewErrorResponse("Documento já assinado"))
			return
		}

		documentos[i].Status = "assinado"
		documentos[i].AssinaturaURL = &input.Assinatura
		c.JSON(http.StatusOK, common.NewSuccessResponse(documentos[i]))
		return
	}

	c.JSON(http.StatusNotFound, common.NewErrorResponse("Documento não encontrado"))
}

// ListDocumentosHandler handles GET /api/documentos/funcionario/:id.
func (h *Handler) ListDocumentosHandler(c *gin.Context) {
	funcionarioID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("id inválido"))
		return
	}
	if !funcionarioPermitido(c, funcionarioID) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	documentos := append([]v1.DocumentoDTO{}, h.documentos[funcionarioID]...)
	c.JSON(http.StatusOK, common.NewSuccessResponse(documentos))
}
