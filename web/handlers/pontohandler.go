package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"irbana.com/pontosync/geo"
	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
	"irbana.com/pontosync/web/common"
)

type registroPontoInput struct {
	FuncionarioID          int     `json:"funcionario_id" binding:"required"`
	Data                   string  `json:"data" binding:"required"`
	Entrada                *string `json:"entrada"`
	SaidaAlmoco            *string `json:"saida_almoco"`
	VoltaAlmoco            *string `json:"volta_almoco"`
	Saida                  *string `json:"saida"`
	Localizacao            *string `json:"localizacao"`
	JustificativaAlteracao *string `json:"justificativa_alteracao"`
}

func (in *registroPontoInput) toDTO() *v1.RegistroPontoDTO {
	return &v1.RegistroPontoDTO{
		FuncionarioID:          in.FuncionarioID,
		Data:                   in.Data,
		Entrada:                in.Entrada,
		SaidaAlmoco:            in.SaidaAlmoco,
		VoltaAlmoco:            in.VoltaAlmoco,
		Saida:                  in.Saida,
		Localizacao:            in.Localizacao,
		JustificativaAlteracao: in.JustificativaAlteracao,
	}
}

func (in *registroPontoInput) horasValidas() bool {
	for _, hora := range []*string{in.Entrada, in.SaidaAlmoco, in.VoltaAlmoco, in.Saida} {
		if hora != nil && !utils.ValidarHora(*hora) {
			return false
		}
	}
	return true
}

func registroChave(funcionarioID int, data string) string {
	return fmt.Sprintf("%d:%s", funcionarioID, data)
}

// validarGeofence rejects punches captured away from the work site.
func (h *Handler) validarGeofence(c *gin.Context, localizacao *string) bool {
	if h.Obra == nil {
		return true
	}
	if localizacao == nil {
		c.JSON(http.StatusForbidden, common.NewCodedErrorResponse(
			"Localização obrigatória para registro de ponto", "FORA_DO_PERIMETRO"))
		return false
	}

	coords := geo.ExtrairCoordenadas(*localizacao)
	if coords == nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Localização inválida"))
		return false
	}

	validacao := geo.ValidarProximidade(*coords, *h.Obra, h.Raio)
	if !validacao.Valido {
		c.JSON(http.StatusForbidden, common.NewCodedErrorResponse(validacao.Mensagem, "FORA_DO_PERIMETRO"))
		return false
	}
	return true
}

// CreateRegistroHandler handles POST /api/ponto-eletronico/registros.
func (h *Handler) CreateRegistroHandler(c *gin.Context) {
	var input registroPontoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if !input.horasValidas() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Horário inválido"))
		return
	}
	if !funcionarioPermitido(c, input.FuncionarioID) {
		return
	}
	if !h.validarGeofence(c, input.Localizacao) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	chave := registroChave(input.FuncionarioID, input.Data)
	if _, exists := h.registros[chave]; exists {
		c.JSON(http.StatusConflict, common.NewErrorResponse(
			"Já existe registro de ponto para este funcionário nesta data"))
		return
	}

	dto := input.toDTO()
	dto.ID = h.nextID
	h.nextID++
	h.registros[chave] = dto

	c.JSON(http.StatusCreated, common.NewSuccessResponse(dto))
}

// UpdateRegistroHandler handles PUT /api/ponto-eletronico/registros/:id.
func (h *Handler) UpdateRegistroHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("id inválido"))
		return
	}

	var input registroPontoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if !input.horasValidas() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Horário inválido"))
		return
	}
	if !funcionarioPermitido(c, input.FuncionarioID) {
		return
	}
	if !h.validarGeofence(c, input.Localizacao) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for chave, registro := range h.registros {
		if registro.ID == id {
			// the update may move the record to another employee day
			delete(h.registros, chave)

			dto := input.toDTO()
			dto.ID = id
			h.registros[registroChave(dto.FuncionarioID, dto.Data)] = dto
			c.JSON(http.StatusOK, common.NewSuccessResponse(dto))
			return
		}
	}

	c.JSON(http.StatusNotFound, common.NewErrorResponse("Registro de ponto não encontrado"))
}

// ListRegistrosHandler handles GET /api/ponto-eletronico/registros.
func (h *Handler) ListRegistrosHandler(c *gin.Context) {
	funcionarioID, err := strconv.Atoi(c.Query("funcionario_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("funcionario_id é obrigatório"))
		return
	}
	if !funcionarioPermitido(c, funcionarioID) {
		return
	}
	inicio := c.Query("data_inicio")
	fim := c.Query("data_fim")

	h.mu.Lock()
	defer h.mu.Unlock()

	registros := []v1.RegistroPontoDTO{}
	for _, registro := range h.registros {
		if registro.FuncionarioID != funcionarioID {
			continue
		}
		if inicio != "" && registro.Data < inicio {
			continue
		}
		if fim != "" && registro.Data > fim {
			continue
		}
		registros = append(registros, *registro)
	}

	// oldest first: yyyy-MM-dd sorts lexicographically
	sort.Slice(registros, func(i, j int) bool {
		return registros[i].Data < registros[j].Data
	})

	c.JSON(http.StatusOK, common.NewSuccessResponse(registros))
}
