package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"irbana.com/pontosync/geo"
	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/web/common"
	"irbana.com/pontosync/web/middlewares"
)

// Handler serves the development backend: the same contract as the
// production API, backed by in-memory state.
type Handler struct {
	mu     sync.Mutex
	nextID int

	// registros keyed by funcionario_id:data, one record per employee day
	registros  map[string]*v1.RegistroPontoDTO
	documentos map[int][]v1.DocumentoDTO

	// Obra is the work site punches must be captured near. Nil disables
	// the geofence.
	Obra *geo.Coordenadas
	Raio float64
}

func NewHandler(obra *geo.Coordenadas, raio float64) *Handler {
	return &Handler{
		nextID:     1,
		registros:  map[string]*v1.RegistroPontoDTO{},
		documentos: map[int][]v1.DocumentoDTO{},
		Obra:       obra,
		Raio:       raio,
	}
}

// funcionarioPermitido rejects requests touching another employee's data.
// Routes mounted without the authentication middleware carry no identity
// and skip the check.
func funcionarioPermitido(c *gin.Context, funcionarioID int) bool {
	identity := middlewares.Identity(c)
	if identity == nil || identity.FuncionarioID == funcionarioID {
		return true
	}
	c.JSON(http.StatusForbidden, common.NewErrorResponse("Acesso negado a dados de outro funcionário"))
	return false
}

// SeedDocumento registers a document for an employee, for manual testing.
func (h *Handler) SeedDocumento(doc v1.DocumentoDTO) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.documentos[doc.FuncionarioID] = append(h.documentos[doc.FuncionarioID], doc)
}
