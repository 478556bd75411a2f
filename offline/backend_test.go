package offline

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	v1 "irbana.com/pontosync/irbana/v1"
)

// fakeBackend is an in-memory stand-in for the Irbana API, with a hook
// to force failures on specific requests.
type fakeBackend struct {
	mu         sync.Mutex
	nextID     int
	registros  map[string]*v1.RegistroPontoDTO // funcionarioID:data
	documentos map[int][]v1.DocumentoDTO
	assinados  []string

	// failNext maps "METHOD count" semantics: fail returns the status to
	// answer with for this request, or 0 to proceed normally.
	fail func(r *http.Request) int

	server *httptest.Server
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		nextID:     1,
		registros:  map[string]*v1.RegistroPontoDTO{},
		documentos: map[int][]v1.DocumentoDTO{},
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

func (b *fakeBackend) close() { b.server.Close() }

func (b *fakeBackend) client() *v1.Client {
	return v1.NewClient(b.server.URL, "test-token")
}

func registroChave(funcionarioID int, data string) string {
	return fmt.Sprintf("%d:%s", funcionarioID, data)
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fail != nil {
		if status := b.fail(r); status != 0 {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "injected failure",
			})
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/ponto-eletronico/registros":
		funcionarioID, _ := strconv.Atoi(r.URL.Query().Get("funcionario_id"))
		inicio := r.URL.Query().Get("data_inicio")
		registros := []v1.RegistroPontoDTO{}
		if reg, ok := b.registros[registroChave(funcionarioID, inicio)]; ok {
			registros = append(registros, *reg)
		}
		writeData(w, registros)

	case r.Method == http.MethodPost && r.URL.Path == "/api/ponto-eletronico/registros":
		var dto v1.RegistroPontoDTO
		json.NewDecoder(r.Body).Decode(&dto)
		dto.ID = b.nextID
		b.nextID++
		b.registros[registroChave(dto.FuncionarioID, dto.Data)] = &dto
		w.WriteHeader(http.StatusCreated)
		writeData(w, dto)

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/ponto-eletronico/registros/"):
		var dto v1.RegistroPontoDTO
		json.NewDecoder(r.Body).Decode(&dto)
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/ponto-eletronico/registros/"))
		dto.ID = id
		b.registros[registroChave(dto.FuncionarioID, dto.Data)] = &dto
		writeData(w, dto)

	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/assinaturas/assinar/"):
		documentoID := strings.TrimPrefix(r.URL.Path, "/api/assinaturas/assinar/")
		b.assinados = append(b.assinados, documentoID)
		var dto v1.AssinaturaDTO
		json.NewDecoder(r.Body).Decode(&dto)
		for i, doc := range b.documentos[dto.FuncionarioID] {
			if doc.ID == documentoID {
				b.documentos[dto.FuncionarioID][i].Status = "assinado"
			}
		}
		writeData(w, map[string]string{"id": documentoID, "status": "assinado"})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/documentos/funcionario/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/documentos/funcionario/"))
		docs := b.documentos[id]
		if docs == nil {
			docs = []v1.DocumentoDTO{}
		}
		writeData(w, docs)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func (b *fakeBackend) registro(funcionarioID int, data string) *v1.RegistroPontoDTO {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registros[registroChave(funcionarioID, data)]
}

func (b *fakeBackend) setFail(fn func(r *http.Request) int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = fn
}
