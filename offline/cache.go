package offline

import (
	"encoding/json"
	"fmt"
	"time"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/kv"
	"irbana.com/pontosync/utils"
)

// Cache mirrors backend reads so the UI keeps working offline. Entries
// expire after a TTL; refresh after a successful replay simply overwrites
// whatever is there, so writing the same data twice is harmless.
type Cache struct {
	store kv.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewCache(store kv.Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

type cacheEntry struct {
	ExpiresAt time.Time       `json:"expires_at"`
	Data      json.RawMessage `json:"data"`
}

func registrosKey(funcionarioID int, data string) string {
	return fmt.Sprintf("cache:registros:%d:%s", funcionarioID, data)
}

func documentosKey(funcionarioID int) string {
	return fmt.Sprintf("cache:documentos:%d", funcionarioID)
}

func (c *Cache) get(key string, out any) bool {
	raw, found, err := c.store.Get(key)
	if err != nil || !found {
		return false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return false
	}
	if c.now().After(entry.ExpiresAt) {
		c.store.Remove(key)
		return false
	}
	return json.Unmarshal(entry.Data, out) == nil
}

func (c *Cache) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cacheEntry{ExpiresAt: c.now().Add(c.ttl), Data: data})
	if err != nil {
		return err
	}
	return c.store.Set(key, raw)
}

// Registros returns the cached day record for an employee, or nil when
// nothing fresh is cached.
func (c *Cache) Registros(funcionarioID int, data string) *v1.RegistroPontoDTO {
	var registro v1.RegistroPontoDTO
	if !c.get(registrosKey(funcionarioID, data), &registro) {
		return nil
	}
	return &registro
}

// SetRegistros overwrites the cached day record with the backend's
// authoritative version.
func (c *Cache) SetRegistros(funcionarioID int, data string, registro *v1.RegistroPontoDTO) error {
	if registro == nil {
		return c.store.Remove(registrosKey(funcionarioID, data))
	}
	return c.set(registrosKey(funcionarioID, data), registro)
}

// ApplyPonto folds a punch into the cached day record so the screen
// reflects it before the backend has seen it. The next authoritative
// refresh overwrites this projection.
func (c *Cache) ApplyPonto(payload PontoPayload) error {
	registro := c.Registros(payload.FuncionarioID, payload.Data)
	if registro == nil {
		registro = &v1.RegistroPontoDTO{
			FuncionarioID: payload.FuncionarioID,
			Data:          payload.Data,
		}
	}

	campo := registro.Campo(payload.Campo)
	if campo == nil {
		return fmt.Errorf("campo de ponto desconhecido: %s", payload.Campo)
	}
	*campo = utils.Ptr(payload.Hora)
	if payload.Localizacao != nil {
		registro.Localizacao = payload.Localizacao
	}
	return c.set(registrosKey(payload.FuncionarioID, payload.Data), registro)
}

// RegistroID returns the backend ID of the cached day record, or zero
// when the cached record has never been acknowledged by the backend.
func (c *Cache) RegistroID(funcionarioID int, data string) int {
	registro := c.Registros(funcionarioID, data)
	if registro == nil {
		return 0
	}
	return registro.ID
}

// Documentos returns the cached document list for an employee.
func (c *Cache) Documentos(funcionarioID int) []v1.DocumentoDTO {
	var documentos []v1.DocumentoDTO
	if !c.get(documentosKey(funcionarioID), &documentos) {
		return nil
	}
	return documentos
}

// SetDocumentos overwrites the cached document list.
func (c *Cache) SetDocumentos(funcionarioID int, documentos []v1.DocumentoDTO) error {
	return c.set(documentosKey(funcionarioID), documentos)
}

// ApplyAssinatura marks a cached document as signed before the backend
// has confirmed the signature.
func (c *Cache) ApplyAssinatura(funcionarioID int, documentoID string) error {
	documentos := c.Documentos(funcionarioID)
	if documentos == nil {
		return nil
	}

	for i := range documentos {
		if documentos[i].ID == documentoID {
			documentos[i].Status = "assinado"
		}
	}
	return c.set(documentosKey(funcionarioID), documentos)
}
