package offline

import (
	"context"
	"log"
	"sync"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
)

// Agent is the device-facing entrypoint. Captures go straight to the
// backend while it is reachable; otherwise they are queued durably and
// projected onto the local cache, and replayed when the link returns.
// A capture never fails because the device is offline.
type Agent struct {
	client   *v1.Client
	monitor  *Monitor
	queue    *Queue
	cache    *Cache
	replayer *Replayer

	// drains are serialized so two online transitions cannot replay the
	// same action twice
	mu sync.Mutex
}

func NewAgent(client *v1.Client, monitor *Monitor, queue *Queue, cache *Cache, replayer *Replayer) *Agent {
	agent := &Agent{
		client:   client,
		monitor:  monitor,
		queue:    queue,
		cache:    cache,
		replayer: replayer,
	}
	monitor.OnOnline(func() {
		if _, err := agent.Sync(); err != nil {
			log.Printf("[ERROR] drain after reconnect failed: %v", err)
		}
	})
	return agent
}

// RegistrarPonto captures a punch. Online, the punch is sent
// immediately and a terminal backend rejection (geofence, validation) is
// returned to the caller so the UI can show it. Offline, or when the
// backend is unreachable mid-request, the punch is queued and the cached
// day record updated optimistically.
func (a *Agent) RegistrarPonto(payload PontoPayload) error {
	action := NewPontoAction(payload, utils.BrasiliaNow())
	if err := action.Validate(); err != nil {
		return err
	}

	if a.monitor.Online() {
		err := a.sendPonto(payload)
		if err == nil {
			return nil
		}
		if v1.IsTerminal(err) {
			return err
		}
	}

	if err := a.queue.Enqueue(action); err != nil {
		return err
	}
	return a.cache.ApplyPonto(payload)
}

// RegistrarAgora captures a punch stamped with the current Brasília
// wall clock.
func (a *Agent) RegistrarAgora(funcionarioID int, campo string, localizacao *string) error {
	agora := utils.BrasiliaNow()
	return a.RegistrarPonto(PontoPayload{
		FuncionarioID: funcionarioID,
		Data:          utils.FormatDate(agora),
		Campo:         campo,
		Hora:          utils.FormatHora(agora),
		Localizacao:   localizacao,
	})
}

// AssinarDocumento captures a document signature, with the same
// online/offline split as RegistrarPonto.
func (a *Agent) AssinarDocumento(documentoID string, dto v1.AssinaturaDTO) error {
	if a.monitor.Online() {
		err := a.client.Documentos.Assinar(documentoID, &dto)
		if err == nil {
			a.refreshDocumentos(dto.FuncionarioID)
			return nil
		}
		if v1.IsTerminal(err) {
			return err
		}
	}

	action := NewAssinaturaAction(AssinaturaPayload{
		DocumentoID: documentoID,
		Assinatura:  dto,
	}, utils.BrasiliaNow())
	if err := a.queue.Enqueue(action); err != nil {
		return err
	}
	a.cache.ApplyAssinatura(dto.FuncionarioID, documentoID)
	return nil
}

// RegistrosHoje returns today's day record for the employee: the
// backend's version when reachable, the cached projection otherwise.
func (a *Agent) RegistrosHoje(funcionarioID int) (*v1.RegistroPontoDTO, error) {
	data := utils.FormatDate(utils.BrasiliaNow())
	if a.monitor.Online() {
		registro, err := a.client.Pontos.RegistroDoDia(funcionarioID, data)
		if err == nil {
			a.cache.SetRegistros(funcionarioID, data, registro)
			return registro, nil
		}
		if v1.IsTerminal(err) {
			return nil, err
		}
	}
	return a.cache.Registros(funcionarioID, data), nil
}

// Documentos returns the employee's document list, backend first, cache
// as fallback.
func (a *Agent) Documentos(funcionarioID int) ([]v1.DocumentoDTO, error) {
	if a.monitor.Online() {
		documentos, err := a.client.Documentos.Funcionario(funcionarioID)
		if err == nil {
			a.cache.SetDocumentos(funcionarioID, documentos)
			return documentos, nil
		}
		if v1.IsTerminal(err) {
			return nil, err
		}
	}
	return a.cache.Documentos(funcionarioID), nil
}

// Pendentes reports how many actions await replay across all queues.
func (a *Agent) Pendentes() int {
	total := 0
	for _, kind := range Kinds {
		total += a.queue.Len(kind)
	}
	return total
}

// Sync drains all queues now. Safe to call from any goroutine; drains
// never overlap.
func (a *Agent) Sync() ([]*Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.replayer.FlushAll()
}

// Documento returns one of the employee's documents by id, or nil when
// no such document exists.
func (a *Agent) Documento(funcionarioID int, documentoID string) (*v1.DocumentoDTO, error) {
	documentos, err := a.Documentos(funcionarioID)
	if err != nil {
		return nil, err
	}
	return utils.Find(documentos, func(d v1.DocumentoDTO) bool { return d.ID == documentoID }), nil
}

func (a *Agent) sendPonto(payload PontoPayload) error {
	err := a.replayer.replayPonto(&payload)
	if err != nil {
		return err
	}
	registro, err := a.client.Pontos.RegistroDoDia(payload.FuncionarioID, payload.Data)
	if err == nil {
		a.cache.SetRegistros(payload.FuncionarioID, payload.Data, registro)
	}
	return nil
}

func (a *Agent) refreshDocumentos(funcionarioID int) {
	documentos, err := a.client.Documentos.Funcionario(funcionarioID)
	if err == nil {
		a.cache.SetDocumentos(funcionarioID, documentos)
	}
}

// Watch runs the connectivity monitor until ctx is cancelled. Intended
// to run in its own goroutine.
func (a *Agent) Watch(ctx context.Context) {
	a.monitor.Watch(ctx)
}
