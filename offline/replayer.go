package offline

import (
	"errors"
	"fmt"
	"log"
	"strings"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
)

// TerminalFailure is an action the backend rejected in a way that
// retrying cannot fix. The action is removed from the queue and surfaced
// here instead.
type TerminalFailure struct {
	Action PendingAction
	Err    error
}

// Outcome summarizes one drain attempt over a queue.
type Outcome struct {
	Kind      Kind
	Attempted int
	Succeeded int
	Retained  int
	Terminal  []TerminalFailure
}

// Resumo renders the outcome as a user-facing Portuguese sentence.
func (o *Outcome) Resumo() string {
	var parts []string
	if o.Succeeded > 0 {
		parts = append(parts, fmt.Sprintf("%d sincronizada(s)", o.Succeeded))
	}
	if o.Retained > 0 {
		parts = append(parts, fmt.Sprintf("%d aguardando nova tentativa", o.Retained))
	}
	if len(o.Terminal) > 0 {
		parts = append(parts, fmt.Sprintf("%d rejeitada(s) pelo servidor", len(o.Terminal)))
	}
	if len(parts) == 0 {
		return "Nenhuma ação pendente"
	}
	return strings.Join(parts, ", ")
}

// Notifier receives the outcome of each non-empty drain attempt.
type Notifier interface {
	NotifyOutcome(outcome *Outcome)
}

// Replayer drains the pending queues against the backend, strictly in
// capture order, once connectivity returns.
type Replayer struct {
	client   *v1.Client
	queue    *Queue
	cache    *Cache
	notifier Notifier
}

func NewReplayer(client *v1.Client, queue *Queue, cache *Cache, notifier Notifier) *Replayer {
	return &Replayer{client: client, queue: queue, cache: cache, notifier: notifier}
}

// Flush replays one kind's queue. Actions are attempted oldest first.
// A transient failure keeps its action queued, in place, and replay moves
// on to the next action; a terminal rejection drops the action and
// records it in the outcome. An empty queue is a no-op and is not
// reported to the notifier.
func (r *Replayer) Flush(kind Kind) (*Outcome, error) {
	actions := r.queue.Pending(kind)
	outcome := &Outcome{Kind: kind, Attempted: len(actions)}
	if len(actions) == 0 {
		return outcome, nil
	}

	var retained []PendingAction
	for _, action := range actions {
		err := r.replay(action)
		if err == nil {
			outcome.Succeeded++
			continue
		}

		if terminal(err) {
			log.Printf("[TERMINAL] %s %s rejected: %v", kind, action.ID, err)
			outcome.Terminal = append(outcome.Terminal, TerminalFailure{Action: action, Err: err})
			continue
		}

		log.Printf("[RETRY] %s %s kept in queue: %v", kind, action.ID, err)
		retained = append(retained, action)
	}
	outcome.Retained = len(retained)

	if err := r.queue.Replace(kind, retained); err != nil {
		return outcome, fmt.Errorf("persist retained queue: %w", err)
	}

	if outcome.Succeeded > 0 {
		r.refresh(kind, actions)
	}
	if r.notifier != nil {
		r.notifier.NotifyOutcome(outcome)
	}
	return outcome, nil
}

// FlushAll drains every queue, punches before signatures.
func (r *Replayer) FlushAll() ([]*Outcome, error) {
	var outcomes []*Outcome
	for _, kind := range Kinds {
		outcome, err := r.Flush(kind)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// terminal reports whether retrying the entry can ever succeed: backend
// 4xx rejections and malformed entries are dropped, everything else is
// retained for the next drain.
func terminal(err error) bool {
	return v1.IsTerminal(err) ||
		errors.Is(err, ErrUnknownKind) ||
		errors.Is(err, ErrMissingPayload) ||
		errors.Is(err, ErrCampoInvalido)
}

func (r *Replayer) replay(action PendingAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	switch action.Kind {
	case KindPonto:
		return r.replayPonto(action.Ponto)
	case KindAssinatura:
		return r.client.Documentos.Assinar(action.Assinatura.DocumentoID, &action.Assinatura.Assinatura)
	}
	return ErrUnknownKind
}

// replayPonto resolves the punch against the backend's view of the day:
// the day may already have a record (created by an earlier replayed punch
// or from another device), in which case the punch becomes an update.
func (r *Replayer) replayPonto(payload *PontoPayload) error {
	if (&v1.RegistroPontoDTO{}).Campo(payload.Campo) == nil {
		return fmt.Errorf("%w: %q", ErrCampoInvalido, payload.Campo)
	}

	existing, err := r.client.Pontos.RegistroDoDia(payload.FuncionarioID, payload.Data)
	if err != nil {
		return err
	}

	if existing == nil {
		dto := &v1.RegistroPontoDTO{
			FuncionarioID: payload.FuncionarioID,
			Data:          payload.Data,
			Localizacao:   payload.Localizacao,
		}
		*dto.Campo(payload.Campo) = utils.Ptr(payload.Hora)
		_, err := r.client.Pontos.Create(dto)
		return err
	}

	*existing.Campo(payload.Campo) = utils.Ptr(payload.Hora)
	if payload.Localizacao != nil {
		existing.Localizacao = payload.Localizacao
	}
	_, err = r.client.Pontos.Update(existing.ID, existing)
	return err
}

// refresh replaces optimistic cache projections with the backend's
// authoritative state for every employee day / document list the drain
// touched.
func (r *Replayer) refresh(kind Kind, actions []PendingAction) {
	switch kind {
	case KindPonto:
		pontos := utils.Filter(actions, func(a PendingAction) bool { return a.Ponto != nil })
		groups := utils.GroupBy(pontos, func(a PendingAction) string {
			return fmt.Sprintf("%d:%s", a.Ponto.FuncionarioID, a.Ponto.Data)
		})
		for key, group := range groups {
			payload := group[0].Ponto
			registro, err := r.client.Pontos.RegistroDoDia(payload.FuncionarioID, payload.Data)
			if err != nil {
				log.Printf("[WARN] cache refresh failed for registros %s: %v", key, err)
				continue
			}
			r.cache.SetRegistros(payload.FuncionarioID, payload.Data, registro)
		}
	case KindAssinatura:
		assinaturas := utils.Filter(actions, func(a PendingAction) bool { return a.Assinatura != nil })
		groups := utils.GroupBy(assinaturas, func(a PendingAction) int {
			return a.Assinatura.Assinatura.FuncionarioID
		})
		for funcionarioID := range groups {
			documentos, err := r.client.Documentos.Funcionario(funcionarioID)
			if err != nil {
				log.Printf("[WARN] cache refresh failed for documentos %d: %v", funcionarioID, err)
				continue
			}
			r.cache.SetDocumentos(funcionarioID, documentos)
		}
	}
}
