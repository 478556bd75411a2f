package offline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	v1 "irbana.com/pontosync/irbana/v1"
)

// Kind names the backend operation a queued action replays against.
type Kind string

const (
	KindPonto      Kind = "ponto-registro"
	KindAssinatura Kind = "documento-assinatura"
)

// Kinds lists every queue, in replay order.
var Kinds = []Kind{KindPonto, KindAssinatura}

var (
	ErrUnknownKind    = errors.New("unknown action kind")
	ErrMissingPayload = errors.New("action payload does not match its kind")
	ErrCampoInvalido  = errors.New("unknown punch field")
)

// PontoPayload is a single punch captured while offline. Campo names
// which of the four punch slots was hit; Hora is the wall-clock HH:MM at
// capture time, not at replay time.
type PontoPayload struct {
	FuncionarioID int     `json:"funcionario_id"`
	Data          string  `json:"data"` // yyyy-MM-dd
	Campo         string  `json:"campo"`
	Hora          string  `json:"hora"`
	Localizacao   *string `json:"localizacao,omitempty"`
}

// AssinaturaPayload is a document signature captured while offline.
type AssinaturaPayload struct {
	DocumentoID string           `json:"documento_id"`
	Assinatura  v1.AssinaturaDTO `json:"assinatura"`
}

// PendingAction is one unit of work awaiting replay. Exactly one of
// Ponto and Assinatura is set, matching Kind.
type PendingAction struct {
	ID         string             `json:"id"`
	Kind       Kind               `json:"kind"`
	CapturedAt time.Time          `json:"captured_at"`
	Ponto      *PontoPayload      `json:"ponto,omitempty"`
	Assinatura *AssinaturaPayload `json:"assinatura,omitempty"`
}

// NewPontoAction wraps a punch in a queueable action.
func NewPontoAction(payload PontoPayload, capturedAt time.Time) PendingAction {
	return PendingAction{
		ID:         uuid.NewString(),
		Kind:       KindPonto,
		CapturedAt: capturedAt,
		Ponto:      &payload,
	}
}

// NewAssinaturaAction wraps a signature in a queueable action.
func NewAssinaturaAction(payload AssinaturaPayload, capturedAt time.Time) PendingAction {
	return PendingAction{
		ID:         uuid.NewString(),
		Kind:       KindAssinatura,
		CapturedAt: capturedAt,
		Assinatura: &payload,
	}
}

// Validate checks that the action's payload matches its kind and, for
// punches, names a real punch field. A corrupted persisted entry must be
// rejected here, not at the point of dereference.
func (a *PendingAction) Validate() error {
	switch a.Kind {
	case KindPonto:
		if a.Ponto == nil {
			return ErrMissingPayload
		}
		if (&v1.RegistroPontoDTO{}).Campo(a.Ponto.Campo) == nil {
			return fmt.Errorf("%w: %q", ErrCampoInvalido, a.Ponto.Campo)
		}
	case KindAssinatura:
		if a.Assinatura == nil {
			return ErrMissingPayload
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
