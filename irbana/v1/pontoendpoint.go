package v1

import (
	"encoding/json"
	"fmt"
	"strconv"

	"irbana.com/pontosync/irbana/v1/common"
)

// RegistroPontoDTO is one day's punch record for one employee. The four
// punch fields are HH:MM strings; unset punches are omitted.
type RegistroPontoDTO struct {
	ID                     int     `json:"id,omitempty"`
	FuncionarioID          int     `json:"funcionario_id"`
	Data                   string  `json:"data"` // yyyy-MM-dd
	Entrada                *string `json:"entrada,omitempty"`
	SaidaAlmoco            *string `json:"saida_almoco,omitempty"`
	VoltaAlmoco            *string `json:"volta_almoco,omitempty"`
	Saida                  *string `json:"saida,omitempty"`
	Localizacao            *string `json:"localizacao,omitempty"`
	JustificativaAlteracao *string `json:"justificativa_alteracao,omitempty"`
}

// Campo returns a pointer to the punch field named by campo
// (entrada|saida_almoco|volta_almoco|saida), or nil for unknown names.
func (r *RegistroPontoDTO) Campo(campo string) **string {
	switch campo {
	case "entrada":
		return &r.Entrada
	case "saida_almoco":
		return &r.SaidaAlmoco
	case "volta_almoco":
		return &r.VoltaAlmoco
	case "saida":
		return &r.Saida
	}
	return nil
}

type PontoEndpoint struct {
	transport *Transport
}

// Create registers a new day record.
func (ep *PontoEndpoint) Create(dto *RegistroPontoDTO) (*RegistroPontoDTO, error) {
	resp, err := ep.transport.Post("/api/ponto-eletronico/registros", dto, nil)
	if err != nil {
		return nil, err
	}

	var result common.DataResponse[RegistroPontoDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("decode registro: %w", err)
	}
	return &result.Data, nil
}

// Update adds or corrects punches on an existing day record.
func (ep *PontoEndpoint) Update(id int, dto *RegistroPontoDTO) (*RegistroPontoDTO, error) {
	resp, err := ep.transport.Put(fmt.Sprintf("/api/ponto-eletronico/registros/%d", id), dto, nil)
	if err != nil {
		return nil, err
	}

	var result common.DataResponse[RegistroPontoDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("decode registro: %w", err)
	}
	return &result.Data, nil
}

// Registros lists the day records for an employee inside a date range,
// oldest first. inicio and fim are yyyy-MM-dd.
func (ep *PontoEndpoint) Registros(funcionarioID int, inicio, fim string) ([]RegistroPontoDTO, error) {
	resp, err := ep.transport.Get("/api/ponto-eletronico/registros", map[string]string{
		"funcionario_id": strconv.Itoa(funcionarioID),
		"data_inicio":    inicio,
		"data_fim":       fim,
	})
	if err != nil {
		return nil, err
	}

	var result common.DataResponse[[]RegistroPontoDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("decode registros: %w", err)
	}
	return result.Data, nil
}

// RegistroDoDia returns today's record for the employee, or nil when the
// day has no record yet.
func (ep *PontoEndpoint) RegistroDoDia(funcionarioID int, data string) (*RegistroPontoDTO, error) {
	registros, err := ep.Registros(funcionarioID, data, data)
	if err != nil {
		return nil, err
	}
	if len(registros) == 0 {
		return nil, nil
	}
	return &registros[0], nil
}
