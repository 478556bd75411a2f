package v1

import (
	"encoding/json"
	"fmt"

	"irbana.com/pontosync/irbana/v1/common"
)

type DocumentoDTO struct {
	ID             string           `json:"id"`
	Nome           string           `json:"nome"`
	Tipo           string           `json:"tipo"`
	Status         string           `json:"status"` // pendente | assinado | rejeitado
	DataCriacao    common.DateOnly  `json:"data_criacao"`
	DataVencimento *common.DateOnly `json:"data_vencimento,omitempty"`
	Descricao      *string          `json:"descricao,omitempty"`
	AssinaturaURL  *string          `json:"assinatura_url,omitempty"`
	FuncionarioID  int              `json:"funcionario_id"`
}

// AssinaturaDTO carries a captured signature. Assinatura is the canvas
// image as a base64 data URL; Timestamp is when the user actually signed,
// which can predate submission when the device was offline.
type AssinaturaDTO struct {
	Assinatura    string  `json:"assinatura"`
	FuncionarioID int     `json:"funcionario_id"`
	Geoloc        *string `json:"geoloc,omitempty"`
	Timestamp     string  `json:"timestamp"`
	Observacoes   *string `json:"observacoes,omitempty"`
}

type DocumentoEndpoint struct {
	transport *Transport
}

// Assinar submits a signature for the document.
func (ep *DocumentoEndpoint) Assinar(documentoID string, dto *AssinaturaDTO) error {
	_, err := ep.transport.Post(fmt.Sprintf("/api/assinaturas/assinar/%s", documentoID), dto, nil)
	return err
}

// Funcionario lists the documents assigned to an employee.
func (ep *DocumentoEndpoint) Funcionario(funcionarioID int) ([]DocumentoDTO, error) {
	resp, err := ep.transport.Get(fmt.Sprintf("/api/documentos/funcionario/%d", funcionarioID), nil)
	if err != nil {
		return nil, err
	}

	var result common.DataResponse[[]DocumentoDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("decode documentos: %w", err)
	}
	return result.Data, nil
}
