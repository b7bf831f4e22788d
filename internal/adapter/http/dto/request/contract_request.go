package request

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type ContractRequest struct {
	Numero     string  `json:"numero" binding:"required"`
	Descricao  string  `json:"descricao"`
	Fornecedor string  `json:"fornecedor"`
	Valor      float64 `json:"valor"`
	DataInicio string  `json:"data_inicio"`
	DataFim    string  `json:"data_fim"`
}

func (r ContractRequest) ToEntity(loc *time.Location) (entities.Contract, error) {
	start, err := parseDate(r.DataInicio, loc)
	if err != nil {
		return entities.Contract{}, err
	}
	end, err := parseDate(r.DataFim, loc)
	if err != nil {
		return entities.Contract{}, err
	}
	return entities.Contract{
		Numero:     r.Numero,
		Descricao:  r.Descricao,
		Fornecedor: r.Fornecedor,
		Valor:      r.Valor,
		DataInicio: start,
		DataFim:    end,
	}, nil
}
