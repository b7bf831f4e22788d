package request

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type OvertimeRequest struct {
	FuncionarioID   string  `json:"funcionario_id" binding:"required"`
	FuncionarioNome string  `json:"funcionario_nome"`
	Data            string  `json:"data" binding:"required"`
	HorasExtras     float64 `json:"horas_extras" binding:"required"`
}

func (r OvertimeRequest) ToEntity(loc *time.Location) (entities.OvertimeRecord, error) {
	day, err := parseDate(r.Data, loc)
	if err != nil {
		return entities.OvertimeRecord{}, err
	}
	if day == nil {
		return entities.OvertimeRecord{}, ErrInvalidDate
	}
	return entities.OvertimeRecord{
		FuncionarioID:   r.FuncionarioID,
		FuncionarioNome: r.FuncionarioNome,
		Data:            *day,
		HorasExtras:     r.HorasExtras,
	}, nil
}
