package model

import "errors"

var (
	// ErrScheduleNotFound indica que o cronograma solicitado não existe no histórico
	ErrScheduleNotFound = errors.New("cronograma não encontrado no histórico")

	// ErrEmptyText indica texto vazio para estimativa de estresse
	ErrEmptyText = errors.New("texto para análise não pode estar vazio")
)
