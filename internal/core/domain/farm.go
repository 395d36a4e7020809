package domain

import (
	"errors"
	"time"
)

var ErrFarmNotFound = errors.New("farm not found")

// Farm is a property record.
type Farm struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Address     string    `json:"endereco"`
	City        string    `json:"municipio"`
	State       string    `json:"estado"`
	TotalArea   float64   `json:"area_total"`
	PastureArea float64   `json:"area_pastagem"`
	CapacityUA  float64   `json:"capacidade_ua"`
	Manager     string    `json:"responsavel"`
	Phone       string    `json:"telefone"`
	Email       string    `json:"email"`
	Notes       string    `json:"observacoes"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
