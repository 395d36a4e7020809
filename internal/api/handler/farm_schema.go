package handler

import "github.com/agrocampo/farm-system/internal/core/domain"

type createFarmRequest struct {
	Name        string  `json:"nome" validate:"required" example:"Fazenda Boa Vista"`
	Address     string  `json:"endereco"`
	City        string  `json:"municipio" example:"Cuiabá"`
	State       string  `json:"estado" example:"MT"`
	TotalArea   float64 `json:"area_total" validate:"gte=0"`
	PastureArea float64 `json:"area_pastagem" validate:"gte=0"`
	CapacityUA  float64 `json:"capacidade_ua" validate:"gte=0"`
	Manager     string  `json:"responsavel"`
	Phone       string  `json:"telefone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Notes       string  `json:"observacoes"`
}

type updateFarmRequest struct {
	Name        *string  `json:"nome"`
	Address     *string  `json:"endereco"`
	City        *string  `json:"municipio"`
	State       *string  `json:"estado"`
	TotalArea   *float64 `json:"area_total"`
	PastureArea *float64 `json:"area_pastagem"`
	CapacityUA  *float64 `json:"capacidade_ua"`
	Manager     *string  `json:"responsavel"`
	Phone       *string  `json:"telefone"`
	Email       *string  `json:"email"`
	Notes       *string  `json:"observacoes"`
	Active      *bool    `json:"ativo"`
}

type farmListResponse struct {
	Farms []*domain.Farm `json:"fazendas"`
	Total int            `json:"total"`
}
