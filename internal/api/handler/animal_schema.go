package handler

import (
	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/pkg/dateutil"
)

type createAnimalRequest struct {
	Code      string  `json:"codigo" validate:"required" example:"BOV-0042"`
	Kind      string  `json:"tipo" validate:"required" example:"Bovino"`
	Breed     string  `json:"raca" example:"Nelore"`
	BirthDate string  `json:"data_nascimento" example:"15/03/2022"`
	WeightKg  float64 `json:"peso" validate:"gte=0" example:"420.5"`
	Sex       string  `json:"sexo" example:"F"`
	Status    string  `json:"status" example:"Ativo"`
	Notes     string  `json:"observacoes"`
}

type updateAnimalRequest struct {
	Code      *string  `json:"codigo"`
	Kind      *string  `json:"tipo"`
	Breed     *string  `json:"raca"`
	BirthDate *string  `json:"data_nascimento"`
	WeightKg  *float64 `json:"peso"`
	Sex       *string  `json:"sexo"`
	Status    *string  `json:"status"`
	Notes     *string  `json:"observacoes"`
}

type animalResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"codigo"`
	Kind      string  `json:"tipo"`
	Breed     string  `json:"raca"`
	BirthDate string  `json:"data_nascimento"`
	WeightKg  float64 `json:"peso"`
	Sex       string  `json:"sexo"`
	Status    string  `json:"status"`
	Notes     string  `json:"observacoes"`
}

type animalListResponse struct {
	Animals []animalResponse `json:"animais"`
	Total   int              `json:"total"`
}

type createdResponse struct {
	Message string `json:"message" example:"record created"`
	ID      string `json:"id"`
}

func toAnimalResponse(a *domain.Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Code:      a.Code,
		Kind:      a.Kind,
		Breed:     a.Breed,
		BirthDate: dateutil.Format(a.BirthDate),
		WeightKg:  a.WeightKg,
		Sex:       a.Sex,
		Status:    a.Status,
		Notes:     a.Notes,
	}
}
