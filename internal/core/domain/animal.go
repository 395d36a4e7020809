package domain

import (
	"errors"
	"time"
)

var ErrAnimalNotFound = errors.New("animal not found")

// AnimalStatusActive is the default status assigned to new records.
const AnimalStatusActive = "Ativo"

// Animal is a livestock record.
type Animal struct {
	ID        string     `json:"id"`
	Code      string     `json:"codigo"`
	Kind      string     `json:"tipo"`
	Breed     string     `json:"raca"`
	BirthDate *time.Time `json:"data_nascimento,omitempty"`
	WeightKg  float64    `json:"peso"`
	Sex       string     `json:"sexo"`
	Status    string     `json:"status"`
	Notes     string     `json:"observacoes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CountByGroup is a single row of a grouped aggregate used by reports.
type CountByGroup struct {
	Group string `json:"grupo" bson:"_id"`
	Total int64  `json:"total" bson:"total"`
}
