package handler

import "github.com/agrocampo/farm-system/internal/core/domain"

type createUserRequest struct {
	Name     string `json:"nome" validate:"required" example:"Maria Souza"`
	Email    string `json:"email" validate:"required,email" example:"maria@fazenda.com"`
	Password string `json:"senha" validate:"required"`
	Role     string `json:"tipo_usuario" validate:"required,oneof=admin gerente operador"`
}

type updateUserRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Role     *string `json:"tipo_usuario"`
	Password *string `json:"senha"`
}

type userListResponse struct {
	Users []*domain.User `json:"usuarios"`
	Total int            `json:"total"`
}
