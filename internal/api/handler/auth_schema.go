package handler

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"maria@fazenda.com"`
	Password string `json:"senha" validate:"required" example:"s3cr3t"`
}

type loginResponse struct {
	Message      string `json:"message" example:"login successful"`
	Role         string `json:"user_type" example:"admin"`
	TempPassword bool   `json:"senha_temporaria" example:"false"`
}

type checkLoginResponse struct {
	LoggedIn     bool   `json:"logged_in"`
	Role         string `json:"user_type"`
	TempPassword bool   `json:"senha_temporaria"`
}

type changePasswordRequest struct {
	NewPassword     string `json:"nova_senha" validate:"required"`
	CurrentPassword string `json:"senha_atual"`
	TempFlow        bool   `json:"is_senha_temporaria"`
}

type messageResponse struct {
	Message string `json:"message" example:"ok"`
}
