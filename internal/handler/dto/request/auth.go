package request

import (
	"hotel-booking-api/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r RegisterRequest) ToParams() commands.RegisterParams {
	return commands.RegisterParams{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToParams() commands.LoginParams {
	return commands.LoginParams{
		Email:    r.Email,
		Password: r.Password,
	}
}
