package handler

import (
	"time"

	"rentauth/internal/domain/entity"
	"rentauth/internal/usecase"
)

// --- Requests ---

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=128,password"`
	FirstName   string `json:"firstName" validate:"required,min=2,max=50,personname"`
	LastName    string `json:"lastName" validate:"required,min=2,max=50,personname"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	Location    string `json:"location" validate:"required,max=100"`
	Role        string `json:"role" validate:"omitempty"`

	BusinessName    string `json:"businessName" validate:"omitempty,max=100"`
	BusinessLicense string `json:"businessLicense" validate:"omitempty,max=50"`
	BusinessType    string `json:"businessType" validate:"omitempty,max=50"`
}

func (r *RegisterRequest) toInput(role entity.Role) usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:           r.Email,
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PhoneNumber:     r.PhoneNumber,
		Location:        r.Location,
		Role:            role,
		BusinessName:    r.BusinessName,
		BusinessLicense: r.BusinessLicense,
		BusinessType:    r.BusinessType,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmailRequest carries a single email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,max=128"`
}

// --- Responses ---

// AccountResponse is the public view of an account. It never carries the
// password hash or the token slot.
type AccountResponse struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	FullName      string      `json:"fullName"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Location      string      `json:"location"`
	Role          entity.Role `json:"role"`
	EmailVerified bool        `json:"emailVerified"`
	Enabled       bool        `json:"enabled"`
	Active        bool        `json:"active"`

	BusinessName    string `json:"businessName,omitempty"`
	BusinessLicense string `json:"businessLicense,omitempty"`
	BusinessType    string `json:"businessType,omitempty"`

	TotalRentals  int     `json:"totalRentals"`
	AverageRating float64 `json:"averageRating"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID.String(),
		Email:           account.Email,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		FullName:        account.FullName(),
		PhoneNumber:     account.PhoneNumber,
		Location:        account.Location,
		Role:            account.Role,
		EmailVerified:   account.EmailVerified,
		Enabled:         account.Enabled,
		Active:          account.Active,
		BusinessName:    account.BusinessName,
		BusinessLicense: account.BusinessLicense,
		BusinessType:    account.BusinessType,
		TotalRentals:    account.TotalRentals,
		AverageRating:   account.AverageRating,
		LastLoginAt:     account.LastLoginAt,
		CreatedAt:       account.CreatedAt,
	}
}

func newAccountResponses(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}

	return out
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Account AccountResponse `json:"account"`
	usecase.RolePresentation
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// AccountListResponse wraps a listing with its size.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Count    int               `json:"count"`
}

func newAccountListResponse(accounts []*entity.Account) AccountListResponse {
	items := newAccountResponses(accounts)

	return AccountListResponse{Accounts: items, Count: len(items)}
}
