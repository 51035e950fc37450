package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/domain"
)

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
}

// UserCodec binds the user DTOs to the generic handler. The plaintext
// password only ever lives on the transient Password field; the service
// hashes it before persistence and blanks it before any response.
func UserCodec() Codec[domain.User] {
	return Codec[domain.User]{
		DecodeCreate: func(c echo.Context) (*domain.User, error) {
			var req createUserRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			return &domain.User{
				Name:     req.Name,
				Email:    req.Email,
				Password: req.Password,
				Role:     req.Role,
				Phone:    req.Phone,
			}, nil
		},
		DecodeUpdate: func(c echo.Context) (func(*domain.User) error, error) {
			var req updateUserRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			return func(u *domain.User) error {
				if req.Name != nil {
					u.Name = *req.Name
				}
				if req.Email != nil {
					u.Email = *req.Email
				}
				if req.Password != nil {
					u.Password = *req.Password
				}
				if req.Role != nil {
					u.Role = *req.Role
				}
				if req.Phone != nil {
					u.Phone = *req.Phone
				}
				return nil
			}, nil
		},
	}
}
