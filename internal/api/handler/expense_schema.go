package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/domain"
)

type createExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Amount      float64 `json:"amount"      validate:"required"`
	Date        string  `json:"date"        validate:"required"`
	Vendor      string  `json:"vendor"`
	Project     string  `json:"project"`
}

type updateExpenseRequest struct {
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Vendor      *string  `json:"vendor"`
	Project     *string  `json:"project"`
}

// ExpenseCodec binds the expense DTOs to the generic handler.
func ExpenseCodec() Codec[domain.Expense] {
	return Codec[domain.Expense]{
		DecodeCreate: func(c echo.Context) (*domain.Expense, error) {
			var req createExpenseRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			date, err := parseDate("date", req.Date)
			if err != nil {
				return nil, err
			}
			return &domain.Expense{
				Description: req.Description,
				Category:    req.Category,
				Amount:      req.Amount,
				Date:        date,
				Vendor:      req.Vendor,
				Project:     req.Project,
			}, nil
		},
		DecodeUpdate: func(c echo.Context) (func(*domain.Expense) error, error) {
			var req updateExpenseRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			return func(x *domain.Expense) error {
				if req.Description != nil {
					x.Description = *req.Description
				}
				if req.Category != nil {
					x.Category = *req.Category
				}
				if req.Amount != nil {
					x.Amount = *req.Amount
				}
				if req.Date != nil {
					t, err := parseDate("date", *req.Date)
					if err != nil {
						return err
					}
					x.Date = t
				}
				if req.Vendor != nil {
					x.Vendor = *req.Vendor
				}
				if req.Project != nil {
					x.Project = *req.Project
				}
				return nil
			}, nil
		},
	}
}
