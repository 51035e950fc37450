package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/domain"
)

// Request types are deliberately separate from the domain structs so
// the wire contract stays statically shaped: unknown fields are
// rejected and server-assigned fields have no inbound spelling at all.

type createProjectRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Type        string  `json:"type"        validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	StartDate   string  `json:"startDate"   validate:"required"`
	EndDate     string  `json:"endDate"     validate:"required"`
	Status      string  `json:"status"      validate:"required"`
	Budget      float64 `json:"budget"      validate:"required"`
	Manager     string  `json:"manager"     validate:"required"`
	Description string  `json:"description"`
}

type updateProjectRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Location    *string  `json:"location"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Status      *string  `json:"status"`
	Budget      *float64 `json:"budget"`
	Manager     *string  `json:"manager"`
	Description *string  `json:"description"`
}

// ProjectCodec binds the project DTOs to the generic handler.
func ProjectCodec() Codec[domain.Project] {
	return Codec[domain.Project]{
		DecodeCreate: func(c echo.Context) (*domain.Project, error) {
			var req createProjectRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			start, err := parseDate("startDate", req.StartDate)
			if err != nil {
				return nil, err
			}
			end, err := parseDate("endDate", req.EndDate)
			if err != nil {
				return nil, err
			}
			return &domain.Project{
				Name:        req.Name,
				Type:        req.Type,
				Location:    req.Location,
				StartDate:   start,
				EndDate:     end,
				Status:      req.Status,
				Budget:      req.Budget,
				Manager:     req.Manager,
				Description: req.Description,
			}, nil
		},
		DecodeUpdate: func(c echo.Context) (func(*domain.Project) error, error) {
			var req updateProjectRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			return func(p *domain.Project) error {
				if req.Name != nil {
					p.Name = *req.Name
				}
				if req.Type != nil {
					p.Type = *req.Type
				}
				if req.Location != nil {
					p.Location = *req.Location
				}
				if req.StartDate != nil {
					t, err := parseDate("startDate", *req.StartDate)
					if err != nil {
						return err
					}
					p.StartDate = t
				}
				if req.EndDate != nil {
					t, err := parseDate("endDate", *req.EndDate)
					if err != nil {
						return err
					}
					p.EndDate = t
				}
				if req.Status != nil {
					p.Status = *req.Status
				}
				if req.Budget != nil {
					p.Budget = *req.Budget
				}
				if req.Manager != nil {
					p.Manager = *req.Manager
				}
				if req.Description != nil {
					p.Description = *req.Description
				}
				return nil
			}, nil
		},
	}
}
