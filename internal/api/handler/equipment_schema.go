package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/domain"
)

type createEquipmentRequest struct {
	Name            string  `json:"name"         validate:"required"`
	Manufacturer    string  `json:"manufacturer" validate:"required"`
	SerialNumber    string  `json:"serialNumber" validate:"required"`
	PurchaseDate    string  `json:"purchaseDate" validate:"required"`
	MaintenanceDate *string `json:"maintenanceDate"`
	Ownership       string  `json:"ownership"    validate:"required"`
	Vendor          string  `json:"vendor"`
	RentalStart     *string `json:"rentalStart"`
	RentalEnd       *string `json:"rentalEnd"`
	RentalCost      float64 `json:"rentalCost"`
}

type updateEquipmentRequest struct {
	Name            *string  `json:"name"`
	Manufacturer    *string  `json:"manufacturer"`
	SerialNumber    *string  `json:"serialNumber"`
	PurchaseDate    *string  `json:"purchaseDate"`
	MaintenanceDate *string  `json:"maintenanceDate"`
	Ownership       *string  `json:"ownership"`
	Vendor          *string  `json:"vendor"`
	RentalStart     *string  `json:"rentalStart"`
	RentalEnd       *string  `json:"rentalEnd"`
	RentalCost      *float64 `json:"rentalCost"`
}

// EquipmentCodec binds the equipment DTOs to the generic handler. The
// rental-only fields are structurally optional here; whether they are
// required is decided by the ownership discriminator in the policy.
func EquipmentCodec() Codec[domain.Equipment] {
	return Codec[domain.Equipment]{
		DecodeCreate: func(c echo.Context) (*domain.Equipment, error) {
			var req createEquipmentRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			purchase, err := parseDate("purchaseDate", req.PurchaseDate)
			if err != nil {
				return nil, err
			}
			maintenance, err := parseDatePtr("maintenanceDate", req.MaintenanceDate)
			if err != nil {
				return nil, err
			}
			rentalStart, err := parseDatePtr("rentalStart", req.RentalStart)
			if err != nil {
				return nil, err
			}
			rentalEnd, err := parseDatePtr("rentalEnd", req.RentalEnd)
			if err != nil {
				return nil, err
			}
			return &domain.Equipment{
				Name:            req.Name,
				Manufacturer:    req.Manufacturer,
				SerialNumber:    req.SerialNumber,
				PurchaseDate:    purchase,
				MaintenanceDate: maintenance,
				Ownership:       req.Ownership,
				Vendor:          req.Vendor,
				RentalStart:     rentalStart,
				RentalEnd:       rentalEnd,
				RentalCost:      req.RentalCost,
			}, nil
		},
		DecodeUpdate: func(c echo.Context) (func(*domain.Equipment) error, error) {
			var req updateEquipmentRequest
			if err := decodeStrict(c, &req); err != nil {
				return nil, err
			}
			return func(e *domain.Equipment) error {
				if req.Name != nil {
					e.Name = *req.Name
				}
				if req.Manufacturer != nil {
					e.Manufacturer = *req.Manufacturer
				}
				if req.SerialNumber != nil {
					e.SerialNumber = *req.SerialNumber
				}
				if req.PurchaseDate != nil {
					t, err := parseDate("purchaseDate", *req.PurchaseDate)
					if err != nil {
						return err
					}
					e.PurchaseDate = t
				}
				if req.MaintenanceDate != nil {
					t, err := parseDatePtr("maintenanceDate", req.MaintenanceDate)
					if err != nil {
						return err
					}
					e.MaintenanceDate = t
				}
				if req.Ownership != nil {
					e.Ownership = *req.Ownership
				}
				if req.Vendor != nil {
					e.Vendor = *req.Vendor
				}
				if req.RentalStart != nil {
					t, err := parseDatePtr("rentalStart", req.RentalStart)
					if err != nil {
						return err
					}
					e.RentalStart = t
				}
				if req.RentalEnd != nil {
					t, err := parseDatePtr("rentalEnd", req.RentalEnd)
					if err != nil {
						return err
					}
					e.RentalEnd = t
				}
				if req.RentalCost != nil {
					e.RentalCost = *req.RentalCost
				}
				return nil
			}, nil
		},
	}
}
