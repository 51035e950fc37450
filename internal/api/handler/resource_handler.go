package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/ports"
)

// Codec binds an entity's request DTOs to the generic handler.
// DecodeCreate produces a full candidate record; DecodeUpdate produces
// a merge function the service applies to the stored record.
type Codec[T any] struct {
	DecodeCreate func(c echo.Context) (*T, error)
	DecodeUpdate func(c echo.Context) (func(*T) error, error)
}

// Resource is the generic CRUD controller: one instance per entity,
// five routes, all outcomes rendered through the uniform envelope. All
// error paths return plain errors; the central HTTPErrorHandler maps
// them to statuses.
type Resource[T any] struct {
	name  string
	svc   ports.Resource[T]
	codec Codec[T]
}

func NewResource[T any](name string, svc ports.Resource[T], codec Codec[T]) *Resource[T] {
	return &Resource[T]{name: name, svc: svc, codec: codec}
}

// Register mounts the five CRUD routes under g, e.g. /api/projects.
func (h *Resource[T]) Register(g *echo.Group) {
	r := g.Group("/" + h.name)
	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

// Create handles POST /api/<resource>.
//
// @Summary      Create a record
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Candidate record"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /{resource} [post]
func (h *Resource[T]) Create(c echo.Context) error {
	rec, err := h.codec.DecodeCreate(c)
	if err != nil {
		return err
	}
	created, err := h.svc.Create(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, h.name+" record created", created)
}

// List handles GET /api/<resource>.
//
// @Summary      List all records in insertion order
// @Tags         resources
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      500  {object}  Envelope
// @Router       /{resource} [get]
func (h *Resource[T]) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []*T{}
	}
	return respond(c, http.StatusOK, h.name+" records retrieved", recs)
}

// Get handles GET /api/<resource>/:id.
//
// @Summary      Get one record by id
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /{resource}/{id} [get]
func (h *Resource[T]) Get(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, h.name+" record retrieved", rec)
}

// Update handles PUT /api/<resource>/:id.
//
// @Summary      Update a record
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Record id"
// @Param        body  body      object  true  "Fields to update"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /{resource}/{id} [put]
func (h *Resource[T]) Update(c echo.Context) error {
	apply, err := h.codec.DecodeUpdate(c)
	if err != nil {
		return err
	}
	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), apply)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, h.name+" record updated", updated)
}

// Delete handles DELETE /api/<resource>/:id.
//
// @Summary      Delete a record
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /{resource}/{id} [delete]
func (h *Resource[T]) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, h.name+" record deleted", nil)
}
