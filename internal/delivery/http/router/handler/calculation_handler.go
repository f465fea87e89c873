package handler

import (
	"net/http"

	"abacus/internal/delivery/http/response"
	"abacus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalculationHandler exposes the caller's calculation records.
type CalculationHandler struct {
	calcs usecase.CalculationUsecase
}

// NewCalculationHandler is the constructor for CalculationHandler, injected by Fx.
func NewCalculationHandler(calcs usecase.CalculationUsecase) *CalculationHandler {
	return &CalculationHandler{calcs: calcs}
}

// Create computes and stores a new calculation.
func (h *CalculationHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateCalculationInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	calc, err := h.calcs.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.NewCalculationResponse(calc))
}

// List returns every calculation owned by the caller, newest first.
func (h *CalculationHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	calcs, err := h.calcs.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewCalculationListResponse(calcs))
}

// Get returns one of the caller's calculations.
func (h *CalculationHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	calc, err := h.calcs.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewCalculationResponse(calc))
}

// Update replaces the inputs of one of the caller's calculations.
func (h *CalculationHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateCalculationInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	calc, err := h.calcs.Update(c.Request().Context(), user.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewCalculationResponse(calc))
}

// Delete removes one of the caller's calculations.
func (h *CalculationHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.calcs.Delete(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
