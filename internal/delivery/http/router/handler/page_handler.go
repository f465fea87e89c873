package handler

import (
	"net/http"

	"abacus/internal/delivery/http/web"

	"github.com/labstack/echo/v4"
)

// PageHandler renders the browser UI. Pages carry no data of their own;
// the scripts they load talk to the JSON API.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", web.PageData{Title: "Home"})
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", web.PageData{Title: "Log in"})
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", web.PageData{Title: "Register"})
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", web.PageData{Title: "Dashboard"})
}

func (h *PageHandler) ViewCalculation(c echo.Context) error {
	return c.Render(http.StatusOK, "view_calculation.html", web.PageData{Title: "Calculation", CalcID: c.Param("id")})
}

func (h *PageHandler) EditCalculation(c echo.Context) error {
	return c.Render(http.StatusOK, "edit_calculation.html", web.PageData{Title: "Edit calculation", CalcID: c.Param("id")})
}
