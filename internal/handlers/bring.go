package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Oklavaci/3dwebmarket/internal/whatsapp"
	"github.com/Oklavaci/3dwebmarket/views/bring"
	"github.com/Oklavaci/3dwebmarket/views/layout"
	"github.com/labstack/echo/v4"
)

type BringHandler struct {
	pages *Pages
}

func NewBringHandler(pages *Pages) *BringHandler {
	return &BringHandler{pages: pages}
}

func (h *BringHandler) render(c echo.Context, status int, data bring.FormData) error {
	page := h.pages.Page(c, "bring")
	page.Meta = page.Meta.WithTitle("Bring your own model")
	return Render(c, status, layout.Base(page, bring.Form(data)))
}

func (h *BringHandler) HandleForm(c echo.Context) error {
	return h.render(c, http.StatusOK, bring.FormData{})
}

// HandleSubmit validates the form and sends the visitor to WhatsApp with the
// composed message. format=link shows the link on the page instead.
func (h *BringHandler) HandleSubmit(c echo.Context) error {
	req := whatsapp.BringRequest{
		FullName: c.FormValue("fullName"),
		Phone:    c.FormValue("phone"),
		Notes:    c.FormValue("notes"),
	}

	if err := req.Validate(); err != nil {
		return h.render(c, http.StatusUnprocessableEntity, bring.FormData{Request: req, Error: err.Error()})
	}

	link := req.Link()
	slog.Info("bring-your-model request composed", "has_notes", req.Notes != "")

	if c.FormValue("format") == "link" {
		return h.render(c, http.StatusOK, bring.FormData{Request: req, Link: link})
	}
	return c.Redirect(http.StatusSeeOther, link)
}
