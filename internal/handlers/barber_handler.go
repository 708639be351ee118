package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/httperr"
)

type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

// List returns the active barbers a customer can pick from.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context(), true)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":   b.ID,
			"name": b.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"barbers": out})
}
