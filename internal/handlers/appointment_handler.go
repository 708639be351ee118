package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/httpresp"
	"github.com/barbearia-app/booking-api/internal/middleware"
	ucAppointment "github.com/barbearia-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	listMineUC     *ucAppointment.ListMyAppointments
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listMineUC *ucAppointment.ListMyAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		listMineUC:     listMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability answers GET /api/availability?barber_id=&date=.
// A missing selection is a 400 ("no selection yet"); a day with nothing
// bookable is a 200 with an empty times list. The two must stay distinct.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberStr == "" {
		httperr.BadRequest(c, "missing_barber", "Selecione um barbeiro.")
		return
	}
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Selecione uma data.")
		return
	}

	barberID, err := strconv.ParseUint(barberStr, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
		return
	}

	times, err := h.availabilityUC.Execute(c.Request.Context(), uint(barberID), dateStr)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_date":
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case "barber_not_found":
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		default:
			httperr.Internal(c, "availability_unknown", "Não foi possível consultar os horários. Tente novamente.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": uint(barberID),
		"date":      dateStr,
		"times":     times,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Selecione barbeiro, data e horário.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "slot_taken":
			httperr.Conflict(c, code, "Este horário acabou de ser reservado. Escolha outro.")
		case "barber_not_found":
			httperr.NotFound(c, code, "Barbeiro não encontrado.")
		case "":
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento. Tente novamente.")
		default:
			httperr.BadRequest(c, code, "Horário inválido.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (mine)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.listMineUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), customerID, uint(id))
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "invalid_state", "too_late_to_cancel":
			httperr.BadRequest(c, code, "Agendamento não pode ser cancelado.")
		default:
			httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}
