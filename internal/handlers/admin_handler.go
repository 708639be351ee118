package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/httpresp"
	"github.com/barbearia-app/booking-api/internal/middleware"
	"github.com/barbearia-app/booking-api/internal/models"
	ucAppointment "github.com/barbearia-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db        *gorm.DB
	listUC    *ucAppointment.ListAppointments
	confirmUC *ucAppointment.ConfirmAppointment
}

func NewAdminHandler(
	db *gorm.DB,
	listUC *ucAppointment.ListAppointments,
	confirmUC *ucAppointment.ConfirmAppointment,
) *AdminHandler {
	return &AdminHandler{db: db, listUC: listUC, confirmUC: confirmUC}
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var filter domain.ListFilter

	if barberStr := c.Query("barber_id"); barberStr != "" {
		barberID, err := strconv.ParseUint(barberStr, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
			return
		}
		id := uint(barberID)
		filter.BarberID = &id
	}

	if dateStr := c.Query("date"); dateStr != "" {
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		filter.Date = &dateStr
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.Status(statusStr)
		filter.Status = &status
	}

	list, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		if code := httperr.BusinessCode(err); code == "invalid_status" {
			httperr.BadRequest(c, code, "Status inválido.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

func (h *AdminHandler) ConfirmAppointment(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "invalid_state", "not_yet_confirmable":
			httperr.BadRequest(c, code, "Agendamento não pode ser confirmado.")
		default:
			httperr.Internal(c, "failed_to_confirm_appointment", "Erro ao confirmar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// BARBERS
// ======================================================

type BarberRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

func (h *AdminHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *AdminHandler) CreateBarber(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o nome do barbeiro.")
		return
	}

	barber := models.Barber{Name: req.Name, Active: true}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *AdminHandler) UpdateBarber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barbeiro inválido.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o nome do barbeiro.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	barber.Name = req.Name
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
