package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/httpresp"
	"github.com/campusmind/guidance-scheduler/internal/middleware"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
	ucSchedule "github.com/campusmind/guidance-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucSchedule.CreateAppointment
	approveUC     *ucSchedule.ApproveAppointment
	cancelUC      *ucSchedule.CancelAppointment
	requestUC     *ucSchedule.RequestReschedule
	rescheduleUC  *ucSchedule.RescheduleAppointment
	listByDateUC  *ucSchedule.ListAppointmentsByDate
	listByMonthUC *ucSchedule.ListAppointmentsByMonth
	availUC       *ucSchedule.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucSchedule.CreateAppointment,
	approveUC *ucSchedule.ApproveAppointment,
	cancelUC *ucSchedule.CancelAppointment,
	requestUC *ucSchedule.RequestReschedule,
	rescheduleUC *ucSchedule.RescheduleAppointment,
	listByDateUC *ucSchedule.ListAppointmentsByDate,
	listByMonthUC *ucSchedule.ListAppointmentsByMonth,
	availUC *ucSchedule.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		approveUC:     approveUC,
		cancelUC:      cancelUC,
		requestUC:     requestUC,
		rescheduleUC:  rescheduleUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		availUC:       availUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StudentID   uint   `json:"student_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DurationMin int    `json:"duration_min"`
	Notes       string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DurationMin int    `json:"duration_min"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateAppointmentInput{
		CounselorID: counselorID,
		StudentID:   req.StudentID,
		Date:        req.Date,
		Time:        req.Time,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "appointment_create_failed", "Could not create appointment.")
		}
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.approveUC.Execute(c.Request.Context(), counselorID, uint(id))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "appointment_approve_failed", "Could not approve appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), counselorID, uint(id))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "appointment_cancel_failed", "Could not cancel appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) RequestReschedule(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.requestUC.Execute(c.Request.Context(), counselorID, uint(id))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "appointment_reschedule_failed", "Could not flag appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucSchedule.RescheduleAppointmentInput{
		CounselorID:   counselorID,
		AppointmentID: uint(id),
		Date:          req.Date,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "appointment_reschedule_failed", "Could not reschedule appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	date, err := parseBusinessDate(c.DefaultQuery("date", timezone.Now().Format("2006-01-02")))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), counselorID, date)
	if err != nil {
		httperr.Internal(c, "appointment_list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	now := timezone.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	if month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), counselorID, year, month)
	if err != nil {
		httperr.Internal(c, "appointment_list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	date, err := parseBusinessDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slotMinutes, _ := strconv.Atoi(c.DefaultQuery("slot_minutes", "0"))

	slots, err := h.availUC.Execute(c.Request.Context(), counselorID, date, slotMinutes)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// HELPERS
// ======================================================

func parseBusinessDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}
