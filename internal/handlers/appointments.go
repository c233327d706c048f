package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtour-server/internal/models"
	"medtour-server/internal/store"
	"medtour-server/internal/utils"
)

// AppointmentHandler handles booking requests and the admin order view.
type AppointmentHandler struct {
	Repo store.AppointmentRepository
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(repo store.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

// BookingRequest represents the request body for a booking. The doctor is
// not looked up: bookings for unknown doctors are stored as they are.
type BookingRequest struct {
	DoctorID    *utils.FlexInt `json:"doctor_id" binding:"required"`
	PatientName string         `json:"patient_name" binding:"required"`
	Contact     string         `json:"contact" binding:"required"`
	Date        string         `json:"date" binding:"required"`
	Symptoms    string         `json:"symptoms"`
	PaymentID   string         `json:"payment_id"`
}

// MessageResponse is the acknowledgement returned to the booking form.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateBooking handles POST /api/book.
func (h *AppointmentHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt := models.Appointment{
		DoctorID:    req.DoctorID.Int(),
		PatientName: req.PatientName,
		Contact:     req.Contact,
		Date:        req.Date,
		Symptoms:    req.Symptoms,
		PaymentID:   req.PaymentID,
		Status:      models.StatusPending,
	}

	if err := h.Repo.CreateAppointment(c.Request.Context(), &appt); err != nil {
		utils.InternalServerError(c, "Failed to create booking: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "received"})
}

// ListOrders handles GET /api/admin/orders.
func (h *AppointmentHandler) ListOrders(c *gin.Context) {
	orders, err := h.Repo.ListOrders(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch orders: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}
