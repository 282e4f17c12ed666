package handler

import (
	"encoding/json"
	"net/http"

	"carenow/internal/delivery/dto"
	"carenow/internal/delivery/http/middleware"
	"carenow/internal/usecase"
	"carenow/pkg/response"
	"carenow/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        usecase.AuthUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
		validator:          validator,
	}
}

// Book creates a pending appointment for the authenticated patient. The
// patient's display fields are resolved from the current profile so they can
// be denormalized onto the appointment.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patient, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		response.Unauthorized(w, "Invalid session")
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), patient, &req)
	if err != nil {
		switch err {
		case usecase.ErrBackendNotConfigured:
			response.ServiceUnavailable(w, err.Error())
		case usecase.ErrDoctorNotFound, usecase.ErrDoctorUnavailable,
			usecase.ErrPastAppointment, usecase.ErrReasonTooShort,
			usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to book appointment. Please try again.")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully! We will contact you soon.", appointment)
}

// ListMine returns the authenticated patient's appointments, newest first.
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to load appointments.")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListAll returns every appointment for review, optionally filtered by the
// status query parameter.
func (h *AppointmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	appointments, err := h.appointmentUsecase.ListForAdmin(r.Context(), statusFilter)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to load appointments.")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateStatus moves an appointment along its lifecycle.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.SetStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBackendNotConfigured:
			response.ServiceUnavailable(w, err.Error())
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrIllegalTransition:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated", appointment)
}
