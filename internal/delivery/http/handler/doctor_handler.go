package handler

import (
	"net/http"

	"carenow/internal/usecase"
	"carenow/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{doctorUsecase: doctorUsecase}
}

// ListDoctors returns the doctor directory. The response's source field tells
// clients whether they are looking at live or sample data.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load doctors. Please refresh and try again.")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
