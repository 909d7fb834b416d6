package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "carrental/internal/errors"
	"carrental/internal/model"
	"carrental/internal/service"
	"carrental/internal/utils"
)

type ReservationHandler struct {
	Service *service.BookingService
}

func NewReservationHandler(svc *service.BookingService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	vehicleType, err := utils.ParseVehicleType(req.VehicleType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	period := model.ReservationPeriod{StartTime: req.StartTime, EndTime: req.EndTime}
	available := h.Service.IsRentalAvailable(req.CustomerID, vehicleType, req.PickupZip, period)
	writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	vehicleType, err := utils.ParseVehicleType(req.VehicleType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer := model.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Age:         req.Age,
	}
	period := model.ReservationPeriod{StartTime: req.StartTime, EndTime: req.EndTime}

	reservationID, err := h.Service.CreateReservation(customer, vehicleType, req.PickupZip, period)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}
	if reservationID == 0 {
		writeJSON(w, http.StatusConflict, CreateReservationResponse{
			Message: "No rental car is available for the requested period.",
		})
		return
	}
	writeJSON(w, http.StatusCreated, CreateReservationResponse{
		ReservationID: reservationID,
		Message:       "Reservation confirmed.",
	})
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}
	res, err := h.Service.GetReservationByID(id)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}
	var req UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	vehicleType, err := utils.ParseVehicleType(req.VehicleType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	period := model.ReservationPeriod{StartTime: req.StartTime, EndTime: req.EndTime}

	res, err := h.Service.UpdateReservation(id, req.FirstName, req.LastName, req.PhoneNumber, vehicleType, req.PickupZip, period)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}
	res, err := h.Service.CancelReservation(id)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func reservationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid reservation id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
