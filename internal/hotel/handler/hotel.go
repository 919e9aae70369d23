package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"innkeep/internal/hotel/service"
	apperrors "innkeep/pkg/errors"
	httputil "innkeep/pkg/http"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type HotelHandler struct {
	service service.HotelService
	log     *logger.Logger
}

func NewHotelHandler(service service.HotelService, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log,
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.PUT("/api/v1/rooms/:number", h.SetRoom)
	router.GET("/api/v1/rooms", h.ListRooms)
	router.POST("/api/v1/users", h.SetUser)
	router.GET("/api/v1/users", h.ListUsers)
	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings", h.ListBookings)
}

type setRoomRequest struct {
	Type          model.RoomType `json:"room_type"`
	PricePerNight int            `json:"price_per_night"`
}

func (h *HotelHandler) SetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	number, err := strconv.Atoi(ps.ByName("number"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("room number must be an integer"))
		return
	}

	var req setRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	room, svcErr := h.service.SetRoom(r.Context(), number, req.Type, req.PricePerNight)
	if svcErr != nil {
		httputil.WriteError(w, svcErr)
		return
	}

	httputil.WriteSuccess(w, room)
}

func (h *HotelHandler) ListRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms := h.service.ListRooms(r.Context())
	httputil.WriteList(w, rooms, len(rooms))
}

func (h *HotelHandler) SetUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	created, err := h.service.SetUser(r.Context(), user.ID, user.Balance)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, created)
}

func (h *HotelHandler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users := h.service.ListUsers(r.Context())
	httputil.WriteList(w, users, len(users))
}

func (h *HotelHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.BookRoom(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *HotelHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings := h.service.ListBookings(r.Context())
	httputil.WriteList(w, bookings, len(bookings))
}
