package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/utils"
	"github.com/MKhiriev/go-house-builder/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.RegisterResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user registration")
		} else {
			log.Debug().Err(err).Msg("registration rejected")
		}
		utils.WriteJSON(w, models.RegisterResponse{Message: messageFromError(err, msgAllFieldsRequired)}, status)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{Success: true, Message: msgRegistered}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.LoginResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user login")
		} else {
			log.Debug().Err(err).Msg("login rejected")
		}
		utils.WriteJSON(w, models.LoginResponse{Message: messageFromError(err, msgLoginFieldsMissing)}, status)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Success: true, Message: msgLoginSuccessful, User: user.FullName}, http.StatusOK)
}
