package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model/requestresponse"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
)

type RecipientHandler struct {
	ports.RecipientService
}

func NewRecipientHandler(recipientService ports.RecipientService) *RecipientHandler {
	return &RecipientHandler{recipientService}
}

// ListStaff godoc
// @Summary Staff recipients
// @Description Staff members a signing link can be filed under. Ids are integers.
// @Tags Recipients
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListStaffResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users [get]
func (h *RecipientHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	staff, err := h.RecipientService.ListStaff(ctx)
	if err != nil {
		util.HandleError(w, "Failed to load staff", http.StatusInternalServerError)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListStaffResponse{Data: requestresponse.StaffOptionsFromModel(staff)})
}

// ListClients godoc
// @Summary Client recipients
// @Description Clients a signing link can be filed under. Ids are opaque strings.
// @Tags Recipients
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListClientsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/clients [get]
func (h *RecipientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clients, err := h.RecipientService.ListClients(ctx)
	if err != nil {
		util.HandleError(w, "Failed to load clients", http.StatusInternalServerError)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListClientsResponse{Data: requestresponse.ClientOptionsFromModel(clients)})
}
