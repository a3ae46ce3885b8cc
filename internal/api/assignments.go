package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openspim/spim-core/internal/device"
)

// assignRoleRequest is the body accepted by assignment writes.
type assignRoleRequest struct {
	Label string `json:"label"`
}

// handleAssignRole maps a role to a runtime device label.
// Used during rig commissioning.
func (s *Server) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	role := device.Role(chi.URLParam(r, "role"))

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.devices.Assign(role, req.Label); err != nil {
		switch {
		case errors.Is(err, device.ErrUnknownRole):
			writeNotFound(w, "unknown device role")
		case errors.Is(err, device.ErrInvalidLabel):
			writeBadRequest(w, "label is required")
		default:
			writeInternalError(w, "assignment failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, roleInfo{
		Role:     role.String(),
		Label:    req.Label,
		Assigned: true,
	})
}

// handleUnassignRole removes the label assignment for a role.
// Unassigning a role that has no assignment succeeds.
func (s *Server) handleUnassignRole(w http.ResponseWriter, r *http.Request) {
	role := device.Role(chi.URLParam(r, "role"))

	if err := s.devices.Unassign(role); err != nil {
		switch {
		case errors.Is(err, device.ErrUnknownRole):
			writeNotFound(w, "unknown device role")
		default:
			writeInternalError(w, "unassignment failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, roleInfo{
		Role:     role.String(),
		Assigned: false,
	})
}
