package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openspim/spim-core/internal/device"
	"github.com/openspim/spim-core/internal/property"
)

// roleInfo describes one rig role and its current device assignment.
type roleInfo struct {
	Role     string `json:"role"`
	Label    string `json:"label,omitempty"`
	Assigned bool   `json:"assigned"`
}

// keyInfo describes one property key and its wire-level name.
type keyInfo struct {
	ID       string `json:"id"`
	WireName string `json:"wire_name"`
}

// valueInfo describes one enumerated property value and its wire string.
type valueInfo struct {
	ID         string `json:"id"`
	WireString string `json:"wire_string"`
}

// propertyResponse is the body returned by property reads and writes.
type propertyResponse struct {
	Role  string `json:"role"`
	Label string `json:"label"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// setPropertyRequest is the body accepted by property writes.
type setPropertyRequest struct {
	Value string `json:"value"`
}

// handleListRoles returns every rig role with its current assignment.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	roles := device.AllRoles()
	out := make([]roleInfo, 0, len(roles))
	for _, role := range roles {
		label, ok := s.devices.Label(role)
		out = append(out, roleInfo{
			Role:     role.String(),
			Label:    label,
			Assigned: ok,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"roles": out})
}

// handleListKeys returns the property key catalogue.
func (s *Server) handleListKeys(w http.ResponseWriter, _ *http.Request) {
	keys := property.AllKeys()
	out := make([]keyInfo, 0, len(keys))
	for _, key := range keys {
		wire, ok := key.WireName()
		if !ok {
			continue
		}
		out = append(out, keyInfo{ID: key.String(), WireName: wire})
	}
	writeJSON(w, http.StatusOK, map[string]any{"keys": out})
}

// handleListValues returns the enumerated value catalogue.
func (s *Server) handleListValues(w http.ResponseWriter, _ *http.Request) {
	values := property.AllValues()
	out := make([]valueInfo, 0, len(values))
	for _, value := range values {
		wire, ok := value.WireString()
		if !ok {
			continue
		}
		out = append(out, valueInfo{ID: value.String(), WireString: wire})
	}
	writeJSON(w, http.StatusOK, map[string]any{"values": out})
}

// handleGetProperty reads the current wire value of one property.
func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	role, label, key, ok := s.resolvePropertyTarget(w, r)
	if !ok {
		return
	}
	if !s.accessor.Has(role, key, true) {
		writeNotFound(w, "property not supported by assigned device")
		return
	}

	writeJSON(w, http.StatusOK, propertyResponse{
		Role:  role.String(),
		Label: label,
		Key:   key.String(),
		Value: s.accessor.GetString(role, key, false),
	})
}

// handleSetProperty writes a property and returns the read-back value.
//
// The accessor never fails a write back to the caller; the response value
// reflects what the runtime actually holds after the attempt, so a
// rejected write shows up as an unchanged value.
func (s *Server) handleSetProperty(w http.ResponseWriter, r *http.Request) {
	role, label, key, ok := s.resolvePropertyTarget(w, r)
	if !ok {
		return
	}

	var req setPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Value == "" {
		writeBadRequest(w, "value is required")
		return
	}
	if !s.accessor.Has(role, key, true) {
		writeNotFound(w, "property not supported by assigned device")
		return
	}

	s.accessor.SetString(role, key, req.Value, false)

	writeJSON(w, http.StatusOK, propertyResponse{
		Role:  role.String(),
		Label: label,
		Key:   key.String(),
		Value: s.accessor.GetString(role, key, false),
	})
}

// handlePropertyExists reports whether the property is available.
//
// An unassigned role reports exists=false rather than an error, matching
// the accessor's lenient probe semantics.
func (s *Server) handlePropertyExists(w http.ResponseWriter, r *http.Request) {
	role := device.Role(chi.URLParam(r, "role"))
	if !role.IsValid() {
		writeNotFound(w, "unknown device role")
		return
	}
	key, ok := property.KeyFromID(chi.URLParam(r, "key"))
	if !ok {
		writeNotFound(w, "unknown property key")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"role":   role.String(),
		"key":    key.String(),
		"exists": s.accessor.Has(role, key, true),
	})
}

// handleRoleHistory returns recent property changes for one role.
func (s *Server) handleRoleHistory(w http.ResponseWriter, r *http.Request) {
	role := device.Role(chi.URLParam(r, "role"))
	if !role.IsValid() {
		writeNotFound(w, "unknown device role")
		return
	}
	if s.history == nil {
		writeNotFound(w, "property history is not enabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.history.GetByRole(r.Context(), role.String(), limit)
	if err != nil {
		s.logger.Error("history query failed", "role", role, "error", err)
		writeInternalError(w, "history query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"role":    role.String(),
		"entries": entries,
	})
}

// resolvePropertyTarget validates the role and key URL parameters and
// resolves the role to its runtime device label. It writes the error
// response itself and returns ok=false on failure.
func (s *Server) resolvePropertyTarget(w http.ResponseWriter, r *http.Request) (device.Role, string, property.Key, bool) {
	role := device.Role(chi.URLParam(r, "role"))
	label, err := s.devices.ResolveLabel(role)
	if err != nil {
		switch {
		case errors.Is(err, device.ErrUnknownRole):
			writeNotFound(w, "unknown device role")
		case errors.Is(err, device.ErrNotAssigned):
			writeNotFound(w, "no device assigned to role")
		default:
			writeInternalError(w, "role resolution failed")
		}
		return "", "", "", false
	}

	key, ok := property.KeyFromID(chi.URLParam(r, "key"))
	if !ok {
		writeNotFound(w, "unknown property key")
		return "", "", "", false
	}

	return role, label, key, true
}
