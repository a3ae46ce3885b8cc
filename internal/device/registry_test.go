package device

import (
	"errors"
	"testing"
)

func TestNewRegistry_FromConfig(t *testing.T) {
	registry := NewRegistry(map[string]string{
		"galvo_a":      "Scanner:AB:33",
		"piezo_a":      "PiezoStage:P:34",
		"not_a_role":   "Bogus:00",
		"camera_a":     "", // empty labels are skipped
	})

	label, ok := registry.Label(RoleGalvoA)
	if !ok || label != "Scanner:AB:33" {
		t.Errorf("Label(RoleGalvoA) = %q, %v; want %q, true", label, ok, "Scanner:AB:33")
	}

	if _, ok := registry.Label(RoleCameraA); ok {
		t.Error("Label(RoleCameraA) ok = true for empty label, want false")
	}

	if len(registry.Assignments()) != 2 {
		t.Errorf("Assignments() count = %d, want 2", len(registry.Assignments()))
	}
}

func TestResolveLabel(t *testing.T) {
	registry := NewRegistry(map[string]string{
		"galvo_a": "Scanner:AB:33",
	})

	label, err := registry.ResolveLabel(RoleGalvoA)
	if err != nil {
		t.Fatalf("ResolveLabel(RoleGalvoA) error = %v", err)
	}
	if label != "Scanner:AB:33" {
		t.Errorf("ResolveLabel(RoleGalvoA) = %q, want %q", label, "Scanner:AB:33")
	}

	_, err = registry.ResolveLabel(RoleGalvoB)
	if !errors.Is(err, ErrNotAssigned) {
		t.Errorf("ResolveLabel(RoleGalvoB) error = %v, want ErrNotAssigned", err)
	}

	_, err = registry.ResolveLabel(Role("bogus"))
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("ResolveLabel(bogus) error = %v, want ErrUnknownRole", err)
	}
}

func TestAssignUnassign(t *testing.T) {
	registry := NewRegistry(nil)

	if err := registry.Assign(RolePiezoB, "PiezoStage:Q:35"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	label, ok := registry.Label(RolePiezoB)
	if !ok || label != "PiezoStage:Q:35" {
		t.Errorf("Label(RolePiezoB) = %q, %v after Assign", label, ok)
	}

	if err := registry.Unassign(RolePiezoB); err != nil {
		t.Fatalf("Unassign() error = %v", err)
	}
	if _, ok := registry.Label(RolePiezoB); ok {
		t.Error("Label(RolePiezoB) ok = true after Unassign, want false")
	}

	// Unassigning an unassigned role is a no-op
	if err := registry.Unassign(RolePiezoB); err != nil {
		t.Errorf("second Unassign() error = %v", err)
	}
}

func TestAssign_Validation(t *testing.T) {
	registry := NewRegistry(nil)

	if err := registry.Assign(Role("bogus"), "Label:00"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Assign(bogus) error = %v, want ErrUnknownRole", err)
	}
	if err := registry.Assign(RoleGalvoA, ""); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("Assign with empty label error = %v, want ErrInvalidLabel", err)
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range AllRoles() {
		if !role.IsValid() {
			t.Errorf("AllRoles() returned invalid role %q", role)
		}
	}
	if Role("bogus").IsValid() {
		t.Error(`Role("bogus").IsValid() = true, want false`)
	}
}
