package device

// Role identifies a functional position in the rig, independent of which
// physical device fills it. The set is closed: adding a role means the
// control surfaces, the accessor, and the configuration format all learn
// about it together.
type Role string

// Known rig roles.
const (
	// RoleXYStage is the sample XY translation stage.
	RoleXYStage Role = "xy_stage"

	// RoleLowerZDrive is the lower objective Z drive.
	RoleLowerZDrive Role = "lower_z_drive"

	// RoleUpperZDrive is the upper objective Z drive.
	RoleUpperZDrive Role = "upper_z_drive"

	// RoleGalvoA is the scan-head galvo pair for imaging path A.
	RoleGalvoA Role = "galvo_a"

	// RoleGalvoB is the scan-head galvo pair for imaging path B.
	RoleGalvoB Role = "galvo_b"

	// RolePiezoA is the imaging piezo stage for path A.
	RolePiezoA Role = "piezo_a"

	// RolePiezoB is the imaging piezo stage for path B.
	RolePiezoB Role = "piezo_b"

	// RoleCameraA is the camera on imaging path A.
	RoleCameraA Role = "camera_a"

	// RoleCameraB is the camera on imaging path B.
	RoleCameraB Role = "camera_b"

	// RoleMultiCamera is the virtual multi-camera device spanning both paths.
	RoleMultiCamera Role = "multi_camera"

	// RolePLogic is the programmable logic card used for triggering.
	RolePLogic Role = "plogic"
)

// AllRoles returns every known role.
// The order is stable: stages, drives, scanners, piezos, cameras, logic.
func AllRoles() []Role {
	return []Role{
		RoleXYStage,
		RoleLowerZDrive,
		RoleUpperZDrive,
		RoleGalvoA,
		RoleGalvoB,
		RolePiezoA,
		RolePiezoB,
		RoleCameraA,
		RoleCameraB,
		RoleMultiCamera,
		RolePLogic,
	}
}

// IsValid reports whether the role is part of the known set.
func (r Role) IsValid() bool {
	switch r {
	case RoleXYStage, RoleLowerZDrive, RoleUpperZDrive,
		RoleGalvoA, RoleGalvoB, RolePiezoA, RolePiezoB,
		RoleCameraA, RoleCameraB, RoleMultiCamera, RolePLogic:
		return true
	}
	return false
}

// String returns the role id.
func (r Role) String() string {
	return string(r)
}
