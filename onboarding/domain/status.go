package domain

// PermissionStatus is the reconciliation state of an account's deployed
// permission stack relative to the expected template.
type PermissionStatus string

const (
	// PermissionStatusCurrent - the deployed template matches the expected one.
	PermissionStatusCurrent PermissionStatus = "CURRENT"

	// PermissionStatusNeedsUpdate - the deployed template drifted from the expected one.
	PermissionStatusNeedsUpdate PermissionStatus = "NEEDSUPDATE"

	// PermissionStatusNeedsOnboard - no permission stack was deployed yet.
	PermissionStatusNeedsOnboard PermissionStatus = "NEEDSONBOARD"

	// PermissionStatusNoStackName is a legacy alias of NEEDSONBOARD kept for
	// records written by older revisions. It normalizes to NEEDSONBOARD on read.
	PermissionStatusNoStackName PermissionStatus = "NOSTACKNAME"

	// PermissionStatusPending - a stack create was initiated and is expected to
	// still be in flight. Describe failures are transient in this state.
	PermissionStatusPending PermissionStatus = "PENDING"

	// PermissionStatusErrored - the last permission check failed.
	PermissionStatusErrored PermissionStatus = "ERRORED"

	// PermissionStatusUnknown is the fallback for any unrecognized stored value.
	PermissionStatusUnknown PermissionStatus = "UNKNOWN"
)

// legacyErrored was written by an older revision alongside ERRORED.
const legacyErrored PermissionStatus = "ERROR"

// NormalizePermissionStatus maps a stored status value onto the canonical
// enumeration. Unrecognized values become UNKNOWN, never an empty string.
func NormalizePermissionStatus(v PermissionStatus) PermissionStatus {
	switch v {
	case PermissionStatusCurrent,
		PermissionStatusNeedsUpdate,
		PermissionStatusNeedsOnboard,
		PermissionStatusPending,
		PermissionStatusErrored:
		return v
	case PermissionStatusNoStackName:
		return PermissionStatusNeedsOnboard
	case legacyErrored:
		return PermissionStatusErrored
	default:
		return PermissionStatusUnknown
	}
}
