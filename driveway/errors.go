package driveway

import "fmt"

// ErrDrivewayDoesNotExist is returned by Manager.SetDriveway when neither
// an id-keyed nor a name-resolved lookup finds a matching driveway.
type ErrDrivewayDoesNotExist struct {
	Key string
}

func (e *ErrDrivewayDoesNotExist) Error() string {
	return fmt.Sprintf("driveway does not exist: %s", e.Key)
}

// ErrHasConflictingDriveways is returned by Driveway.SetWay when one or
// more conflicting driveways are currently set. ConflictID names the
// first conflicting, set driveway encountered — an extension over the
// source's unit-variant error, per SPEC_FULL.md §7.
type ErrHasConflictingDriveways struct {
	ConflictID string
}

func (e *ErrHasConflictingDriveways) Error() string {
	return fmt.Sprintf("has conflicting driveways: %s is currently set", e.ConflictID)
}
