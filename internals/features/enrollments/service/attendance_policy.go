package service

import (
	"github.com/google/uuid"

	"fermata_backend/internals/constants"
)

// CanRecordAttendance: hanya admin, atau guru yang memang ditugaskan pada
// jadwal tersebut, yang boleh mencatat kehadiran.
func CanRecordAttendance(role string, callerID, assignedTeacherID uuid.UUID) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return role == constants.RoleTeacher && callerID == assignedTeacherID
}
