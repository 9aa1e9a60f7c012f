package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fermata_backend/internals/constants"
)

func TestCanRecordAttendance(t *testing.T) {
	assigned := uuid.New()
	other := uuid.New()

	// admin boleh, siapa pun gurunya
	assert.True(t, CanRecordAttendance(constants.RoleAdmin, other, assigned))

	// guru hanya boleh untuk jadwalnya sendiri
	assert.True(t, CanRecordAttendance(constants.RoleTeacher, assigned, assigned))
	assert.False(t, CanRecordAttendance(constants.RoleTeacher, other, assigned))

	// murid tidak pernah boleh, bahkan untuk ID yang sama
	assert.False(t, CanRecordAttendance(constants.RoleStudent, assigned, assigned))
	assert.False(t, CanRecordAttendance("", assigned, assigned))
}
