package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fermata_backend/internals/constants"
)

func TestValidateByRole_AdminSkipsContactFields(t *testing.T) {
	req := RegisterRequest{
		Name:     "Admin Fermata",
		Email:    "admin@fermata.id",
		Password: "rahasia123",
		Role:     constants.RoleAdmin,
	}
	assert.NoError(t, req.ValidateByRole())
}

func TestValidateByRole_StudentNeedsPhoneAndAddress(t *testing.T) {
	req := RegisterRequest{
		Name:     "Budi",
		Email:    "budi@contoh.id",
		Password: "rahasia123",
		Role:     constants.RoleStudent,
	}
	assert.Error(t, req.ValidateByRole())

	req.Phone = "08123456789"
	assert.Error(t, req.ValidateByRole(), "address masih kosong")

	req.Address = "Jl. Melati No. 3"
	assert.NoError(t, req.ValidateByRole())
}

func TestValidateByRole_TeacherNeedsInstruments(t *testing.T) {
	req := RegisterRequest{
		Name:     "Bu Sari",
		Email:    "sari@contoh.id",
		Password: "rahasia123",
		Role:     constants.RoleTeacher,
		Phone:    "08123456789",
		Address:  "Jl. Kenanga No. 7",
	}
	assert.Error(t, req.ValidateByRole())

	req.TeacherData = &TeacherData{}
	assert.Error(t, req.ValidateByRole(), "instruments kosong tetap ditolak")

	req.TeacherData.Instruments = []string{"Piano", "Vokal"}
	assert.NoError(t, req.ValidateByRole())
}
