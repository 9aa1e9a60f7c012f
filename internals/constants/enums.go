package constants

// Status pembayaran paket siswa
const (
	PaymentUnpaid    = "Belum Lunas"
	PaymentPaid      = "Lunas"
	PaymentCancelled = "Dibatalkan"
)

var PaymentStatuses = []string{
	PaymentUnpaid,
	PaymentPaid,
	PaymentCancelled,
}

// Status kehadiran per jadwal. Jadwal baru selalu dimulai dari
// AttendanceNotYetHeld; setelah itu transisi bebas.
const (
	AttendanceNotYetHeld    = "Belum Berlangsung"
	AttendanceSuccess       = "Success"
	AttendanceStudentExcuse = "Murid Izin"
	AttendanceTeacherExcuse = "Guru Izin"
	AttendanceReschedule    = "Reschedule"
)

var AttendanceStatuses = []string{
	AttendanceNotYetHeld,
	AttendanceSuccess,
	AttendanceStudentExcuse,
	AttendanceTeacherExcuse,
	AttendanceReschedule,
}

// Katalog paket
var (
	ValidInstruments = []string{"Piano", "Vokal", "Drum", "Gitar", "Biola", "Bass"}
	ValidDurations   = []int{30, 45, 60}
)

func IsValidPaymentStatus(s string) bool {
	return containsString(PaymentStatuses, s)
}

func IsValidAttendanceStatus(s string) bool {
	return containsString(AttendanceStatuses, s)
}

func IsValidInstrument(s string) bool {
	return containsString(ValidInstruments, s)
}

func IsValidDuration(d int) bool {
	for _, v := range ValidDurations {
		if v == d {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
