package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	enrollCtl "fermata_backend/internals/features/enrollments/controller"
	authMw "fermata_backend/internals/middlewares/auth"
)

func StudentPackageRoutes(r fiber.Router, db *gorm.DB) {
	spCtl := enrollCtl.NewStudentPackageController(db)
	schCtl := enrollCtl.NewScheduleController(db)

	sp := r.Group("/student-packages", authMw.AuthMiddleware())

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("student package"), constants.AdminOnly...)
	teacherOnly := authMw.OnlyRoles(constants.RoleErrorTeacher("jadwal mengajar"), constants.TeacherOnly...)
	adminOrTeacher := authMw.OnlyRoles(constants.RoleErrorAdminOrTeacher("kehadiran"), constants.AdminOrTeacher...)

	// Listing jadwal — path statis harus terdaftar sebelum /:id
	sp.Get("/schedules/all", adminOnly, schCtl.GetAllSchedules)
	sp.Get("/schedules/teacher", teacherOnly, schCtl.GetTeacherSchedules)
	sp.Get("/schedules/student", schCtl.GetStudentSchedules)

	// Student package CRUD (admin)
	sp.Post("/", adminOnly, spCtl.Create)
	sp.Get("/", adminOnly, spCtl.GetAll)
	sp.Get("/:id", adminOnly, spCtl.GetDetail)
	sp.Delete("/:studentPackageId", adminOnly, spCtl.Delete)

	// Schedule lifecycle (admin)
	sp.Post("/:studentPackageId/schedules", adminOnly, schCtl.AddSchedule)
	sp.Put("/:studentPackageId/schedules/:scheduleId", adminOnly, schCtl.UpdateSchedule)
	sp.Delete("/:studentPackageId/schedules/:scheduleId", adminOnly, schCtl.DeleteSchedule)

	// Kehadiran: guru yang ditugaskan atau admin (ownership dicek di controller)
	sp.Put("/:studentPackageId/schedules/:scheduleId/attendance", adminOrTeacher, schCtl.UpdateAttendance)
}
