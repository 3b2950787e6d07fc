// file: internals/databases/migrate.go
package database

import (
	"log"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	roomModel "sekolahku_backend/internals/features/academics/rooms/model"
	scheduleModel "sekolahku_backend/internals/features/academics/schedules/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/academics/teachers/model"
	journalModel "sekolahku_backend/internals/features/academics/teaching_journals/model"
	studentAttModel "sekolahku_backend/internals/features/attendance/student_attendance/model"
	teacherAttModel "sekolahku_backend/internals/features/attendance/teacher_attendance/model"
	examModel "sekolahku_backend/internals/features/exams/model"
	sppModel "sekolahku_backend/internals/features/finance/spp/model"
	companyModel "sekolahku_backend/internals/features/internships/companies/model"
	placementModel "sekolahku_backend/internals/features/internships/placements/model"
	queueModel "sekolahku_backend/internals/features/internships/queue/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel, termasuk
// unique index komposit yang jadi jaring pengaman dedup absensi
// dan periode SPP.
func Migrate() {
	log.Println("🗄  Menjalankan migrasi skema...")

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&roomModel.RoomModel{},
		&scheduleModel.ScheduleModel{},
		&journalModel.TeachingJournalModel{},
		&teacherAttModel.TeacherAttendanceModel{},
		&studentAttModel.StudentAttendanceModel{},
		&companyModel.CompanyModel{},
		&placementModel.PlacementModel{},
		&queueModel.QueueCounterModel{},
		&examModel.ExamModel{},
		&examModel.ExamScoreModel{},
		&sppModel.SppBillModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
