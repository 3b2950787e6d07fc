// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/academics/students/dto"
	m "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

/* =========================
   List
   ========================= */

type listQueryStudent struct {
	Search  string `query:"search"` // nama / NIS / NISN
	ClassID string `query:"class_id"`
	Active  *bool  `query:"active"`
	Order   string `query:"order"` // asc|desc by name
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	var q listQueryStudent
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.StudentModel{})
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(student_name) LIKE ? OR student_nis LIKE ? OR student_nisn LIKE ?", like, "%"+s+"%", "%"+s+"%")
	}
	if q.ClassID != "" {
		if _, err := uuid.Parse(q.ClassID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("student_class_id = ?", q.ClassID)
	}
	if q.Active != nil {
		db = db.Where("student_is_active = ?", *q.Active)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	order := "ASC"
	if strings.EqualFold(q.Order, "desc") {
		order = "DESC"
	}
	p := helper.ResolvePaging(c, 20, 100)

	var rows []m.StudentModel
	if err := db.Order("student_name " + order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar siswa", d.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *StudentController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail siswa", d.FromModel(row))
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Siswa dibuat", d.FromModel(row))
}

func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var existing m.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&existing, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if err := req.ApplyPatch(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Siswa diperbarui", d.FromModel(existing))
}

func (ctl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File photo wajib dikirim")
	}
	url, err := helper.SaveUploadImage("students", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).Model(&m.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_photo_url", url)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Foto siswa diperbarui", fiber.Map{"photo_url": url})
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa dihapus", fiber.Map{"student_id": id.String()})
}
