// file: internals/features/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/academics/teachers/dto"
	m "sekolahku_backend/internals/features/academics/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

/* =========================
   List
   ========================= */

type listQueryTeacher struct {
	Search string `query:"search"` // nama / NIP
	Active *bool  `query:"active"`
	Order  string `query:"order"` // asc|desc by name (default asc)
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var q listQueryTeacher
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.TeacherModel{})
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(teacher_name) LIKE ? OR teacher_nip LIKE ?", like, "%"+s+"%")
	}
	if q.Active != nil {
		db = db.Where("teacher_is_active = ?", *q.Active)
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

	var rows []m.TeacherModel
	if err := db.Order("teacher_name " + order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar guru", d.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *TeacherController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail guru", d.FromModel(row))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
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
	return helper.JsonCreated(c, "Guru dibuat", d.FromModel(row))
}

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var existing m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&existing, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if err := req.ApplyPatch(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Guru diperbarui", d.FromModel(existing))
}

// UploadPhoto menerima multipart "photo", konversi WebP, simpan path-nya.
func (ctl *TeacherController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File photo wajib dikirim")
	}
	url, err := helper.SaveUploadImage("teachers", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).Model(&m.TeacherModel{}).
		Where("teacher_id = ?", id).
		Update("teacher_photo_url", url)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Foto guru diperbarui", fiber.Map{"photo_url": url})
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru dihapus", fiber.Map{"teacher_id": id.String()})
}
