package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorModel "colegio_backend/internals/features/estudiantes/tutores/model"

	"colegio_backend/internals/constants"
	"colegio_backend/internals/features/estudiantes/alumnos/dto"
	"colegio_backend/internals/features/estudiantes/alumnos/model"
	helper "colegio_backend/internals/helpers"
)

type AlumnoController struct {
	DB *gorm.DB
}

func NewAlumnoController(db *gorm.DB) *AlumnoController {
	return &AlumnoController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/alumnos — persona + alumno + vínculos con tutores en una transacción
func (ctrl *AlumnoController) CreateAlumno(c *fiber.Ctx) error {
	var req dto.AlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	persona, err := req.Persona.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha de nacimiento inválida")
	}

	var cursoID *int64
	if req.CursoID != nil {
		id, err := helper.ParseID(*req.CursoID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "curso_id inválido")
		}
		cursoID = &id
	}

	var alumno model.AlumnoModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(persona).Error; err != nil {
			return err
		}
		alumno = model.AlumnoModel{
			Legajo:    req.Legajo,
			Estado:    constants.EstadoRegular,
			Activo:    true,
			CursoID:   cursoID,
			PersonaID: persona.PersonaID,
		}
		if err := tx.Create(&alumno).Error; err != nil {
			return err
		}
		for _, raw := range req.TutorIDs {
			tutorID, err := helper.ParseID(raw)
			if err != nil {
				return err
			}
			var n int64
			if err := tx.Model(&tutorModel.TutorModel{}).
				Where("tutor_id = ? AND activo = ?", tutorID, true).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Create(&model.AlumnoTutorModel{AlumnoID: alumno.AlumnoID, TutorID: tutorID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Alguno de los tutores no existe o está inactivo")
		}
		if strings.Contains(strings.ToLower(txErr.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Legajo o DNI ya registrado")
		}
		log.Printf("[ERROR] crear alumno: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el alumno")
	}

	alumno.Persona = persona
	return helper.JsonCreated(c, "Alumno creado correctamente", dto.ToAlumnoResponse(&alumno))
}

// 🟢 GET /api/u/alumnos (+ paginación, ?curso_id=, ?estado=, ?buscar=)
func (ctrl *AlumnoController) GetAlumnos(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AlumnoModel{})
	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("alumnos.activo = ?", true)
	}
	if v := c.Query("curso_id"); v != "" {
		if id, err := helper.ParseID(v); err == nil {
			q = q.Where("alumnos.curso_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("estado")); v != "" {
		q = q.Where("alumnos.estado = ?", v)
	}
	if v := strings.TrimSpace(c.Query("buscar")); v != "" {
		patron := "%" + strings.ToLower(v) + "%"
		q = q.Joins("JOIN data_personal ON data_personal.persona_id = alumnos.persona_id").
			Where("LOWER(data_personal.apellido) LIKE ? OR alumnos.legajo LIKE ?", patron, "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los alumnos")
	}

	var alumnos []model.AlumnoModel
	if err := q.Preload("Persona").Preload("Curso").
		Order("alumnos.legajo ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&alumnos).Error; err != nil {
		log.Printf("[ERROR] listar alumnos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los alumnos")
	}

	return helper.JsonList(c, "", dto.ToAlumnoResponseList(alumnos),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/alumnos/:id
func (ctrl *AlumnoController) GetAlumnoByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var alumno model.AlumnoModel
	if err := ctrl.DB.Preload("Persona").Preload("Curso").
		First(&alumno, "alumno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el alumno")
	}
	return helper.JsonOK(c, "", dto.ToAlumnoResponse(&alumno))
}

// 🟡 PATCH /api/a/alumnos/:id — estado, curso y baja lógica
func (ctrl *AlumnoController) UpdateAlumno(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var alumno model.AlumnoModel
	if err := ctrl.DB.First(&alumno, "alumno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el alumno")
	}

	var req dto.UpdateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Legajo != nil {
		alumno.Legajo = *req.Legajo
	}
	if req.Estado != nil {
		alumno.Estado = *req.Estado
	}
	if req.CursoID != nil {
		cid, err := helper.ParseID(*req.CursoID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "curso_id inválido")
		}
		alumno.CursoID = &cid
	}
	if req.Activo != nil {
		alumno.Activo = *req.Activo
	}

	if err := ctrl.DB.Save(&alumno).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Legajo ya registrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el alumno")
	}
	return helper.JsonUpdated(c, "Alumno actualizado", dto.ToAlumnoResponse(&alumno))
}

// 🟡 PUT /api/a/alumnos/:id/tutores — reemplaza el conjunto de tutores en una transacción
func (ctrl *AlumnoController) ReasignarTutores(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.ReasignarTutoresRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var alumno model.AlumnoModel
	if err := ctrl.DB.First(&alumno, "alumno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el alumno")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.AlumnoTutorModel{}, "alumno_id = ?", id).Error; err != nil {
			return err
		}
		for _, raw := range req.TutorIDs {
			tutorID, err := helper.ParseID(raw)
			if err != nil {
				return err
			}
			var n int64
			if err := tx.Model(&tutorModel.TutorModel{}).
				Where("tutor_id = ? AND activo = ?", tutorID, true).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Create(&model.AlumnoTutorModel{AlumnoID: id, TutorID: tutorID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Alguno de los tutores no existe o está inactivo")
		}
		log.Printf("[ERROR] reasignar tutores alumno %d: %v", id, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron reasignar los tutores")
	}
	return helper.JsonUpdated(c, "Tutores reasignados", nil)
}
