package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/cursos/dto"
	"colegio_backend/internals/features/academico/cursos/model"
	helper "colegio_backend/internals/helpers"
)

type CursoController struct {
	DB *gorm.DB
}

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/cursos
func (ctrl *CursoController) CreateCurso(c *fiber.Ctx) error {
	var req dto.CursoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe ese curso (año y división)")
		}
		log.Printf("[ERROR] crear curso: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el curso")
	}
	return helper.JsonCreated(c, "Curso creado correctamente", dto.ToCursoResponse(m))
}

// 🟢 GET /api/u/cursos
func (ctrl *CursoController) GetCursos(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CursoModel{})
	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("activo = ?", true)
	}

	var cursos []model.CursoModel
	if err := q.Order("anio ASC, division ASC").Find(&cursos).Error; err != nil {
		log.Printf("[ERROR] listar cursos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los cursos")
	}
	return helper.JsonOK(c, "", dto.ToCursoResponseList(cursos))
}

// 🟢 GET /api/u/cursos/:id
func (ctrl *CursoController) GetCursoByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var curso model.CursoModel
	if err := ctrl.DB.First(&curso, "curso_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}
	return helper.JsonOK(c, "", dto.ToCursoResponse(&curso))
}

// 🟡 PATCH /api/a/cursos/:id
func (ctrl *CursoController) UpdateCurso(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var curso model.CursoModel
	if err := ctrl.DB.First(&curso, "curso_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}

	var req dto.UpdateCursoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Anio != nil {
		curso.Anio = *req.Anio
	}
	if req.Division != nil {
		curso.Division = *req.Division
	}
	if req.Activo != nil {
		curso.Activo = *req.Activo
	}

	if err := ctrl.DB.Save(&curso).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe ese curso (año y división)")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el curso")
	}
	return helper.JsonUpdated(c, "Curso actualizado", dto.ToCursoResponse(&curso))
}

// 🛑 DELETE /api/a/cursos/:id
func (ctrl *CursoController) DeleteCurso(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.Delete(&model.CursoModel{}, "curso_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el curso")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	return helper.JsonDeleted(c, "Curso eliminado", nil)
}
