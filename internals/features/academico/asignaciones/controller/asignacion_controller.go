package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cursoModel "colegio_backend/internals/features/academico/cursos/model"
	docenteModel "colegio_backend/internals/features/academico/docentes/model"
	materiaModel "colegio_backend/internals/features/academico/materias/model"

	"colegio_backend/internals/features/academico/asignaciones/dto"
	"colegio_backend/internals/features/academico/asignaciones/model"
	helper "colegio_backend/internals/helpers"
)

type AsignacionController struct {
	DB *gorm.DB
}

func NewAsignacionController(db *gorm.DB) *AsignacionController {
	return &AsignacionController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/asignaciones — valida que la terna exista, esté activa y sea única
func (ctrl *AsignacionController) CreateAsignacion(c *fiber.Ctx) error {
	var req dto.AsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	docenteID, _ := helper.ParseID(req.DocenteID)
	materiaID, _ := helper.ParseID(req.MateriaID)
	cursoID, _ := helper.ParseID(req.CursoID)

	var n int64
	if err := ctrl.DB.Model(&docenteModel.DocenteModel{}).
		Where("docente_id = ? AND activo = ?", docenteID, true).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Docente inexistente o inactivo")
	}
	if err := ctrl.DB.Model(&materiaModel.MateriaModel{}).
		Where("materia_id = ? AND activo = ?", materiaID, true).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Materia inexistente o inactiva")
	}
	if err := ctrl.DB.Model(&cursoModel.CursoModel{}).
		Where("curso_id = ? AND activo = ?", cursoID, true).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Curso inexistente o inactivo")
	}

	m := &model.AsignacionModel{
		DocenteID: docenteID,
		MateriaID: materiaID,
		CursoID:   cursoID,
		Activo:    true,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Esa asignación ya existe")
		}
		log.Printf("[ERROR] crear asignación: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la asignación")
	}
	return helper.JsonCreated(c, "Asignación creada correctamente", dto.ToAsignacionResponse(m))
}

// 🟢 GET /api/u/asignaciones (?docente_id=, ?curso_id=, ?materia_id=)
func (ctrl *AsignacionController) GetAsignaciones(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AsignacionModel{}).Where("activo = ?", true)

	if v := c.Query("docente_id"); v != "" {
		if id, err := helper.ParseID(v); err == nil {
			q = q.Where("docente_id = ?", id)
		}
	}
	if v := c.Query("curso_id"); v != "" {
		if id, err := helper.ParseID(v); err == nil {
			q = q.Where("curso_id = ?", id)
		}
	}
	if v := c.Query("materia_id"); v != "" {
		if id, err := helper.ParseID(v); err == nil {
			q = q.Where("materia_id = ?", id)
		}
	}

	var asignaciones []model.AsignacionModel
	if err := q.Preload("Docente.Persona").Preload("Materia").Preload("Curso").
		Find(&asignaciones).Error; err != nil {
		log.Printf("[ERROR] listar asignaciones: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las asignaciones")
	}
	return helper.JsonOK(c, "", dto.ToAsignacionResponseList(asignaciones))
}

// 🟡 PATCH /api/a/asignaciones/:id — alta/baja lógica
func (ctrl *AsignacionController) UpdateAsignacion(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req struct {
		Activo *bool `json:"activo"`
	}
	if err := c.BodyParser(&req); err != nil || req.Activo == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	res := ctrl.DB.Model(&model.AsignacionModel{}).
		Where("asignacion_id = ?", id).
		Update("activo", *req.Activo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la asignación")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignación no encontrada")
	}
	return helper.JsonUpdated(c, "Asignación actualizada", nil)
}

// 🛑 DELETE /api/a/asignaciones/:id
func (ctrl *AsignacionController) DeleteAsignacion(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.Delete(&model.AsignacionModel{}, "asignacion_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la asignación")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignación no encontrada")
	}
	return helper.JsonDeleted(c, "Asignación eliminada", nil)
}
