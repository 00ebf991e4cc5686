package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/materias/dto"
	"colegio_backend/internals/features/academico/materias/model"
	helper "colegio_backend/internals/helpers"
)

type MateriaController struct {
	DB *gorm.DB
}

func NewMateriaController(db *gorm.DB) *MateriaController {
	return &MateriaController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/materias
func (ctrl *MateriaController) CreateMateria(c *fiber.Ctx) error {
	var req dto.MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una materia con ese nombre")
		}
		log.Printf("[ERROR] crear materia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la materia")
	}
	return helper.JsonCreated(c, "Materia creada correctamente", dto.ToMateriaResponse(m))
}

// 🟢 GET /api/u/materias — por defecto solo activas
func (ctrl *MateriaController) GetMaterias(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MateriaModel{})
	if c.Query("incluir_inactivas") != "true" {
		q = q.Where("activo = ?", true)
	}

	var materias []model.MateriaModel
	if err := q.Order("nombre ASC").Find(&materias).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las materias")
	}
	return helper.JsonOK(c, "", dto.ToMateriaResponseList(materias))
}

// 🟡 PATCH /api/a/materias/:id — incluye baja/alta lógica vía "activo"
func (ctrl *MateriaController) UpdateMateria(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var materia model.MateriaModel
	if err := ctrl.DB.First(&materia, "materia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materia no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la materia")
	}

	var req dto.UpdateMateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Nombre != nil {
		updates["nombre"] = *req.Nombre
	}
	if req.Activo != nil {
		updates["activo"] = *req.Activo
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para actualizar")
	}

	if err := ctrl.DB.Model(&materia).Updates(updates).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una materia con ese nombre")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la materia")
	}
	return helper.JsonUpdated(c, "Materia actualizada", dto.ToMateriaResponse(&materia))
}

// 🛑 DELETE /api/a/materias/:id
func (ctrl *MateriaController) DeleteMateria(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.Delete(&model.MateriaModel{}, "materia_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la materia")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Materia no encontrada")
	}
	return helper.JsonDeleted(c, "Materia eliminada", nil)
}
