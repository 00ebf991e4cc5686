package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/personas/dto"
	"colegio_backend/internals/features/personas/model"
	helper "colegio_backend/internals/helpers"
)

type PersonaController struct {
	DB *gorm.DB
}

func NewPersonaController(db *gorm.DB) *PersonaController {
	return &PersonaController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/personas
func (ctrl *PersonaController) CreatePersona(c *fiber.Ctx) error {
	var req dto.PersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha de nacimiento inválida")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una persona con ese DNI")
		}
		log.Printf("[ERROR] crear persona: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la persona")
	}
	return helper.JsonCreated(c, "Persona creada correctamente", dto.ToPersonaResponse(m))
}

// 🟢 GET /api/a/personas (+ paginación, ?dni=, ?apellido=, ?activo=)
func (ctrl *PersonaController) GetPersonas(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PersonaModel{})
	if dni := strings.TrimSpace(c.Query("dni")); dni != "" {
		q = q.Where("dni = ?", dni)
	}
	if ap := strings.TrimSpace(c.Query("apellido")); ap != "" {
		q = q.Where("LOWER(apellido) LIKE ?", "%"+strings.ToLower(ap)+"%")
	}
	if activo := c.Query("activo"); activo != "" {
		q = q.Where("activo = ?", activo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar las personas")
	}

	var personas []model.PersonaModel
	if err := q.Order("apellido ASC, nombre ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&personas).Error; err != nil {
		log.Printf("[ERROR] listar personas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las personas")
	}

	return helper.JsonList(c, "", dto.ToPersonaResponseList(personas),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/personas/:id
func (ctrl *PersonaController) GetPersonaByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var persona model.PersonaModel
	if err := ctrl.DB.First(&persona, "persona_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Persona no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la persona")
	}
	return helper.JsonOK(c, "", dto.ToPersonaResponse(&persona))
}

// 🟡 PATCH /api/a/personas/:id (parcial; activo=false es la baja lógica)
func (ctrl *PersonaController) UpdatePersona(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var persona model.PersonaModel
	if err := ctrl.DB.First(&persona, "persona_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Persona no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la persona")
	}

	var req dto.UpdatePersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyTo(&persona); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha de nacimiento inválida")
	}

	if err := ctrl.DB.Save(&persona).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una persona con ese DNI")
		}
		log.Printf("[ERROR] actualizar persona: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la persona")
	}
	return helper.JsonUpdated(c, "Persona actualizada", dto.ToPersonaResponse(&persona))
}

// 🛑 DELETE /api/a/personas/:id (borrado físico)
func (ctrl *PersonaController) DeletePersona(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.Delete(&model.PersonaModel{}, "persona_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] eliminar persona: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la persona")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Persona no encontrada")
	}
	return helper.JsonDeleted(c, "Persona eliminada", nil)
}
