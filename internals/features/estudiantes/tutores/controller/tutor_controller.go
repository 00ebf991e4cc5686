package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"

	"colegio_backend/internals/features/estudiantes/tutores/dto"
	"colegio_backend/internals/features/estudiantes/tutores/model"
	helper "colegio_backend/internals/helpers"
)

type TutorController struct {
	DB *gorm.DB
}

func NewTutorController(db *gorm.DB) *TutorController {
	return &TutorController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/tutores — persona + tutor en una transacción
func (ctrl *TutorController) CreateTutor(c *fiber.Ctx) error {
	var req dto.TutorRequest
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

	var tutor model.TutorModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(persona).Error; err != nil {
			return err
		}
		tutor = model.TutorModel{PersonaID: persona.PersonaID, Activo: true}
		return tx.Create(&tutor).Error
	})
	if txErr != nil {
		if strings.Contains(strings.ToLower(txErr.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una persona con ese DNI")
		}
		log.Printf("[ERROR] crear tutor: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el tutor")
	}

	tutor.Persona = persona
	return helper.JsonCreated(c, "Tutor creado correctamente", dto.ToTutorResponse(&tutor))
}

// 🟢 GET /api/a/tutores (+ paginación)
func (ctrl *TutorController) GetTutores(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TutorModel{})
	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("activo = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los tutores")
	}

	var tutores []model.TutorModel
	if err := q.Preload("Persona").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tutores).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los tutores")
	}

	return helper.JsonList(c, "", dto.ToTutorResponseList(tutores),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/tutores/:id/alumnos — alumnos vinculados
func (ctrl *TutorController) GetAlumnosDelTutor(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var tutor model.TutorModel
	if err := ctrl.DB.First(&tutor, "tutor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tutor no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el tutor")
	}

	var alumnos []alumnoModel.AlumnoModel
	if err := ctrl.DB.
		Joins("JOIN alumno_tutor ON alumno_tutor.alumno_id = alumnos.alumno_id").
		Where("alumno_tutor.tutor_id = ?", id).
		Preload("Persona").Preload("Curso").
		Find(&alumnos).Error; err != nil {
		log.Printf("[ERROR] alumnos del tutor %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los alumnos")
	}

	type alumnoVinculado struct {
		AlumnoID string `json:"alumno_id"`
		Legajo   string `json:"legajo"`
		Nombre   string `json:"nombre"`
		Apellido string `json:"apellido"`
	}
	out := make([]alumnoVinculado, 0, len(alumnos))
	for _, a := range alumnos {
		item := alumnoVinculado{AlumnoID: helper.FormatID(a.AlumnoID), Legajo: a.Legajo}
		if a.Persona != nil {
			item.Nombre = a.Persona.Nombre
			item.Apellido = a.Persona.Apellido
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "", out)
}

// 🟡 PATCH /api/a/tutores/:id — baja lógica
func (ctrl *TutorController) UpdateTutor(c *fiber.Ctx) error {
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

	res := ctrl.DB.Model(&model.TutorModel{}).
		Where("tutor_id = ?", id).
		Update("activo", *req.Activo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el tutor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tutor no encontrado")
	}
	return helper.JsonUpdated(c, "Tutor actualizado", nil)
}
