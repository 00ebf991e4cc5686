package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/docentes/dto"
	"colegio_backend/internals/features/academico/docentes/model"
	helper "colegio_backend/internals/helpers"
)

type DocenteController struct {
	DB *gorm.DB
}

func NewDocenteController(db *gorm.DB) *DocenteController {
	return &DocenteController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/docentes — persona + docente en una transacción
func (ctrl *DocenteController) CreateDocente(c *fiber.Ctx) error {
	var req dto.DocenteRequest
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

	var docente model.DocenteModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(persona).Error; err != nil {
			return err
		}
		docente = model.DocenteModel{PersonaID: persona.PersonaID, Activo: true}
		return tx.Create(&docente).Error
	})
	if txErr != nil {
		if strings.Contains(strings.ToLower(txErr.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una persona con ese DNI")
		}
		log.Printf("[ERROR] crear docente: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el docente")
	}

	docente.Persona = persona
	return helper.JsonCreated(c, "Docente creado correctamente", dto.ToDocenteResponse(&docente))
}

// 🟢 GET /api/u/docentes (+ paginación, ?activo=)
func (ctrl *DocenteController) GetDocentes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DocenteModel{})
	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("docentes.activo = ?", true)
	}
	if ap := strings.TrimSpace(c.Query("apellido")); ap != "" {
		q = q.Joins("JOIN data_personal ON data_personal.persona_id = docentes.persona_id").
			Where("LOWER(data_personal.apellido) LIKE ?", "%"+strings.ToLower(ap)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron contar los docentes")
	}

	var docentes []model.DocenteModel
	if err := q.Preload("Persona").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&docentes).Error; err != nil {
		log.Printf("[ERROR] listar docentes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los docentes")
	}

	return helper.JsonList(c, "", dto.ToDocenteResponseList(docentes),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/docentes/:id
func (ctrl *DocenteController) GetDocenteByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var docente model.DocenteModel
	if err := ctrl.DB.Preload("Persona").First(&docente, "docente_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el docente")
	}
	return helper.JsonOK(c, "", dto.ToDocenteResponse(&docente))
}

// 🟢 GET /api/a/docentes/:id/carga-horaria — asignaciones agrupadas
func (ctrl *DocenteController) GetCargaHoraria(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.DocenteModel{}).Where("docente_id = ?", id).Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Docente no encontrado")
	}

	type fila struct {
		MateriaID int64
		Materia   string
		CursoID   int64
		Anio      int
		Division  string
		Cantidad  int64
	}
	var filas []fila
	if err := ctrl.DB.Table("asignaciones").
		Select("asignaciones.materia_id AS materia_id, materias.nombre AS materia, asignaciones.curso_id AS curso_id, cursos.anio AS anio, cursos.division AS division, COUNT(*) AS cantidad").
		Joins("JOIN materias ON materias.materia_id = asignaciones.materia_id").
		Joins("JOIN cursos ON cursos.curso_id = asignaciones.curso_id").
		Where("asignaciones.docente_id = ? AND asignaciones.activo = ?", id, true).
		Group("asignaciones.materia_id, materias.nombre, asignaciones.curso_id, cursos.anio, cursos.division").
		Scan(&filas).Error; err != nil {
		log.Printf("[ERROR] carga horaria docente %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo calcular la carga horaria")
	}

	resp := dto.CargaHorariaResponse{
		DocenteID: helper.FormatID(id),
		Detalle:   make([]dto.CargaHorariaItem, 0, len(filas)),
	}
	for _, f := range filas {
		resp.Total += f.Cantidad
		resp.Detalle = append(resp.Detalle, dto.CargaHorariaItem{
			MateriaID:    helper.FormatID(f.MateriaID),
			Materia:      f.Materia,
			CursoID:      helper.FormatID(f.CursoID),
			Curso:        fmt.Sprintf("%d° %s", f.Anio, f.Division),
			Asignaciones: f.Cantidad,
		})
	}
	return helper.JsonOK(c, "", resp)
}

// 🟡 PATCH /api/a/docentes/:id — activo y/o datos de la persona
func (ctrl *DocenteController) UpdateDocente(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var docente model.DocenteModel
	if err := ctrl.DB.Preload("Persona").First(&docente, "docente_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el docente")
	}

	var req dto.UpdateDocenteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Activo != nil {
			if err := tx.Model(&docente).Update("activo", *req.Activo).Error; err != nil {
				return err
			}
			docente.Activo = *req.Activo
		}
		if req.Persona != nil && docente.Persona != nil {
			if err := req.Persona.ApplyTo(docente.Persona); err != nil {
				return err
			}
			return tx.Save(docente.Persona).Error
		}
		return nil
	})
	if txErr != nil {
		log.Printf("[ERROR] actualizar docente: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el docente")
	}
	return helper.JsonUpdated(c, "Docente actualizado", dto.ToDocenteResponse(&docente))
}

// 🛑 DELETE /api/a/docentes/:id
func (ctrl *DocenteController) DeleteDocente(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.Delete(&model.DocenteModel{}, "docente_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el docente")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Docente no encontrado")
	}
	return helper.JsonDeleted(c, "Docente eliminado", nil)
}
