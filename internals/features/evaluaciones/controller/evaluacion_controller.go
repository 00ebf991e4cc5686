package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"colegio_backend/internals/features/evaluaciones/dto"
	"colegio_backend/internals/features/evaluaciones/model"
	helper "colegio_backend/internals/helpers"
)

type EvaluacionController struct {
	DB *gorm.DB
}

func NewEvaluacionController(db *gorm.DB) *EvaluacionController {
	return &EvaluacionController{DB: db}
}

var validate = validator.New()

// ============== INSTANCIAS EVALUATIVAS ==============

// 🟢 POST /api/a/instancias-evaluativas
func (ctrl *EvaluacionController) CreateInstancia(c *fiber.Ctx) error {
	var req dto.CreateInstanciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha inválida")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] crear instancia evaluativa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la instancia evaluativa")
	}
	return helper.JsonCreated(c, "Instancia evaluativa creada", dto.ToInstanciaResponse(m))
}

// 🟢 GET /api/u/instancias-evaluativas?incluir_inactivos=true
func (ctrl *EvaluacionController) GetInstancias(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.InstanciaEvaluativaModel{})
	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("activo = ?", true)
	}

	var instancias []model.InstanciaEvaluativaModel
	if err := q.Order("instancia_id").Find(&instancias).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las instancias")
	}
	return helper.JsonOK(c, "", dto.ToInstanciaResponseList(instancias))
}

// 🟡 PUT /api/a/instancias-evaluativas/:id
func (ctrl *EvaluacionController) UpdateInstancia(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.UpdateInstanciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var instancia model.InstanciaEvaluativaModel
	if err := ctrl.DB.First(&instancia, "instancia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instancia evaluativa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la instancia")
	}

	updates := map[string]interface{}{}
	if req.Nombre != nil {
		updates["nombre"] = *req.Nombre
	}
	if req.Fecha != nil {
		t, err := helper.ParseFecha(*req.Fecha)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Fecha inválida")
		}
		updates["fecha"] = t
	}
	if req.Activo != nil {
		updates["activo"] = *req.Activo
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&instancia).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la instancia")
		}
	}
	return helper.JsonUpdated(c, "Instancia evaluativa actualizada", dto.ToInstanciaResponse(&instancia))
}

// ==================== NOTAS ====================

// 🟢 POST /api/d/notas — carga por lote. Nota nula elimina la fila existente;
// nota presente upsertea sobre la terna (alumno, materia, instancia).
func (ctrl *EvaluacionController) CargarNotas(c *fiber.Ctx) error {
	var req dto.CargarNotasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	materiaID, err1 := helper.ParseID(req.MateriaID)
	instanciaID, err2 := helper.ParseID(req.InstanciaID)
	cursoID, err3 := helper.ParseID(req.CursoID)
	docenteID, err4 := helper.ParseID(req.DocenteID)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "IDs inválidos")
	}

	var instancia model.InstanciaEvaluativaModel
	if err := ctrl.DB.First(&instancia, "instancia_id = ? AND activo = ?", instanciaID, true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "La instancia evaluativa no existe o está inactiva")
	}

	guardadas := 0
	eliminadas := 0
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, n := range req.Notas {
			alumnoID, err := helper.ParseID(n.AlumnoID)
			if err != nil {
				return err
			}
			if n.Nota == nil {
				res := tx.Where("alumno_id = ? AND materia_id = ? AND instancia_id = ?",
					alumnoID, materiaID, instanciaID).
					Delete(&model.DetalleInstanciaModel{})
				if res.Error != nil {
					return res.Error
				}
				eliminadas += int(res.RowsAffected)
				continue
			}
			detalle := model.DetalleInstanciaModel{
				AlumnoID:    alumnoID,
				MateriaID:   materiaID,
				InstanciaID: instanciaID,
				CursoID:     cursoID,
				DocenteID:   docenteID,
				Nota:        *n.Nota,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "alumno_id"}, {Name: "materia_id"}, {Name: "instancia_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"nota", "docente_id", "curso_id", "updated_at"}),
			}).Create(&detalle).Error; err != nil {
				return err
			}
			guardadas++
		}
		return nil
	})
	if txErr != nil {
		if strings.Contains(strings.ToLower(txErr.Error()), "foreign") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Hay alumnos o materias inexistentes en el lote")
		}
		log.Printf("[ERROR] cargar notas: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron guardar las notas")
	}

	return helper.JsonOK(c, "Notas guardadas", fiber.Map{
		"guardadas":  guardadas,
		"eliminadas": eliminadas,
	})
}

// 🟢 GET /api/u/alumnos/:id/notas
func (ctrl *EvaluacionController) GetNotasAlumno(c *fiber.Ctx) error {
	alumnoID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	q := ctrl.DB.Where("alumno_id = ?", alumnoID).
		Preload("Materia").Preload("Instancia")
	if v := c.Query("materia_id"); v != "" {
		if materiaID, err := helper.ParseID(v); err == nil {
			q = q.Where("materia_id = ?", materiaID)
		}
	}

	var notas []model.DetalleInstanciaModel
	if err := q.Order("materia_id, instancia_id").Find(&notas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las notas")
	}
	return helper.JsonOK(c, "", dto.ToNotaResponseList(notas))
}

// 🟢 GET /api/d/notas?curso_id=&materia_id=&instancia_id= — planilla del docente
func (ctrl *EvaluacionController) GetNotasCursoMateria(c *fiber.Ctx) error {
	cursoID, err := helper.ParseID(c.Query("curso_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "curso_id requerido")
	}
	materiaID, err := helper.ParseID(c.Query("materia_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "materia_id requerido")
	}

	q := ctrl.DB.Where("curso_id = ? AND materia_id = ?", cursoID, materiaID).
		Preload("Alumno.Persona").Preload("Instancia")
	if v := c.Query("instancia_id"); v != "" {
		if instanciaID, err := helper.ParseID(v); err == nil {
			q = q.Where("instancia_id = ?", instanciaID)
		}
	}

	var notas []model.DetalleInstanciaModel
	if err := q.Order("alumno_id, instancia_id").Find(&notas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las notas")
	}
	return helper.JsonOK(c, "", dto.ToNotaResponseList(notas))
}
