package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"

	"colegio_backend/internals/features/asistencias/dto"
	"colegio_backend/internals/features/asistencias/model"
	"colegio_backend/internals/features/asistencias/service"
	helper "colegio_backend/internals/helpers"
)

type AsistenciaController struct {
	DB *gorm.DB
}

func NewAsistenciaController(db *gorm.DB) *AsistenciaController {
	return &AsistenciaController{DB: db}
}

var validate = validator.New()

// errores de la toma por curso
var (
	errAlumnoFueraDeCurso = errors.New("alumno fuera del curso")
	errTomaCerrada        = errors.New("la asistencia del curso ya fue tomada")
)

// columnas que pisa el upsert sobre la clave (alumno_id, fecha)
var upsertColumns = []string{"evento", "hora", "observaciones", "justificacion", "motivo_justificacion", "updated_at"}

// 🟢 POST /api/a/asistencias/curso — toma de asistencia de un curso completo.
//
// Todo adentro de UNA transacción: si ya hay filas para (curso, fecha), solo se
// aceptan alumnos que ya figuran en esa toma; un alumno nuevo rechaza el lote
// entero con 409 sin escribir nada. Con la toma virgen se insertan todos.
func (ctrl *AsistenciaController) TomarAsistenciaCurso(c *fiber.Ctx) error {
	var req dto.TomarAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cursoID, err := helper.ParseID(req.CursoID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "curso_id inválido")
	}
	fecha, err := helper.ParseFecha(req.Fecha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha inválida")
	}

	guardadas := make([]model.AsistenciaModel, 0, len(req.Registros))
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// alumnos activos del curso
		var idsCurso []int64
		if err := tx.Model(&alumnoModel.AlumnoModel{}).
			Where("curso_id = ? AND activo = ?", cursoID, true).
			Pluck("alumno_id", &idsCurso).Error; err != nil {
			return err
		}
		enCurso := make(map[int64]bool, len(idsCurso))
		for _, id := range idsCurso {
			enCurso[id] = true
		}

		// filas ya tomadas para ese curso/fecha
		var idsTomados []int64
		if err := tx.Model(&model.AsistenciaModel{}).
			Where("fecha = ? AND alumno_id IN ?", helper.ToDate(fecha), idsCurso).
			Pluck("alumno_id", &idsTomados).Error; err != nil {
			return err
		}
		yaTomado := make(map[int64]bool, len(idsTomados))
		for _, id := range idsTomados {
			yaTomado[id] = true
		}

		for _, reg := range req.Registros {
			m, err := reg.ToModel(req.Fecha)
			if err != nil {
				return err
			}
			if !enCurso[m.AlumnoID] {
				return errAlumnoFueraDeCurso
			}
			// toma ya cerrada: solo se upsertean alumnos que ya figuran
			if len(idsTomados) > 0 && !yaTomado[m.AlumnoID] {
				return errTomaCerrada
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "alumno_id"}, {Name: "fecha"}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			}).Create(m).Error; err != nil {
				return err
			}
			guardadas = append(guardadas, *m)
		}
		return nil
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, errTomaCerrada):
			return helper.JsonError(c, fiber.StatusConflict,
				"La asistencia de ese curso y fecha ya fue tomada; no se pueden agregar alumnos nuevos")
		case errors.Is(txErr, errAlumnoFueraDeCurso):
			return helper.JsonError(c, fiber.StatusBadRequest, "Hay alumnos que no pertenecen al curso")
		default:
			log.Printf("[ERROR] tomar asistencia curso %d: %v", cursoID, txErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la asistencia")
		}
	}

	return helper.JsonCreated(c, "Asistencia guardada", dto.ToAsistenciaResponseList(guardadas))
}

// 🟡 PATCH /api/a/asistencias — edición puntual; siempre upsertea (alumno, fecha)
// sin pasar por el control de toma cerrada.
func (ctrl *AsistenciaController) EditarAsistencia(c *fiber.Ctx) error {
	var req dto.EditarAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reg := dto.RegistroAsistencia{
		AlumnoID:            req.AlumnoID,
		Evento:              req.Evento,
		Hora:                req.Hora,
		Observaciones:       req.Observaciones,
		Justificacion:       req.Justificacion,
		MotivoJustificacion: req.MotivoJustificacion,
	}
	m, err := reg.ToModel(req.Fecha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Datos inválidos")
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "alumno_id"}, {Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(m).Error; err != nil {
		log.Printf("[ERROR] editar asistencia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la asistencia")
	}
	return helper.JsonUpdated(c, "Asistencia actualizada", dto.ToAsistenciaResponse(m))
}

// 🟢 GET /api/a/asistencias/curso?curso_id=&fecha= — toma del día
func (ctrl *AsistenciaController) GetAsistenciasCurso(c *fiber.Ctx) error {
	cursoID, err := helper.ParseID(c.Query("curso_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "curso_id requerido")
	}
	fecha, err := helper.ParseFecha(c.Query("fecha"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fecha requerida (YYYY-MM-DD)")
	}

	var filas []model.AsistenciaModel
	if err := ctrl.DB.
		Joins("JOIN alumnos ON alumnos.alumno_id = asistencias.alumno_id").
		Where("alumnos.curso_id = ? AND asistencias.fecha = ?", cursoID, helper.ToDate(fecha)).
		Preload("Alumno.Persona").
		Find(&filas).Error; err != nil {
		log.Printf("[ERROR] asistencias curso %d: %v", cursoID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las asistencias")
	}
	return helper.JsonOK(c, "", dto.ToAsistenciaResponseList(filas))
}

// 🟢 GET /api/u/alumnos/:id/asistencias?desde=&hasta=
func (ctrl *AsistenciaController) GetAsistenciasAlumno(c *fiber.Ctx) error {
	alumnoID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	q := ctrl.DB.Where("alumno_id = ?", alumnoID)
	if v := c.Query("desde"); v != "" {
		if t, err := helper.ParseFecha(v); err == nil {
			q = q.Where("fecha >= ?", helper.ToDate(t))
		}
	}
	if v := c.Query("hasta"); v != "" {
		if t, err := helper.ParseFecha(v); err == nil {
			q = q.Where("fecha <= ?", helper.ToDate(t))
		}
	}

	var filas []model.AsistenciaModel
	if err := q.Order("fecha DESC").Find(&filas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las asistencias")
	}
	return helper.JsonOK(c, "", dto.ToAsistenciaResponseList(filas))
}

// 🟢 GET /api/u/alumnos/:id/resumen-asistencias — ponderación anual
func (ctrl *AsistenciaController) GetResumenAsistencias(c *fiber.Ctx) error {
	alumnoID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var n int64
	if err := ctrl.DB.Model(&alumnoModel.AlumnoModel{}).
		Where("alumno_id = ?", alumnoID).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}

	resumen, err := service.ResumenAnual(ctrl.DB, alumnoID, time.Now())
	if err != nil {
		log.Printf("[ERROR] resumen asistencias alumno %d: %v", alumnoID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo calcular el resumen")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"alumno_id": helper.FormatID(alumnoID),
		"resumen":   resumen,
	})
}

// 🟡 PATCH /api/a/asistencias/:id/justificacion
func (ctrl *AsistenciaController) JustificarAsistencia(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.JustificarAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.AsistenciaModel{}).
		Where("asistencia_id = ?", id).
		Updates(map[string]interface{}{
			"justificacion":        req.Justificacion,
			"motivo_justificacion": req.MotivoJustificacion,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo justificar la asistencia")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asistencia no encontrada")
	}
	return helper.JsonUpdated(c, "Justificación registrada", nil)
}
