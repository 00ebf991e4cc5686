package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"colegio_backend/internals/features/notificaciones/dto"
	"colegio_backend/internals/features/notificaciones/model"
	"colegio_backend/internals/features/notificaciones/service"
	helper "colegio_backend/internals/helpers"
)

type NotificacionController struct {
	DB *gorm.DB
}

func NewNotificacionController(db *gorm.DB) *NotificacionController {
	return &NotificacionController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/notificaciones
func (ctrl *NotificacionController) CreateNotificacion(c *fiber.Ctx) error {
	var req dto.CreateNotificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	// uno y solo uno de los destinos
	if (req.DestinatarioUserID == nil) == (req.RolDestino == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Debe indicarse destinatario_user_id o rol_destino, pero no ambos")
	}

	emisorID := helper.GetUserIDFromLocals(c)
	m, err := req.ToModel(emisorID, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "destinatario_user_id inválido")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] crear notificación: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la notificación")
	}
	return helper.JsonCreated(c, "Notificación creada", dto.ToNotificacionResponse(m))
}

// 🟢 GET /api/u/notificaciones?tag=&page=&per_page= — vigentes para el usuario,
// las más nuevas primero.
func (ctrl *NotificacionController) GetNotificaciones(c *fiber.Ctx) error {
	userID := helper.GetUserIDFromLocals(c)
	roles := helper.GetRolesFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := service.VisiblesPara(ctrl.DB, userID, roles, time.Now())
	if tag := c.Query("tag"); tag != "" {
		// solapamiento de arrays, solo Postgres
		q = q.Where("tags && ?", pq.StringArray{tag})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las notificaciones")
	}

	var notificaciones []model.NotificacionModel
	if err := q.Order("fecha_creacion DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&notificaciones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las notificaciones")
	}

	return helper.JsonList(c, "", dto.ToNotificacionResponseList(notificaciones),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/notificaciones/:id/leida — solo el destinatario (o alguien
// con el rol destino) puede marcarla.
func (ctrl *NotificacionController) MarcarLeida(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var notif model.NotificacionModel
	if err := ctrl.DB.First(&notif, "notificacion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notificación no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la notificación")
	}

	userID := helper.GetUserIDFromLocals(c)
	esDestino := notif.DestinatarioUserID != nil && *notif.DestinatarioUserID == userID
	if !esDestino && notif.RolDestino != nil {
		esDestino = helper.HasRole(c, *notif.RolDestino)
	}
	if !esDestino {
		return helper.JsonError(c, fiber.StatusForbidden, "La notificación no está dirigida a este usuario")
	}

	if err := ctrl.DB.Model(&notif).Update("leida", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo marcar la notificación")
	}
	return helper.JsonUpdated(c, "Notificación marcada como leída", nil)
}

// 🛑 POST /api/a/notificaciones/mantenimiento — corrida manual de la limpieza
func (ctrl *NotificacionController) EjecutarMantenimiento(c *fiber.Ctx) error {
	res, err := service.Limpiar(ctrl.DB, time.Now())
	if err != nil {
		log.Printf("[ERROR] mantenimiento de notificaciones: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falló el mantenimiento de notificaciones")
	}
	return helper.JsonOK(c, "Mantenimiento ejecutado", fiber.Map{
		"expiradas_eliminadas": res.ExpiradasEliminadas,
		"inactivas_eliminadas": res.InactivasEliminadas,
		"desactivadas":         res.Desactivadas,
	})
}
