package service

import (
	"time"

	"gorm.io/gorm"

	"colegio_backend/internals/features/notificaciones/model"
)

// VisiblesPara arma la consulta de notificaciones vigentes para un usuario:
// activas, no expiradas, y dirigidas a su usuario o a alguno de sus roles.
func VisiblesPara(db *gorm.DB, userID int64, roles []string, ahora time.Time) *gorm.DB {
	q := db.Model(&model.NotificacionModel{}).
		Where("activa = ? AND fecha_expiracion > ?", true, ahora)
	if len(roles) > 0 {
		q = q.Where("destinatario_user_id = ? OR rol_destino IN ?", userID, roles)
	} else {
		q = q.Where("destinatario_user_id = ?", userID)
	}
	return q
}

type ResultadoLimpieza struct {
	ExpiradasEliminadas int64
	InactivasEliminadas int64
	Desactivadas        int64
}

// Limpiar ejecuta el mantenimiento de notificaciones:
//   - elimina las ya expiradas,
//   - elimina las inactivas con más de 30 días,
//   - desactiva las activas de más de 30 días que aún no expiraron.
//
// El instante de corte llega por parámetro para poder fijarlo en tests.
func Limpiar(db *gorm.DB, ahora time.Time) (ResultadoLimpieza, error) {
	var res ResultadoLimpieza
	limite := ahora.AddDate(0, 0, -30)

	r := db.Where("fecha_expiracion <= ?", ahora).Delete(&model.NotificacionModel{})
	if r.Error != nil {
		return res, r.Error
	}
	res.ExpiradasEliminadas = r.RowsAffected

	r = db.Where("activa = ? AND fecha_creacion <= ?", false, limite).Delete(&model.NotificacionModel{})
	if r.Error != nil {
		return res, r.Error
	}
	res.InactivasEliminadas = r.RowsAffected

	r = db.Model(&model.NotificacionModel{}).
		Where("activa = ? AND fecha_creacion <= ?", true, limite).
		Update("activa", false)
	if r.Error != nil {
		return res, r.Error
	}
	res.Desactivadas = r.RowsAffected

	return res, nil
}
