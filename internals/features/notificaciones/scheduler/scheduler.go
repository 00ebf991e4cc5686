package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"colegio_backend/internals/features/notificaciones/service"
)

// StartNotificacionesCleanupScheduler lanza la limpieza periódica de
// notificaciones en segundo plano: expiradas fuera, inactivas viejas fuera,
// activas de más de 30 días desactivadas.
func StartNotificacionesCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			res, err := service.Limpiar(db, time.Now())
			if err != nil {
				log.Printf("[ERROR] Limpieza de notificaciones falló: %v", err)
			} else {
				log.Printf("[INFO] Limpieza de notificaciones: %d expiradas, %d inactivas eliminadas, %d desactivadas",
					res.ExpiradasEliminadas, res.InactivasEliminadas, res.Desactivadas)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
