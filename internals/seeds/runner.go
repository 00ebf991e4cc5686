package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"colegio_backend/internals/configs"
	"colegio_backend/internals/constants"
	userModel "colegio_backend/internals/features/usuarios/user/model"
)

// RunAllSeeds deja la base utilizable: los cinco roles del sistema y, si no
// existe ningún usuario, una cuenta admin inicial. Idempotente.
func RunAllSeeds(db *gorm.DB) {
	seedRoles(db)
	seedAdminInicial(db)
}

func seedRoles(db *gorm.DB) {
	for _, nombre := range constants.AllRoles {
		rol := userModel.RolModel{Nombre: nombre}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rol).Error; err != nil {
			log.Printf("[ERROR] seed rol %s: %v", nombre, err)
		}
	}
	log.Println("✅ Roles del sistema verificados")
}

func seedAdminInicial(db *gorm.DB) {
	var total int64
	if err := db.Model(&userModel.UserModel{}).Count(&total).Error; err != nil || total > 0 {
		return
	}

	password := configs.GetEnv("ADMIN_INITIAL_PASSWORD", "cambiar.admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		Username: "admin",
		Password: string(hash),
		Activo:   true,
	}
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		var rol userModel.RolModel
		if err := tx.Where("nombre = ?", constants.RoleAdmin).First(&rol).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.RolUsuarioModel{UserID: admin.UserID, RolID: rol.RolID}).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] seed admin: %v", txErr)
		return
	}
	log.Println("✅ Usuario admin inicial creado (cambiar la contraseña)")
}
