package model

// Rol asignado a un usuario. CursoID solo aplica a preceptores: indica
// el curso a cargo.
type RolUsuarioModel struct {
	RolUsuarioID int64  `gorm:"column:rol_usuario_id;primaryKey;autoIncrement" json:"-"`
	UserID       int64  `gorm:"column:user_id;not null;uniqueIndex:uq_rol_usuario,priority:1" json:"-"`
	RolID        int64  `gorm:"column:rol_id;not null;uniqueIndex:uq_rol_usuario,priority:2" json:"-"`
	CursoID      *int64 `gorm:"column:curso_id;uniqueIndex:uq_rol_usuario,priority:3" json:"-"`

	Rol *RolModel `gorm:"foreignKey:RolID;references:RolID" json:"rol,omitempty"`
}

func (RolUsuarioModel) TableName() string {
	return "rol_usuario"
}
