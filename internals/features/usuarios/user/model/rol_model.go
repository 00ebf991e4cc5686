package model

type RolModel struct {
	RolID  int64  `gorm:"column:rol_id;primaryKey;autoIncrement" json:"-"`
	Nombre string `gorm:"column:nombre;type:varchar(30);uniqueIndex;not null" json:"nombre"`
}

func (RolModel) TableName() string {
	return "roles"
}
