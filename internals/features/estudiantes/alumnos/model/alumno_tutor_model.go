package model

// Tabla puente alumno ↔ tutor. El nombre viene del esquema heredado.
type AlumnoTutorModel struct {
	AlumnoID int64 `gorm:"column:alumno_id;primaryKey;autoIncrement:false" json:"-"`
	TutorID  int64 `gorm:"column:tutor_id;primaryKey;autoIncrement:false" json:"-"`
}

func (AlumnoTutorModel) TableName() string {
	return "alumno_tutor"
}
