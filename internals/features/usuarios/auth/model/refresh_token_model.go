package model

import "time"

// El refresh token nunca se guarda en claro: solo su HMAC-SHA256.
type RefreshTokenModel struct {
	RefreshTokenID int64     `gorm:"column:refresh_token_id;primaryKey;autoIncrement" json:"-"`
	UserID         int64     `gorm:"column:user_id;not null;index" json:"-"`
	Token          []byte    `gorm:"column:token;type:bytea;not null;index" json:"-"`
	ExpiresAt      time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	UserAgent      *string   `gorm:"column:user_agent;type:varchar(255)" json:"-"`
	IP             *string   `gorm:"column:ip;type:varchar(45)" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
