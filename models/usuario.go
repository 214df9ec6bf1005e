// gymserra/models/usuario.go

package models

import "gorm.io/gorm"

// Permiso is a single capability ("alumnos_view", "ventas_create"...).
type Permiso struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Nombre      string `json:"nombre" gorm:"unique;not null"`
	Descripcion string `json:"descripcion"`
}

// Rol groups permissions. The "admin" role implicitly grants everything.
type Rol struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"unique;not null"`
	Descripcion string    `json:"descripcion"`
	Permisos    []Permiso `json:"permisos" gorm:"many2many:rol_permisos;"`
}

// Usuario is a dashboard account. Password is never serialized.
type Usuario struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	Nombre    string `json:"nombre"`
	RolID     *uint  `json:"rolId"`
	Status    string `json:"status" gorm:"default:'activo'"`
	AvatarURL string `json:"avatarUrl"`

	Rol *Rol `gorm:"foreignKey:RolID" json:"rol,omitempty"`
}
