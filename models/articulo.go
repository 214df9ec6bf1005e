// gymserra/models/articulo.go

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Categoria groups articles in the store catalog.
type Categoria struct {
	gorm.Model
	Nombre      string `json:"nombre" gorm:"unique;not null"`
	Descripcion string `json:"descripcion"`
}

// UnidadMedida is the unit an article is sold in (pieza, litro, caja...).
type UnidadMedida struct {
	gorm.Model
	Nombre      string `json:"nombre" gorm:"unique;not null"`
	Abreviatura string `json:"abreviatura"`
}

// Articulo is a product in the gym's store inventory.
type Articulo struct {
	gorm.Model
	Nombre       string `json:"nombre" gorm:"index;not null"`
	CodigoBarras string `json:"codigoBarras" gorm:"unique"`
	Descripcion  string `json:"descripcion"`
	CategoriaID  *uint  `json:"categoriaId"`
	UnidadID     *uint  `json:"unidadId"`

	Stock       int `json:"stock" gorm:"default:0"`
	StockMinimo int `json:"stockMinimo" gorm:"default:5"`

	Costo     decimal.Decimal `json:"costo" gorm:"type:decimal(10,2);not null"`
	MargenPct decimal.Decimal `json:"margenPct" gorm:"type:decimal(5,2)"`
	AplicaIVA *bool           `json:"aplicaIva" gorm:"default:false"`
	// PrecioVenta defaults to the recommended price derived from
	// Costo, MargenPct and AplicaIVA when not set explicitly.
	PrecioVenta decimal.Decimal `json:"precioVenta" gorm:"type:decimal(10,2)"`

	ImagenURL string `json:"imagenUrl"`

	Categoria *Categoria    `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
	Unidad    *UnidadMedida `gorm:"foreignKey:UnidadID" json:"unidad,omitempty"`
}
