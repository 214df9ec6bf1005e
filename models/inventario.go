// gymserra/models/inventario.go

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Proveedor is a supplier the gym purchases stock from.
type Proveedor struct {
	gorm.Model
	RazonSocial string `json:"razonSocial" gorm:"not null"`
	RFC         string `json:"rfc"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	Direccion   string `json:"direccion"`
}

// Compra is a purchase from a supplier. Creating one increases the stock of
// every article in its detail lines.
type Compra struct {
	gorm.Model
	ProveedorID uint            `json:"proveedorId" gorm:"not null"`
	Fecha       time.Time       `json:"fecha" gorm:"not null"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	UsuarioID   *uint           `json:"usuarioId"`

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
	Detalles  []CompraDetalle `gorm:"foreignKey:CompraID" json:"detalles,omitempty"`
}

type CompraDetalle struct {
	gorm.Model
	CompraID       uint            `json:"compraId" gorm:"not null"`
	ArticuloID     uint            `json:"articuloId" gorm:"not null"`
	Cantidad       int             `json:"cantidad" gorm:"not null"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID" json:"articulo,omitempty"`
}

// Venta is a point-of-sale ticket. Creating one decreases stock and fails if
// any line would leave an article below zero.
type Venta struct {
	gorm.Model
	Fecha     time.Time       `json:"fecha" gorm:"not null"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	UsuarioID *uint           `json:"usuarioId"`

	Detalles []VentaDetalle `gorm:"foreignKey:VentaID" json:"detalles,omitempty"`
}

type VentaDetalle struct {
	gorm.Model
	VentaID        uint            `json:"ventaId" gorm:"not null"`
	ArticuloID     uint            `json:"articuloId" gorm:"not null"`
	Cantidad       int             `json:"cantidad" gorm:"not null"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID" json:"articulo,omitempty"`
}

// Ajuste is a manual stock correction, always traced to a user and a reason.
type Ajuste struct {
	gorm.Model
	ArticuloID uint      `json:"articuloId" gorm:"not null"`
	Tipo       string    `json:"tipo" gorm:"not null"` // entrada / salida
	Cantidad   int       `json:"cantidad" gorm:"not null"`
	Motivo     string    `json:"motivo" gorm:"not null"`
	Fecha      time.Time `json:"fecha" gorm:"not null"`
	UsuarioID  *uint     `json:"usuarioId"`

	Articulo *Articulo `gorm:"foreignKey:ArticuloID" json:"articulo,omitempty"`
}
