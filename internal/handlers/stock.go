// internal/handlers/stock.go
package handlers

import (
	"fmt"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"gorm.io/gorm"
)

// descontarStock decrements an article's stock with a conditional UPDATE so
// two concurrent sales can never take the same units. RowsAffected == 0 means
// the article is missing or the remaining stock does not cover the quantity.
func descontarStock(tx *gorm.DB, articuloID uint, cantidad int) error {
	res := tx.Model(&models.Articulo{}).
		Where("id = ? AND stock >= ?", articuloID, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	if res.Error != nil {
		return fmt.Errorf("no se pudo actualizar el stock del artículo %d", articuloID)
	}
	if res.RowsAffected == 0 {
		var articulo models.Articulo
		if err := tx.First(&articulo, articuloID).Error; err != nil {
			return fmt.Errorf("el artículo %d no existe", articuloID)
		}
		return fmt.Errorf("stock insuficiente de %q: quedan %d", articulo.Nombre, articulo.Stock)
	}
	return nil
}
