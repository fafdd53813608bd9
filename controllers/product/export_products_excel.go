package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/models"
)

// GET /api/products/export
// Streams the catalog as an xlsx workbook for the admin dashboard.
func ExportProductsExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while fetching products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build export"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"cod_art", "denumire", "valoare", "disponibil", "masa", "tip", "imageUrl"} {
			header.AddCell().SetString(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(p.ID)
			row.AddCell().SetString(p.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetString(strconv.Itoa(p.Quantity))
			if p.Mass != nil {
				row.AddCell().SetString(*p.Mass)
			} else {
				row.AddCell().SetString("")
			}
			row.AddCell().SetString(strconv.Itoa(p.Type))
			row.AddCell().SetString(p.ImageURL)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build export"})
		}
	}
}
