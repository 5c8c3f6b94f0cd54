package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

// GET /api/products/export-excel
// Streams the restaurant's catalog with its sales counters as an xlsx
// download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var products []models.Product
		if err := db.Where("restaurant_id = ?", restaurantID).Order("position").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		categoryNames := map[uint]string{}
		var categories []models.Category
		if err := db.Where("restaurant_id = ?", restaurantID).Find(&categories).Error; err == nil {
			for _, cat := range categories {
				categoryNames[cat.ID] = cat.Name
			}
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Price", "PromoPrice",
			"Active", "Featured", "Views", "CartAdds", "Orders", "Revenue", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(categoryNames[p.CategoryID])
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.PromoPrice)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.IsFeatured)
			row.AddCell().SetValue(p.Views)
			row.AddCell().SetValue(p.CartAdds)
			row.AddCell().SetValue(p.OrdersCount)
			row.AddCell().SetValue(p.Revenue)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
