package routes

import (
	"github.com/sentipay/sentipay/controllers"
	"github.com/sentipay/sentipay/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin panel routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", controllers.AdminDashboard)
		admin.GET("/users", controllers.AdminListUsers)

		products := admin.Group("/marketplace/products")
		{
			products.GET("", controllers.AdminListProducts)
			products.POST("", controllers.AdminCreateProduct)
			products.PUT("/:id", controllers.AdminUpdateProduct)
			products.DELETE("/:id", controllers.AdminDeleteProduct)
		}

		admin.GET("/reports/transactions/export", controllers.AdminExportTransactions)
	}
}
