package routes

import (
	"os"

	"github.com/sentipay/sentipay/controllers"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-session-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   os.Getenv("ENV") == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("sentipay", store))

	api := router.Group("/v1")
	{
		// Public QR images, fetched by <img> tags and scanners without a session
		api.GET("/merchant/payments/:code/qrcode", controllers.MerchantPaymentQR)
		api.GET("/vouchers/:code/qrcode", controllers.VoucherQR)

		initUserRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
