package routes

import (
	"github.com/sentipay/sentipay/controllers"
	"github.com/sentipay/sentipay/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public auth routes
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.GET("/logout", controllers.LogoutUser)

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/dashboard", controllers.Dashboard)
		user.GET("/profile", controllers.Profile)

		user.GET("/wallet", controllers.GetWallet)
		user.GET("/wallet/transactions", controllers.GetWalletTransactions)

		utility := user.Group("/utility")
		{
			utility.POST("/mobile", controllers.BuyMobile)
			utility.POST("/electricity", controllers.BuyElectricity)
			utility.POST("/vouchers", controllers.BuyDigitalVoucher)
			utility.POST("/lotto", controllers.BuyLotto)
			utility.POST("/buy/:category", controllers.BuyUtility)
		}

		merchant := user.Group("/merchant")
		{
			merchant.POST("/payments", controllers.CreateMerchantPayment)
			merchant.GET("/payments", controllers.ListMerchantPayments)
			merchant.GET("/payments/:code", controllers.GetMerchantPayment)
			merchant.POST("/pay/:code", controllers.PayMerchant)
		}

		user.POST("/vouchers", controllers.CreateVoucher)
		user.GET("/vouchers", controllers.ListVouchers)
		user.GET("/vouchers/:code", controllers.GetVoucher)
		user.POST("/redeem", controllers.RedeemVoucherForm)
		user.POST("/redeem/:code", controllers.RedeemVoucher)

		marketplace := user.Group("/marketplace")
		{
			marketplace.GET("/products", controllers.ListProducts)
			marketplace.GET("/products/:id", controllers.GetProduct)
			marketplace.GET("/stores", controllers.ListStores)

			marketplace.POST("/cart/add", controllers.AddToCart)
			marketplace.GET("/cart", controllers.GetCart)
			marketplace.POST("/cart/remove/:id", controllers.RemoveFromCart)

			marketplace.POST("/checkout", controllers.Checkout)
			marketplace.GET("/orders", controllers.ListOrders)
			marketplace.GET("/orders/:id", controllers.GetOrder)
			marketplace.GET("/orders/:id/receipt", controllers.DownloadOrderReceipt)
		}
	}
}
