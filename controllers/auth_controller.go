package controllers

import (
	"errors"
	"strings"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a new account keyed by phone number
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Phone = strings.TrimSpace(req.Phone)
	if valid, msg := utils.ValidatePhone(req.Phone); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		utils.LogError("Registration with already registered phone: %s", req.Phone)
		utils.Conflict(c, "Phone already registered", nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to check existing phone: %v", err)
		utils.InternalServerError(c, "Failed to register", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to register", nil)
		return
	}

	user := models.User{
		Phone:         req.Phone,
		Password:      hash,
		WalletBalance: 0,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.Conflict(c, "Phone already registered", nil)
		return
	}

	utils.LogInfo("Registered user ID: %d", user.ID)
	utils.Created(c, "Registration successful", gin.H{
		"id":    user.ID,
		"phone": user.Phone,
	})
}

// LoginUser verifies credentials, opens a session, and returns a token for
// API clients
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("phone = ?", strings.TrimSpace(req.Phone)).First(&user).Error; err != nil {
		utils.LogError("Login with unknown phone: %s", req.Phone)
		utils.Unauthorized(c, "Invalid login details")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Wrong password for user ID: %d", user.ID)
		utils.Unauthorized(c, "Invalid login details")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to start session", nil)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"phone":    user.Phone,
			"is_admin": user.IsAdmin,
		},
	})
}

// LogoutUser tears down the session
func LogoutUser(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("user_id")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session: %v", err)
		utils.InternalServerError(c, "Failed to logout", nil)
		return
	}
	utils.Success(c, "Logged out", nil)
}
