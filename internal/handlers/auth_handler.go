package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eztechpal/eztech-portal/internal/config"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/models"
	ucAuth "github.com/eztechpal/eztech-portal/internal/usecase/auth"
)

type AuthHandler struct {
	employeeLoginUC    *ucAuth.EmployeeLogin
	customerLoginUC    *ucAuth.CustomerLogin
	customerRegisterUC *ucAuth.CustomerRegister
	logoutUC           *ucAuth.Logout
	config             *config.Config
}

func NewAuthHandler(
	employeeLoginUC *ucAuth.EmployeeLogin,
	customerLoginUC *ucAuth.CustomerLogin,
	customerRegisterUC *ucAuth.CustomerRegister,
	logoutUC *ucAuth.Logout,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		employeeLoginUC:    employeeLoginUC,
		customerLoginUC:    customerLoginUC,
		customerRegisterUC: customerRegisterUC,
		logoutUC:           logoutUC,
		config:             cfg,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) EmployeeLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.employeeLoginUC.Execute(c.Request.Context(), email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAuthFailed) {
			httperr.Unauthorized(c, httperr.CodeAuthFailed,
				"Invalid credentials. Try "+h.config.AdminEmail+" with any password.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	h.respondLoggedIn(c, user, "Login successful!")
}

func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.customerLoginUC.Execute(c.Request.Context(), email, req.Password)
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case httperr.CodeAccountNotFound:
			httperr.Unauthorized(c, code, "Account not found. Please register first.")
		case httperr.CodeAuthFailed:
			httperr.Unauthorized(c, code, "Invalid credentials.")
		default:
			httperr.Internal(c, "internal_error", "Login failed.")
		}
		return
	}

	h.respondLoggedIn(c, user, "Login successful!")
}

func (h *AuthHandler) CustomerRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.customerRegisterUC.Execute(c.Request.Context(), ucAuth.RegisterCustomerInput{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Could not create the account.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create the session token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"token":   token,
		"message": "Account created successfully!",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logoutUC.Execute(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_logout", "Could not clear the session.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully!"})
}

func (h *AuthHandler) respondLoggedIn(c *gin.Context, user *models.User, message string) {
	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create the session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"token":   token,
		"message": message,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"name": user.Name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
