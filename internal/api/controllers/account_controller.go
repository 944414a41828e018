package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register handles POST /api/register.
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login handles POST /api/login.
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"user_id": result.UserID,
		"name":    result.Name,
		"email":   result.Email,
		"token":   result.Token,
	})
}
