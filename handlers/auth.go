package handlers

import (
	"net/http"

	"saapaadu-api/middleware"
	"saapaadu-api/models"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required,oneof=customer vendor admin"`

	// common profile fields
	PhoneNumber string          `json:"phone_number"`
	VegNonVeg   models.DietFlag `json:"veg_nonveg" binding:"omitempty,oneof=veg nonveg"`
	Address     string          `json:"address"`
	Area        string          `json:"area"`
	City        string          `json:"city"`
	State       string          `json:"state"`

	// vendor-specific
	ShopName    string   `json:"shop_name"`
	ShopAddress string   `json:"shop_address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ShopImage   string   `json:"shop_image"`
}

type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required,oneof=customer vendor admin"`
}

// Signup creates a new account plus its role profile
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.Signup(services.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		VegNonVeg:   req.VegNonVeg,
		Address:     req.Address,
		Area:        req.Area,
		City:        req.City,
		State:       req.State,
		ShopName:    req.ShopName,
		ShopAddress: req.ShopAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ShopImage:   req.ShopImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Login authenticates a user for a given role and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.ValidateUser(req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Me answers from the token claims alone; a role change after issuance shows
// up only on re-login.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    middleware.GetUserID(c),
		"email": middleware.GetEmail(c),
		"role":  middleware.GetRole(c),
	})
}
