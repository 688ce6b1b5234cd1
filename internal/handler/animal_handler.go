package handler

import (
	"net/http"

	"petnutricare/internal/model"
	"petnutricare/internal/service"

	"github.com/gin-gonic/gin"
)

// AnimalHandler handles the animals resource
type AnimalHandler struct {
	service service.AnimalService
}

// NewAnimalHandler creates a new AnimalHandler
func NewAnimalHandler(s service.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: s}
}

func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"animals": h.service.ListAnimals()})
}

func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	var req model.CreateAnimalRequest
	// Body fields are all optional; a malformed body still yields a default
	// animal, matching the permissive contract of this mocked resource.
	_ = c.ShouldBindJSON(&req)

	animal := h.service.CreateAnimal(req)
	c.JSON(http.StatusCreated, gin.H{"animal": animal})
}

// RegisterAnimalRoutes registers animal routes
func (h *AnimalHandler) RegisterAnimalRoutes(rg *gin.RouterGroup) {
	animalGroup := rg.Group("/animals")
	{
		animalGroup.GET("", h.ListAnimals)
		animalGroup.POST("", h.CreateAnimal)
	}
}
