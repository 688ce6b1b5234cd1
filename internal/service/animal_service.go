package service

import (
	"time"

	"petnutricare/internal/model"

	"github.com/google/uuid"
)

// AnimalService serves the animals resource. The data is a static mock:
// listing returns fixed profiles and creation echoes a normalized animal
// without persisting it.
type AnimalService interface {
	ListAnimals() []model.Animal
	CreateAnimal(req model.CreateAnimalRequest) model.Animal
}

type animalService struct{}

// NewAnimalService creates a new AnimalService
func NewAnimalService() AnimalService {
	return &animalService{}
}

func (s *animalService) ListAnimals() []model.Animal {
	now := time.Now()
	return []model.Animal{
		{
			ID:               "animal-1",
			Name:             "Buddy",
			Species:          "Dog",
			Breed:            "Golden Retriever",
			Age:              3,
			Weight:           25.5,
			HealthConditions: []string{"None"},
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               "animal-2",
			Name:             "Whiskers",
			Species:          "Cat",
			Breed:            "Persian",
			Age:              2,
			Weight:           4.2,
			HealthConditions: []string{"None"},
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}

func (s *animalService) CreateAnimal(req model.CreateAnimalRequest) model.Animal {
	animal := model.Animal{
		ID:               "animal-" + uuid.NewString(),
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		Weight:           req.Weight,
		HealthConditions: req.HealthConditions,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if animal.Name == "" {
		animal.Name = "New Pet"
	}
	if animal.Species == "" {
		animal.Species = "Unknown"
	}
	if animal.Breed == "" {
		animal.Breed = "Mixed"
	}
	if animal.Age <= 0 {
		animal.Age = 1
	}
	if animal.Weight <= 0 {
		animal.Weight = 5.0
	}
	if animal.HealthConditions == nil {
		animal.HealthConditions = []string{}
	}
	return animal
}
