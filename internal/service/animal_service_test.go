package service

import (
	"testing"

	"petnutricare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalService_ListAnimals(t *testing.T) {
	svc := NewAnimalService()

	animals := svc.ListAnimals()
	require.Len(t, animals, 2)
	assert.Equal(t, "Buddy", animals[0].Name)
	assert.Equal(t, "Cat", animals[1].Species)
}

func TestAnimalService_CreateAnimal(t *testing.T) {
	svc := NewAnimalService()

	animal := svc.CreateAnimal(model.CreateAnimalRequest{
		Name:             "Rex",
		Species:          "Dog",
		Breed:            "Boxer",
		Age:              5,
		Weight:           30,
		HealthConditions: []string{"Hip dysplasia"},
	})

	assert.NotEmpty(t, animal.ID)
	assert.Equal(t, "Rex", animal.Name)
	assert.Equal(t, 5, animal.Age)
	assert.Equal(t, []string{"Hip dysplasia"}, animal.HealthConditions)
}

func TestAnimalService_CreateAnimalDefaults(t *testing.T) {
	svc := NewAnimalService()

	animal := svc.CreateAnimal(model.CreateAnimalRequest{})

	assert.Equal(t, "New Pet", animal.Name)
	assert.Equal(t, "Unknown", animal.Species)
	assert.Equal(t, "Mixed", animal.Breed)
	assert.Equal(t, 1, animal.Age)
	assert.Equal(t, 5.0, animal.Weight)
	assert.NotNil(t, animal.HealthConditions)
	assert.Empty(t, animal.HealthConditions)
}
