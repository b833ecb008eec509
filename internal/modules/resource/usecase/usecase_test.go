package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/golangid/attendo/internal/modules/resource/domain"
	mockrepo "github.com/golangid/attendo/pkg/mocks/modules/resource/repository"
	mocksharedrepo "github.com/golangid/attendo/pkg/mocks/shared/repository"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

func TestNewResourceUsecase(t *testing.T) {
	assert.NotNil(t, NewResourceUsecase(&mocksharedrepo.RepoMongo{}))
}

func Test_resourceUsecaseImpl_AddResource(t *testing.T) {
	t.Run("Testcase #1: Positive, negative quantity stored as given", func(t *testing.T) {
		resourceRepo := &mockrepo.ResourceRepository{}
		resourceRepo.On("Insert", mock.Anything, mock.MatchedBy(func(data *shareddomain.Resource) bool {
			return data.MaterialName == "Chairs" && data.Quantity == -3
		})).Return(nil)
		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ResourceRepo").Return(resourceRepo)

		uc := NewResourceUsecase(repoMongo)
		data, err := uc.AddResource(context.Background(), &domain.RequestResource{MaterialName: "Chairs", Quantity: -3})
		assert.NoError(t, err)
		assert.Equal(t, -3, data.Quantity)
		resourceRepo.AssertExpectations(t)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {
		resourceRepo := &mockrepo.ResourceRepository{}
		resourceRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("Something error"))
		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ResourceRepo").Return(resourceRepo)

		uc := NewResourceUsecase(repoMongo)
		_, err := uc.AddResource(context.Background(), &domain.RequestResource{MaterialName: "Chairs", Quantity: 40})
		assert.Error(t, err)
	})
}

func Test_resourceUsecaseImpl_GetAllResource(t *testing.T) {
	resourceRepo := &mockrepo.ResourceRepository{}
	resourceRepo.On("FetchAll", mock.Anything).Return([]shareddomain.Resource{{MaterialName: "Chairs", Quantity: 40}}, nil)
	repoMongo := &mocksharedrepo.RepoMongo{}
	repoMongo.On("ResourceRepo").Return(resourceRepo)

	uc := NewResourceUsecase(repoMongo)
	data, err := uc.GetAllResource(context.Background())
	assert.NoError(t, err)
	assert.Len(t, data, 1)
}
