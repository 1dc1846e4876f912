package service

import (
	"context"
	"errors"
	"testing"

	"stock-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockCategoryRepository)
	mockRepo.On("List", ctx).Return([]model.Category{{ID: 1, Name: "Tools"}}, nil)

	categories, err := NewCategoryService(mockRepo, zerolog.Nop()).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: 1, Name: "Tools"}}, categories)

	failing := new(MockCategoryRepository)
	failing.On("List", ctx).Return(nil, errors.New("database error"))

	_, err = NewCategoryService(failing, zerolog.Nop()).List(ctx)
	assert.ErrorContains(t, err, "failed to list categories")
}

func TestCategoryService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		input       model.CategoryInput
		setupMock   func(*MockCategoryRepository)
		expectedErr error
	}{
		{
			name:  "Success",
			input: model.CategoryInput{Name: "Tools"},
			setupMock: func(m *MockCategoryRepository) {
				m.On("Create", ctx, model.CategoryInput{Name: "Tools"}).
					Return(&model.Category{ID: 1, Name: "Tools"}, nil)
			},
		},
		{
			name:        "Empty name",
			input:       model.CategoryInput{},
			setupMock:   func(m *MockCategoryRepository) {},
			expectedErr: model.ErrInvalidName,
		},
		{
			name:  "Duplicate",
			input: model.CategoryInput{Name: "Tools"},
			setupMock: func(m *MockCategoryRepository) {
				m.On("Create", ctx, model.CategoryInput{Name: "Tools"}).Return(nil, model.ErrDuplicateName)
			},
			expectedErr: model.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			tt.setupMock(mockRepo)

			category, err := NewCategoryService(mockRepo, logger).Create(ctx, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, category)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), category.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	in := model.CategoryInput{Name: "Garden"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Update", ctx, int64(2), in).Return(&model.Category{ID: 2, Name: "Garden"}, nil)

		category, err := NewCategoryService(mockRepo, logger).Update(ctx, 2, in)
		require.NoError(t, err)
		assert.Equal(t, "Garden", category.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Update", ctx, int64(2), in).Return(nil, nil)

		_, err := NewCategoryService(mockRepo, logger).Update(ctx, 2, in)
		assert.Equal(t, model.ErrCategoryNotFound, err)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)

		_, err := NewCategoryService(mockRepo, logger).Update(ctx, 0, in)
		assert.Equal(t, model.ErrInvalidID, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Deleted", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Delete", ctx, int64(5)).Return(true, nil)

		assert.NoError(t, NewCategoryService(mockRepo, logger).Delete(ctx, 5))
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Delete", ctx, int64(5)).Return(false, nil)

		assert.Equal(t, model.ErrCategoryNotFound, NewCategoryService(mockRepo, logger).Delete(ctx, 5))
	})

	t.Run("In use", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Delete", ctx, int64(5)).Return(false, model.ErrCategoryInUse)

		err := NewCategoryService(mockRepo, logger).Delete(ctx, 5)
		assert.ErrorIs(t, err, model.ErrCategoryInUse)
	})
}
