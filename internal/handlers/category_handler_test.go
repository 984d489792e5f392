package handlers

import (
	"errors"
	"net/http"
	"testing"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"
	"budget-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockCategoryServiceInterface
	handler *CategoryHandler
	e       *echo.Echo
	userID  uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.service)
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) TestCreateCategory() {
	category := &models.Category{ID: uuid.New(), UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}

	s.service.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, in dto.CategoryInput) (*models.Category, error) {
			s.Equal("Groceries", *in.Name)
			s.Equal("expense", *in.Type)
			return category, nil
		})

	c, rec := newAuthedContext(s.e, s.userID, http.MethodPost, "/api/categories",
		map[string]string{"name": "Groceries", "type": "expense"})

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)

	var got dto.CategoryResponse
	decodeJSON(s.T(), rec, &got)
	s.Equal(category.ID, got.ID)
	s.Equal("Groceries", got.Name)
	s.Equal("expense", got.Type)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_InvalidType() {
	c, _ := newAuthedContext(s.e, s.userID, http.MethodPost, "/api/categories",
		map[string]string{"name": "Groceries", "type": "transfer"})

	s.Error(s.handler.CreateCategory(c))
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_Unauthenticated() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/categories",
		map[string]string{"name": "Groceries", "type": "expense"})

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestListCategories_PassesFilters() {
	s.service.EXPECT().
		List(gomock.Any(), s.userID, models.CategoryFilters{Name: "gro", Type: "expense"}).
		Return([]models.Category{
			{ID: uuid.New(), Name: "Groceries", Type: models.CategoryTypeExpense},
		}, nil)

	c, rec := newAuthedContext(s.e, s.userID, http.MethodGet, "/api/categories?name=gro&type=expense", nil)

	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var got []dto.CategoryResponse
	decodeJSON(s.T(), rec, &got)
	s.Len(got, 1)
	s.Equal("Groceries", got[0].Name)
}

func (s *CategoryHandlerTestSuite) TestListCategories_EmptyIsArray() {
	s.service.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).Return(nil, nil)

	c, rec := newAuthedContext(s.e, s.userID, http.MethodGet, "/api/categories", nil)

	s.NoError(s.handler.ListCategories(c))
	s.JSONEq("[]", rec.Body.String())
}

func (s *CategoryHandlerTestSuite) TestGetCategory_OtherOwnerIsNotFound() {
	id := uuid.New()
	s.service.EXPECT().Get(gomock.Any(), s.userID, id).Return(nil, services.ErrCategoryNotFound)

	c, rec := newAuthedContext(s.e, s.userID, http.MethodGet, "/api/categories/"+id.String(), nil)
	withID(c, id.String())

	s.NoError(s.handler.GetCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", decodeErrorResponse(s.T(), rec).Error.Code)
}

func (s *CategoryHandlerTestSuite) TestGetCategory_MalformedID() {
	c, rec := newAuthedContext(s.e, s.userID, http.MethodGet, "/api/categories/abc", nil)
	withID(c, "abc")

	s.NoError(s.handler.GetCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdateCategory_RequiresAllFields() {
	id := uuid.New()
	c, _ := newAuthedContext(s.e, s.userID, http.MethodPut, "/api/categories/"+id.String(),
		map[string]string{"name": "Food"})
	withID(c, id.String())

	s.Error(s.handler.UpdateCategory(c))
}

func (s *CategoryHandlerTestSuite) TestPatchCategory_OnlySuppliedFields() {
	id := uuid.New()
	s.service.EXPECT().
		Update(gomock.Any(), s.userID, id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, in dto.CategoryInput) (*models.Category, error) {
			s.Require().NotNil(in.Name)
			s.Equal("Food", *in.Name)
			s.Nil(in.Type)
			return &models.Category{ID: id, Name: "Food", Type: models.CategoryTypeExpense}, nil
		})

	c, rec := newAuthedContext(s.e, s.userID, http.MethodPatch, "/api/categories/"+id.String(),
		map[string]string{"name": "Food"})
	withID(c, id.String())

	s.NoError(s.handler.PatchCategory(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdateCategory_ServiceValidationError() {
	id := uuid.New()
	s.service.EXPECT().
		Update(gomock.Any(), s.userID, id, gomock.Any()).
		Return(nil, &services.ValidationError{Field: "name", Message: "category name is required"})

	c, rec := newAuthedContext(s.e, s.userID, http.MethodPut, "/api/categories/"+id.String(),
		map[string]string{"name": "  ", "type": "income"})
	withID(c, id.String())

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(s.T(), rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Contains(resp.Error.Details, "name: category name is required")
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory() {
	id := uuid.New()

	s.Run("deleted", func() {
		s.service.EXPECT().Delete(gomock.Any(), s.userID, id).Return(nil)

		c, rec := newAuthedContext(s.e, s.userID, http.MethodDelete, "/api/categories/"+id.String(), nil)
		withID(c, id.String())

		s.NoError(s.handler.DeleteCategory(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("repository failure", func() {
		s.service.EXPECT().Delete(gomock.Any(), s.userID, id).Return(errors.New("disk full"))

		c, rec := newAuthedContext(s.e, s.userID, http.MethodDelete, "/api/categories/"+id.String(), nil)
		withID(c, id.String())

		s.NoError(s.handler.DeleteCategory(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
