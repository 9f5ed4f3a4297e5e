package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// fakeRatingService returns canned results so the tests exercise only the
// HTTP mapping.
type fakeRatingService struct {
	rating     *models.Rating
	candidates []*models.Instructor
	err        error
}

func (f *fakeRatingService) Create(ctx context.Context, userID string, instructorID int64, value int, comment string) (*models.Rating, error) {
	return f.rating, f.err
}

func (f *fakeRatingService) Update(ctx context.Context, userID string, ratingID uuid.UUID, value int, comment string) (*models.Rating, error) {
	return f.rating, f.err
}

func (f *fakeRatingService) Delete(ctx context.Context, ratingID uuid.UUID, requestingUserID string) (*models.Rating, error) {
	return f.rating, f.err
}

func (f *fakeRatingService) DeleteAny(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	return f.rating, f.err
}

func (f *fakeRatingService) ListForUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Rating{f.rating}, nil
}

func (f *fakeRatingService) Candidates(ctx context.Context, campus, school, department, userID string) ([]*models.Instructor, error) {
	return f.candidates, f.err
}

func newRatingRouter(svc *fakeRatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRatingController(svc)

	router := gin.New()
	router.POST("/ratings", controller.CreateRating)
	router.PUT("/ratings/:id", controller.UpdateRating)
	router.DELETE("/ratings/:id", controller.DeleteRating)
	router.GET("/ratings", controller.ListRatings)
	router.GET("/ratings/candidates", controller.ListCandidates)
	return router
}

func sampleRating() *models.Rating {
	return &models.Rating{
		ID:           uuid.New(),
		UserID:       "user-1",
		InstructorID: 1,
		Rating:       4,
	}
}

func TestCreateRatingReturns201(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{rating: sampleRating()})

	body := `{"userId":"user-1","instructorId":1,"rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"user-1"`)
}

func TestCreateRatingDuplicateMapsTo400(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{err: apperrors.ErrDuplicateRating})

	body := `{"userId":"user-1","instructorId":1,"rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RES_002")
}

func TestCreateRatingRejectsMalformedBody(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{rating: sampleRating()})

	// Binding enforces the 1-5 range before the service sees the request
	body := `{"userId":"user-1","instructorId":1,"rating":9}`
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestUpdateRatingInvalidIDMapsTo400(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{rating: sampleRating()})

	body := `{"userId":"user-1","rating":5}`
	req := httptest.NewRequest(http.MethodPut, "/ratings/not-a-uuid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"id"`)
}

func TestDeleteRatingNotFoundMapsTo404(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{err: apperrors.ErrRatingNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/ratings/"+uuid.NewString()+"?userId=user-2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

func TestListRatingsUnavailableMapsTo503(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{err: apperrors.ErrUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/ratings?userId=user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_002")
}

func TestListCandidatesReturnsInstructors(t *testing.T) {
	router := newRatingRouter(&fakeRatingService{candidates: []*models.Instructor{
		{ID: 2, Name: "B", Campus: "X", School: "S", Department: "D"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/ratings/candidates?campus=X&school=S&department=D&userId=user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"B"`)
}
