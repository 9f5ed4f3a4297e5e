package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrate/campusrate/internal/app/models"
)

type fakeInstructorService struct {
	lastFilter models.InstructorFilter
	result     []*models.InstructorWithStats
	err        error
}

func (f *fakeInstructorService) ListWithStats(ctx context.Context, filter models.InstructorFilter) ([]*models.InstructorWithStats, error) {
	f.lastFilter = filter
	return f.result, f.err
}

func newInstructorRouter(svc *fakeInstructorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/instructors", NewInstructorController(svc).ListInstructors)
	return router
}

func TestListInstructorsParsesFilters(t *testing.T) {
	svc := &fakeInstructorService{}
	router := newInstructorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/instructors?campus=City+Campus&department=CS&hecApproved=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "City Campus", svc.lastFilter.Campus)
	assert.Equal(t, "CS", svc.lastFilter.Department)
	require.NotNil(t, svc.lastFilter.HECApproved)
	assert.True(t, *svc.lastFilter.HECApproved)
}

func TestListInstructorsHecApprovedFalse(t *testing.T) {
	svc := &fakeInstructorService{}
	router := newInstructorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/instructors?hecApproved=false", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.HECApproved)
	assert.False(t, *svc.lastFilter.HECApproved)
}

func TestListInstructorsRejectsBadHecApproved(t *testing.T) {
	router := newInstructorRouter(&fakeInstructorService{})

	req := httptest.NewRequest(http.MethodGet, "/instructors?hecApproved=maybe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"hecApproved"`)
}

func TestListInstructorsSerializesNullAverage(t *testing.T) {
	svc := &fakeInstructorService{result: []*models.InstructorWithStats{
		{
			Instructor:      models.Instructor{ID: 1, Name: "A", Campus: "X", School: "S", Department: "D"},
			InstructorStats: models.InstructorStats{RatingCounts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}},
		},
	}}
	router := newInstructorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/instructors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// "no ratings" must be null, never 0
	assert.Contains(t, w.Body.String(), `"averageRating":null`)
	assert.Contains(t, w.Body.String(), `"totalRatings":0`)
}
