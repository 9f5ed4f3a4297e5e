package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusrate/campusrate/internal/app/models"
)

type fakeFilterService struct {
	lastSelection models.FilterSelection
	err           error
}

func (f *fakeFilterService) ResolveOptions(ctx context.Context, selection models.FilterSelection) (*models.FilterOptions, error) {
	f.lastSelection = selection
	if f.err != nil {
		return nil, f.err
	}
	return &models.FilterOptions{Campuses: []string{"City A", "City B"}}, nil
}

func newFilterRouter(svc *fakeFilterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/filter-options", NewFilterController(svc).GetFilterOptions)
	return router
}

func TestGetFilterOptionsPassesSelectionThrough(t *testing.T) {
	svc := &fakeFilterService{}
	router := newFilterRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/filter-options?campus=City+A&school=Eng&department=CS", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.FilterSelection{Campus: "City A", School: "Eng", Department: "CS"}, svc.lastSelection)
}

func TestGetFilterOptionsCampusChangeClearsLowerLevels(t *testing.T) {
	svc := &fakeFilterService{}
	router := newFilterRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/filter-options?campus=City+B&school=Eng&department=CS&changed=campus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.FilterSelection{Campus: "City B"}, svc.lastSelection)
}

func TestGetFilterOptionsSchoolChangeKeepsCampus(t *testing.T) {
	svc := &fakeFilterService{}
	router := newFilterRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/filter-options?campus=City+A&school=Business&department=CS&changed=school", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.FilterSelection{Campus: "City A", School: "Business"}, svc.lastSelection)
}

func TestGetFilterOptionsRejectsUnknownChangedLevel(t *testing.T) {
	router := newFilterRouter(&fakeFilterService{})

	req := httptest.NewRequest(http.MethodGet, "/filter-options?changed=faculty", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"changed"`)
}
