package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dir, err := os.MkdirTemp("", "handler-test")
	if err != nil {
		panic(err)
	}
	if err := storage.InitDB(filepath.Join(dir, "test.db")); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newDiaryRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/profile", GetProfile)
	router.PUT("/api/profile", SaveProfile)
	router.GET("/api/meals/:date", GetMeals)
	router.POST("/api/meals/:date", AddMeal)
	router.DELETE("/api/meals/:date/:id", DeleteMeal)
	router.GET("/api/assessment/:date", GetAssessment)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestMeals_InvalidDate(t *testing.T) {
	router := newDiaryRouter()

	w := serve(router, http.MethodGet, "/api/meals/15-03-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodPost, "/api/meals/tomorrow", `{"name": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeals_AddAppliesDiaryDefaults(t *testing.T) {
	router := newDiaryRouter()

	w := serve(router, http.MethodPost, "/api/meals/2026-04-01",
		`{"mealType": "breakfast", "name": "白粥", "calories": 120, "carbs": 26}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rec models.MealRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 100.0, rec.Weight, "missing weight defaults to 100g")
	assert.Equal(t, "yellow", rec.HealthLevel, "missing healthLevel defaults to yellow")
}

func TestMeals_DeleteByID(t *testing.T) {
	router := newDiaryRouter()

	w := serve(router, http.MethodPost, "/api/meals/2026-04-02",
		`{"mealType": "lunch", "name": "青椒肉丝", "weight": 280, "healthLevel": "green"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var rec models.MealRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	w = serve(router, http.MethodDelete, "/api/meals/2026-04-02/"+rec.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodDelete, "/api/meals/2026-04-02/"+rec.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodGet, "/api/meals/2026-04-02", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bucket MealsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bucket))
	assert.Empty(t, bucket.Records)
}

func TestAssessment_TotalsAndMetrics(t *testing.T) {
	router := newDiaryRouter()

	w := serve(router, http.MethodPut, "/api/profile",
		`{"gender": "male", "age": 30, "height": 175, "weight": 70, "activityLevel": "light"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, meal := range []string{
		`{"mealType": "lunch", "name": "盖浇饭", "calories": 1200, "protein": 40, "carbs": 150, "fat": 35, "weight": 450, "healthLevel": "yellow"}`,
		`{"mealType": "dinner", "name": "火锅", "calories": 1300, "protein": 55, "carbs": 80, "fat": 70, "weight": 600, "healthLevel": "red"}`,
	} {
		w = serve(router, http.MethodPost, "/api/meals/2026-04-03", meal)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = serve(router, http.MethodGet, "/api/assessment/2026-04-03", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2500.0, resp.Totals.Calories, "raw total is never clamped")
	assert.Equal(t, 100, resp.Percentages.Calories, "display percentage caps at 100")
	assert.Equal(t, 95.0, resp.Totals.Protein)

	assert.Equal(t, 22.9, resp.Metrics.BMI)
	assert.Equal(t, 1649, resp.Metrics.BMR)
	assert.Equal(t, 2267, resp.Metrics.TDEE)
}
