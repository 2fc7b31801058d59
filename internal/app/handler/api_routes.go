package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Вузы (Universities) ============
	universities := api.Group("/universities")
	{
		universities.GET("", h.GetUniversities)   // GET список, поиск и фильтры
		universities.GET("/:id", h.GetUniversity) // GET одна запись
	}

	// ============ Фильтры ============
	cities := api.Group("/cities")
	{
		cities.GET("", h.GetCities)
		cities.GET("/:city/universities", h.GetCityUniversities)
	}

	types := api.Group("/types")
	{
		types.GET("", h.GetTypes)
		types.GET("/:type/universities", h.GetTypeUniversities)
	}

	// ============ Выгрузка ============
	api.GET("/export/universities", h.ExportUniversities)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
