package pkg

import (
	"fmt"

	"unicatalog/internal/app/config"
	"unicatalog/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "unicatalog/docs"
)

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.Handler
	APIHandler *handler.APIHandler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, api *handler.APIHandler) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		APIHandler: api,
	}
}

// RegisterRoutes подключает шаблоны, страницы, REST API и swagger
func (a *Application) RegisterRoutes() {
	a.Handler.RegisterTemplates(a.Router)
	a.Handler.RegisterRoutes(a.Router)
	a.APIHandler.RegisterAPIRoutes(a.Router)
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.RegisterRoutes()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
