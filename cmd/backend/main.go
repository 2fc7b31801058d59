package main

import (
	"log"

	"unicatalog/internal/api"
)

// @title University Catalog API
// @version 1.0
// @description Каталог университетов Казахстана: поиск, фильтры и выгрузка.
// @host localhost:8080
// @BasePath /
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
