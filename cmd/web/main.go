// @title           Moto Portal API
// @version         1.0
// @description     API образовательного портала дилеров мототехники (документация Swagger).
// @host            localhost:8000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"moto_portal/internal/app"

	_ "moto_portal/docs"
)

func main() {
	app.Run()
}
