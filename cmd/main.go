package main

import "github.com/dballard10/Planner-Calendar-Goal-App/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitTaskStore()
	defer app.CloseTaskStore()

	app.MustListenAndServeHTTP()
}
