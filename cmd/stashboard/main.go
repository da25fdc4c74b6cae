package main

import "github.com/smulube/stashboard/internal/app"

func main() {
	app.Run()
}
