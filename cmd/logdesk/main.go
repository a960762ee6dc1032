package main

import "github.com/Egor213/LogDesk/internal/app"

func main() {
	app.Run()
}
