package main

import (
	"log"

	_ "staffdesk/docs"
	"staffdesk/internal/config"
	"staffdesk/internal/server"
)

// @title           Staffdesk API
// @version         1.0
// @description     REST API for managing employees, projects, tasks, task assignments, and calendar events.

// @host      localhost:3000
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
