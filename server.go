package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/routers"
	"github.com/sedtender/tender_portal/services/multiplexers"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Server is the portal's HTTP server together with the connections it has to release on shutdown
type Server struct {
	*gin.Engine
	Port        string
	logger      *zap.Logger
	connections *multiplexers.Connections
}

func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter, connections *multiplexers.Connections) Server {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.Default()
	server.LoadHTMLGlob("templates/*/*.gohtml")
	server.Static("/static", "./static")

	mainRouter.RegisterRoutes(server.Group("/"))

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine:      server,
		Port:        port,
		logger:      logger,
		connections: connections,
	}
}
