package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/simplejobbot/jobbot/internal/config"
	"github.com/simplejobbot/jobbot/internal/diagnostics"
	"github.com/simplejobbot/jobbot/internal/generator"
)

var log = logrus.New()

// Deps carries everything the request handlers need.
type Deps struct {
	Cfg  *config.Config
	Gen  *generator.Generator
	Diag *diagnostics.Diagnostics
}

func SetupRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/health", HealthCheck)
	r.GET("/", func(c *gin.Context) { Index(c, deps) })
	r.POST("/submit", func(c *gin.Context) { Submit(c, deps) })
	r.POST("/generate_package", func(c *gin.Context) { GeneratePackage(c, deps) })
	r.POST("/estimate_fit", func(c *gin.Context) { EstimateFit(c, deps) })
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
