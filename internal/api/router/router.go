package router

import (
	"gpa-tracker/internal/api/handlers"
	"gpa-tracker/internal/api/middleware"
	interfaces "gpa-tracker/internal/interfaces/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options tunes the router beyond the session it serves
type Options struct {
	AllowedOrigins []string
	// StorageBackend is reported by the health endpoints
	StorageBackend string
}

func NewRouter(recordService interfaces.RecordService, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	r.Use(gin.Recovery())

	recordHandler := handlers.NewRecordHandler(recordService)
	healthHandler := handlers.NewHealthHandler(recordService, opts.StorageBackend)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)
	r.GET("/metrics", middleware.PrometheusHandler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/grading-systems", recordHandler.ListGradingSystems)
		v1.PUT("/grading-system", recordHandler.SetGradingSystem)
		v1.GET("/record", recordHandler.GetRecord)

		semesters := v1.Group("/semesters")
		{
			semesters.GET("", recordHandler.ListSemesters)
			semesters.POST("", recordHandler.AddSemester)
			semesters.PUT("/:index", recordHandler.RenameSemester)
			semesters.DELETE("/:index", recordHandler.DeleteSemester)
			semesters.POST("/:index/select", recordHandler.SelectSemester)
			semesters.POST("/:index/courses", recordHandler.AddCourse)
			semesters.DELETE("/:index/courses/:courseId", recordHandler.RemoveCourse)
		}

		v1.POST("/plan", recordHandler.PlanTarget)
		v1.GET("/export", recordHandler.Export)
		v1.POST("/clear", recordHandler.ClearAll)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
