package main

import (
	attendancehandlers "attendly.com/attendly/attendance/web/handlers/attendance"
	"attendly.com/attendly/attendance/web/handlers/leave"
	"attendly.com/attendly/core"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
)

// buildRouter assembles the gin engine from explicit dependencies so
// tests can stand up isolated instances.
func buildRouter(dm *core.DatabaseManager, jwtSecret []byte, leaveOpts leave.Options) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	api.Use(middlewares.Authentication(jwtSecret))

	admin := api.Group("")
	admin.Use(middlewares.RequireAdmin())

	attendancehandlers.Register(api, admin, dm)
	leave.Register(api, admin, dm, leaveOpts)

	return r
}
