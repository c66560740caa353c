package main

import (
	"log"
	"net/http"
	"starwars/config"
	"starwars/db"
	"starwars/models"
	"starwars/routes"
	"starwars/utils"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	db.Init()
	models.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(utils.RequestID)
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.CacheControl(utils.CacheNoCache)) // No cache by default, individual end-points can override that
	routes.Setup(router)

	handler := utils.TrimTrailingSlash(router)
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(handler, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		log.Printf("Listening on %s", config.BIND_ADDRESS)
		err = http.ListenAndServe(config.BIND_ADDRESS, handler)
	}
	log.Fatalf("Server stopped: %v", err)
}
