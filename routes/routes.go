package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tourism-backend/config"
	"tourism-backend/controllers"
	"tourism-backend/middleware"
	"tourism-backend/utils"
)

// SetupRouter wires every endpoint. Routes in the admin group run behind middleware.AdminOnly.
func SetupRouter(
	cfg *config.Config,
	dc *controllers.DestinationController,
	bc *controllers.BookingController,
	ctc *controllers.ContactController,
) *gin.Engine {
	r := gin.New()
	// /api/destinations/ is an unknown API route, not a redirect.
	r.RedirectTrailingSlash = false
	r.Use(middleware.Logger(), middleware.Recovery())

	allowCredentials := true
	for _, origin := range cfg.CorsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", config.AdminTokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		api.GET("/destinations", dc.ListDestinations)
		api.GET("/destinations/:id", dc.GetDestination)

		api.POST("/bookings", bc.CreateBooking)
		api.POST("/contact", ctc.CreateContact)

		admin := api.Group("", middleware.AdminOnly(cfg.AdminToken))
		{
			admin.POST("/destinations", dc.CreateDestination)
			admin.GET("/bookings", bc.GetBookings)
			admin.DELETE("/bookings/:id", bc.DeleteBooking)
			admin.GET("/contacts", ctc.GetContacts)
		}
	}

	r.NoRoute(staticFallback(cfg.StaticDir))

	return r
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// staticFallback serves files under root and falls back to root/index.html for
// unknown non-API paths, so client-side routes of the prebuilt site resolve.
func staticFallback(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if root == "" || isAPIPath(reqPath) ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			utils.JSONError(c, http.StatusNotFound, "Not found")
			return
		}

		// Cleaning against "/" keeps the lookup inside root.
		file := filepath.Join(root, filepath.FromSlash(path.Clean("/"+reqPath)))
		if serveFile(c, file) {
			return
		}
		if serveFile(c, filepath.Join(root, "index.html")) {
			return
		}

		utils.JSONError(c, http.StatusNotFound, "Not found")
	}
}

// serveFile writes a regular file with http.ServeContent. c.File is avoided because
// http.ServeFile redirects any path ending in /index.html.
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
