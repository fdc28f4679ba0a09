package routes

import (
	"net/http"
	"time"

	"lamaison/handlers"
	"lamaison/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, ch *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.GET("/greeting", ch.Greeting)
		api.POST("/turn", ch.Turn)
		api.POST("/stream", ch.Stream)
	}
}

// RegisterRestaurantRoutes registers the read-only menu and availability lookups.
func RegisterRestaurantRoutes(r *gin.Engine, rh *handlers.RestaurantHandler) {
	api := r.Group("/api")
	{
		api.GET("/menu", rh.Menu)
		api.GET("/menu/:category", rh.MenuCategory)
		api.GET("/availability", rh.Availability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ch *handlers.ChatHandler, rh *handlers.RestaurantHandler) {
	// The widget is embedded on third-party pages, so CORS stays open.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", handlers.SessionHeader},
		ExposeHeaders:   []string{"Content-Length", handlers.SessionHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterChatRoutes(r, ch)
	RegisterRestaurantRoutes(r, rh)
	RegisterHealthRoute(r)
}
