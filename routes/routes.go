package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"broskii-backend/controllers"
	"broskii-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// preflight answers CORS preflight explicitly with 200 and an empty
// JSON body, the behavior the frontend was built against.
func preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.JSON(http.StatusOK, gin.H{})
}

// SetupRouter wires every controller into the gin engine.
func SetupRouter(
	gc *controllers.GalleryController,
	bec *controllers.BookingEmailController,
	cc *controllers.ContactController,
	wc *controllers.WizardController,
	wlc *controllers.WaitlistController,
	sc *controllers.SubscriberController,
	tc *controllers.TripController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Undocumented verbs on known paths answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
		// Browser preflights must get 200, same as the explicit
		// OPTIONS routes below.
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Fixed verbs plus explicit OPTIONS, the contract the frontend expects.
		api.GET("/gallery/images", gc.ListImages)
		api.OPTIONS("/gallery/images", preflight)

		api.POST("/bookings/confirmation", bec.SendConfirmation)
		api.OPTIONS("/bookings/confirmation", preflight)

		api.POST("/contact", cc.SendMessage)
		api.OPTIONS("/contact", preflight)

		wizard := api.Group("/wizard/sessions")
		{
			wizard.POST("", wc.StartSession)
			wizard.GET("/:token", wc.GetSession)
			wizard.PATCH("/:token", wc.UpdateDraft)
			wizard.POST("/:token/advance", wc.Advance)
			wizard.POST("/:token/retreat", wc.Retreat)
			wizard.POST("/:token/confirm-payment", wc.ConfirmPayment)
		}

		api.POST("/waitlist", wlc.Join)
		api.POST("/subscribers", sc.Subscribe)

		trips := api.Group("/trips")
		{
			trips.GET("", tc.GetTrips)
			trips.GET("/:id", tc.GetTripByID)
		}
	}

	return r
}
