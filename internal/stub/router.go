package stub

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Router assembles the stub's gin engine. Paths mirror the production API:
// login, reset confirm and the payment endpoints are public, everything else
// requires a staff bearer token.
func (s *State) Router(allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	// If origins are configured, restrict to that list; otherwise allow all
	// so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	users := r.Group("/users")
	{
		users.POST("/login/", s.handleLogin)
		users.POST("/reset-password-confirm/:uid/:token/", s.handleResetConfirm)

		staff := users.Group("", s.requireStaff())
		staff.GET("/password-reset-requests/", s.handleListResetRequests)
		staff.PATCH("/password-reset-requests/:id/", s.handlePatchResetRequest)
	}

	questions := r.Group("/questions", s.requireStaff())
	{
		questions.GET("/books/", s.handleListBooks)
		questions.POST("/books/", s.handleCreateBook)
		questions.PUT("/books/:id/", s.handleUpdateBook)
		questions.DELETE("/books/:id/", s.handleDeleteBook)
		questions.GET("/books/:id/questions/", s.handleQuestionBundle)

		questions.POST("/mcq-questions/", s.handleCreateMCQ)
		questions.PUT("/mcq-questions/:id/", s.handleUpdateMCQ)
		questions.DELETE("/mcq-questions/:id/", s.handleDeleteMCQ)

		questions.POST("/matching-questions/", s.handleCreateMatching)
		questions.PUT("/matching-questions/:id/", s.handleUpdateMatching)
		questions.DELETE("/matching-questions/:id/", s.handleDeleteMatching)

		questions.POST("/truefalse-questions/", s.handleCreateTrueFalse)
		questions.PUT("/truefalse-questions/:id/", s.handleUpdateTrueFalse)
		questions.DELETE("/truefalse-questions/:id/", s.handleDeleteTrueFalse)

		questions.POST("/reading-comprehensions/", s.handleCreateReading)
		questions.PUT("/reading-comprehensions/:id/", s.handleUpdateReading)
		questions.DELETE("/reading-comprehensions/:id/", s.handleDeleteReading)
	}

	api := r.Group("/api")
	{
		api.POST("/create-payment/", s.handleCreatePayment)
		api.GET("/payment-status/:id/", s.handlePaymentStatus)
	}

	return r
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
