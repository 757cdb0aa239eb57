package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
	apptHttp "github.com/pazurkowo/pet-salon-backend/internal/appointment/http"
	"github.com/pazurkowo/pet-salon-backend/internal/auth"
	"github.com/pazurkowo/pet-salon-backend/internal/petphoto"
	photoHttp "github.com/pazurkowo/pet-salon-backend/internal/petphoto/http"
	"github.com/pazurkowo/pet-salon-backend/internal/user"
	userHttp "github.com/pazurkowo/pet-salon-backend/internal/user/http"
)

// Config carries everything the router needs from the container.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	AppointmentService appointment.Service
	PhotoService       petphoto.Service
	JWTManager         *auth.JWTManager
}

// NewRouter assembles the gin engine: global middleware, CORS, and the
// routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.Required(cfg.JWTManager)
	authRateLimit := NewRateLimiter(5, 10).Middleware()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	apptHandler := apptHttp.NewHandler(cfg.AppointmentService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, authRateLimit)
		apptHttp.RegisterRoutes(v1, apptHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware)
	}

	return r
}
