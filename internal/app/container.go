package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pazurkowo/pet-salon-backend/internal/api"
	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
	"github.com/pazurkowo/pet-salon-backend/internal/auth"
	"github.com/pazurkowo/pet-salon-backend/internal/petphoto"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/storage"
	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
	"github.com/pazurkowo/pet-salon-backend/internal/user"
)

// Config holds the dependencies and settings needed to start the app.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	SlotGranularity int
	CancelWindow    time.Duration
	StorageTimeout  time.Duration
	UploadDir       string
}

// Container exposes the initialized components that callers need.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module together.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Appointment module, with the salon's calendar and service catalog
	apptRepo := appointment.NewPgxRepository(cfg.DBPool)
	apptService := appointment.NewService(apptRepo, appointment.Config{
		Calendar:        schedule.DefaultCalendar(),
		Catalog:         schedule.DefaultCatalog(),
		SlotGranularity: cfg.SlotGranularity,
		CancelWindow:    cfg.CancelWindow,
		StorageTimeout:  cfg.StorageTimeout,
	})

	// Pet photo module
	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}
	photoRepo := petphoto.NewPgxRepository(cfg.DBPool)
	photoService := petphoto.NewService(photoRepo, apptService, store)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		AppointmentService: apptService,
		PhotoService:       photoService,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
