package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/config"
	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/features/blooddonation"
	"github.com/xyz-asif/charityhub/internal/features/dashboard"
	"github.com/xyz-asif/charityhub/internal/features/eyepledge"
	"github.com/xyz-asif/charityhub/internal/features/heroimages"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
	"github.com/xyz-asif/charityhub/internal/pkg/cloudinary"
	"github.com/xyz-asif/charityhub/internal/pkg/jwt"
	"github.com/xyz-asif/charityhub/internal/pkg/logger"
	"github.com/xyz-asif/charityhub/internal/pkg/ratelimit"
)

// Services holds every feature service, built once at startup
type Services struct {
	Auth           *auth.Service
	BloodDonations *blooddonation.Service
	EyePledges     *eyepledge.Service
	Dashboard      *dashboard.Service
	HeroImages     *heroimages.Service
}

// NewServices wires repositories over db into services
func NewServices(db *mongo.Database, cfg config.Config) *Services {
	tokenCfg := jwt.DefaultConfig(cfg.JWTSecret)
	tokenCfg.AccessExpiry = cfg.JWTExpire
	tokens := jwt.NewManager(tokenCfg)

	authSvc := auth.NewService(
		auth.NewRepository(db, auth.AdminCollection),
		auth.NewRepository(db, auth.RegularUserCollection),
		tokens,
	)

	numbers := sequence.NewGenerator(sequence.NewRepository(db))
	donations := blooddonation.NewService(blooddonation.NewRepository(db), numbers)
	pledges := eyepledge.NewService(eyepledge.NewRepository(db), numbers)

	var host heroimages.ImageHost
	if cfg.CloudinaryEnabled() {
		cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
		if err != nil {
			logger.Warn("image uploads disabled", logger.Err(err))
		} else {
			host = cld
		}
	} else {
		logger.Info("cloudinary not configured, hero images accept imageUrl only")
	}

	return &Services{
		Auth:           authSvc,
		BloodDonations: donations,
		EyePledges:     pledges,
		Dashboard:      dashboard.NewService(authSvc, donations, pledges),
		HeroImages:     heroimages.NewService(heroimages.NewRepository(db), host),
	}
}

// Register mounts every route under /api. limiter guards credential and public form endpoints.
func Register(router *gin.Engine, svc *Services, limiter *ratelimit.RateLimiter) {
	api := router.Group("/api")
	limit := ratelimit.Middleware(limiter)
	authenticate := auth.Authenticate(svc.Auth)

	admin := api.Group("/admin", authenticate, auth.AuthorizeAdmin(svc.Auth))
	user := api.Group("/user", authenticate, auth.AuthorizeUser(svc.Auth))

	auth.RegisterRoutes(api, svc.Auth, limit)
	blooddonation.RegisterRoutes(api, admin, svc.BloodDonations, limit)
	eyepledge.RegisterRoutes(api, admin, svc.EyePledges, limit)
	dashboard.RegisterRoutes(admin, user, svc.Dashboard)
	heroimages.RegisterRoutes(api, user, admin, svc.HeroImages)
}

// SetupRoutes builds services over db and mounts them
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg config.Config) *ratelimit.RateLimiter {
	limiter := ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
	Register(router, NewServices(db, cfg), limiter)
	return limiter
}
