package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/auth"
	"github.com/av954416-web/javadrive/internal/config"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/handlers"
	"github.com/av954416-web/javadrive/internal/infra/lock"
	"github.com/av954416-web/javadrive/internal/infra/payment"
	infraRepo "github.com/av954416-web/javadrive/internal/infra/repository"
	"github.com/av954416-web/javadrive/internal/middleware"
	ucAccount "github.com/av954416-web/javadrive/internal/usecase/account"
	ucBooking "github.com/av954416-web/javadrive/internal/usecase/booking"
	ucCar "github.com/av954416-web/javadrive/internal/usecase/car"
	ucDashboard "github.com/av954416-web/javadrive/internal/usecase/dashboard"
	ucPayment "github.com/av954416-web/javadrive/internal/usecase/payment"
	ucReview "github.com/av954416-web/javadrive/internal/usecase/review"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
	Locker   lock.Locker
	Gateway  payment.Gateway
	// Images is nil when object storage is not configured.
	Images ucCar.ImageSaver
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	statsRepo := infraRepo.NewStatsGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCheckAvailability(bookingRepo),
		ucBooking.NewCreateBooking(bookingRepo, d.Locker, d.Audit, d.Log, cfg.PaymentCurrency, cfg.Timezone),
		ucBooking.NewGetBooking(bookingRepo),
		ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit),
		ucBooking.NewListUserBookings(bookingRepo),
	)

	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewStartCheckout(bookingRepo, d.Gateway, d.Audit),
		ucPayment.NewHandleWebhook(bookingRepo, d.Gateway, d.Audit, d.Log),
		ucPayment.NewUpdatePayment(bookingRepo, d.Audit),
	)

	carHandler := handlers.NewCarHandler(
		ucCar.NewListCars(catalogRepo),
		ucCar.NewListOwnerCars(catalogRepo),
		ucCar.NewGetCar(catalogRepo),
		ucCar.NewCreateCar(catalogRepo, d.Audit),
		ucCar.NewUpdateCar(catalogRepo, d.Audit),
		ucCar.NewDeleteCar(catalogRepo, d.Audit),
		ucCar.NewUploadCarImage(catalogRepo, d.Images, d.Audit),
	)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewCreateReview(catalogRepo, d.Audit),
		ucReview.NewRespondToReview(catalogRepo, d.Audit),
		ucReview.NewListCarReviews(catalogRepo),
	)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewOwnerDashboard(statsRepo),
		ucDashboard.NewAdminDashboard(statsRepo),
	)

	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegister(accountRepo, tokens, d.Audit),
		ucAccount.NewLogin(accountRepo, tokens),
	)
	meHandler := handlers.NewMeHandler(
		ucAccount.NewMe(accountRepo),
		ucAccount.NewSetRole(accountRepo, d.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/cars", middleware.OptionalAuth(tokens, accountRepo), carHandler.List)
		api.GET("/cars/:id", carHandler.Get)
		api.GET("/cars/:id/availability", bookingHandler.Availability)
		api.GET("/cars/:id/reviews", reviewHandler.ListForCar)

		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, accountRepo))
		{
			secured.GET("/me", meHandler.GetMe)

			// CARS
			secured.POST("/cars", carHandler.Create)
			secured.PUT("/cars/:id", carHandler.Update)
			secured.DELETE("/cars/:id", carHandler.Delete)
			secured.POST("/cars/:id/images", carHandler.UploadImage)

			// BOOKINGS
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.POST("/bookings/:id/checkout", paymentHandler.Checkout)
			secured.GET("/user/bookings", bookingHandler.ListMine)

			// REVIEWS
			secured.POST("/reviews", reviewHandler.Create)
			secured.PUT("/reviews/:id/response", reviewHandler.Respond)

			// PAYMENTS
			secured.PATCH("/payments/:id", paymentHandler.Update)

			// OWNER
			owner := secured.Group("/owner")
			owner.Use(middleware.RequireRole(identity.RoleOwner, identity.RoleAdmin))
			{
				owner.GET("/cars", carHandler.ListOwner)
				owner.GET("/dashboard", dashboardHandler.Owner)
			}

			// ADMIN
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("/dashboard", dashboardHandler.Admin)
				admin.PATCH("/users/:id/role", meHandler.SetRole)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
