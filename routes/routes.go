package routes

import (
	"os"

	parcelController "parcel-delivery/controllers/parcel"
	paymentController "parcel-delivery/controllers/payment"
	riderController "parcel-delivery/controllers/rider"
	trackingController "parcel-delivery/controllers/tracking"
	userController "parcel-delivery/controllers/user"
	"parcel-delivery/httpServices/gateway"
	"parcel-delivery/logger"
	"parcel-delivery/middleware"
	"parcel-delivery/repository"
	parcelService "parcel-delivery/services/parcel"
	paymentService "parcel-delivery/services/payment"
	riderService "parcel-delivery/services/rider"
	trackingService "parcel-delivery/services/tracking"
	userService "parcel-delivery/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	parcelRepo := repository.NewGormParcelRepo(db)
	riderRepo := repository.NewGormRiderRepo(db)
	userRepo := repository.NewGormUserRepo(db)
	trackingRepo := repository.NewGormTrackingRepo(db)
	paymentRepo := repository.NewGormPaymentRepo(db)

	gatewayClient := gateway.NewClient(os.Getenv("PAYMENT_GATEWAY_URL"), os.Getenv("PAYMENT_GATEWAY_SECRET"))
	asyncLogger := logger.NewAsyncLogger(db)

	parcelSvc := parcelService.NewService(parcelRepo, riderRepo, trackingRepo)
	trackingSvc := trackingService.NewService(trackingRepo)
	paymentSvc := paymentService.NewService(paymentRepo, parcelRepo, trackingRepo, gatewayClient)
	riderSvc := riderService.NewService(riderRepo, userRepo)
	userSvc := userService.NewService(userRepo)

	auth := middleware.New(os.Getenv("PUBLIC_KEY_URL"), userSvc)

	parcels := parcelController.NewParcelController(parcelSvc, userSvc)
	trackings := trackingController.NewTrackingController(trackingSvc)
	payments := paymentController.NewPaymentController(paymentSvc, asyncLogger)
	riders := riderController.NewRiderController(riderSvc)
	users := userController.NewUserController(userSvc)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Parcel delivery server is running")
	})

	/*=============================================================================
	| Parcel Routes
	===============================================================================*/
	app.Get("/parcels", auth.RequireAuth(), parcels.Index)
	app.Get("/parcels/delivery/status-count", parcels.StatusCount)
	app.Get("/parcels/:id", parcels.Show)
	app.Post("/parcels", parcels.Store)
	app.Patch("/parcels/:id/assign", parcels.AssignRider)
	app.Patch("/parcels/:id/status", parcels.UpdateStatus)
	app.Patch("/parcels/:id/cashout", parcels.CashOut)
	app.Delete("/parcels/:id", parcels.Destroy)

	/*=============================================================================
	| Rider Work Routes
	===============================================================================*/
	app.Get("/rider/parcels", auth.RequireAuth(), auth.RequireRider(), auth.RequireSelf("email"), parcels.RiderParcels)
	app.Get("/rider/completed-parcels", auth.RequireAuth(), auth.RequireRider(), auth.RequireSelf("email"), parcels.RiderCompletedParcels)

	/*=============================================================================
	| Tracking Routes
	===============================================================================*/
	app.Get("/trackings/:trackingId", trackings.Show)
	app.Post("/trackings", trackings.Store)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	app.Get("/payments", auth.RequireAuth(), auth.RequireSelf("email"), payments.Index)
	app.Post("/payments", auth.RequireAuth(), payments.Store)
	app.Post("/create-payment-intent", payments.CreateIntent)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	app.Post("/users", users.Store)
	app.Get("/users/search", auth.RequireAuth(), auth.RequireAdmin(), users.Search)
	app.Get("/users/:email/role", auth.RequireAuth(), users.Role)
	app.Patch("/users/:id/role", auth.RequireAuth(), auth.RequireAdmin(), users.SetRole)

	/*=============================================================================
	| Rider Directory Routes
	===============================================================================*/
	app.Post("/riders", riders.Store)
	app.Get("/riders/pending", auth.RequireAuth(), auth.RequireAdmin(), riders.Pending)
	app.Get("/riders/active", auth.RequireAuth(), auth.RequireAdmin(), riders.Active)
	app.Get("/riders/available", riders.Available)
	app.Patch("/riders/:id/status", auth.RequireAuth(), auth.RequireAdmin(), riders.SetStatus)
}
