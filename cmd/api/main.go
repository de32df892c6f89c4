package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-secadmin-ws/internal/config"
	"go-secadmin-ws/internal/handler"
	"go-secadmin-ws/internal/middleware"
	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/internal/service"
	"go-secadmin-ws/internal/ws"
	"go-secadmin-ws/pkg/database"
	"go-secadmin-ws/pkg/mailer"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Setup database
	db := database.ConnectDB(cfg.Database)
	db.AutoMigrate(
		&model.User{}, &model.Role{},
		&model.Dispensary{}, &model.SupportEngineer{},
		&model.ServiceRequest{}, &model.Invoice{},
		&model.Article{}, &model.ServiceItem{},
		&model.EmailTemplate{}, &model.CMSPage{},
	)

	// 3. Repositories
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	dispensaryRepo := repository.NewCollectionRepo[model.Dispensary](db)
	engineerRepo := repository.NewCollectionRepo[model.SupportEngineer](db)
	requestRepo := repository.NewCollectionRepo[model.ServiceRequest](db)
	invoiceRepo := repository.NewCollectionRepo[model.Invoice](db)
	articleRepo := repository.NewCollectionRepo[model.Article](db)
	serviceItemRepo := repository.NewCollectionRepo[model.ServiceItem](db)
	templateRepo := repository.NewEmailTemplateRepo(db)
	cmsRepo := repository.NewCollectionRepo[model.CMSPage](db)

	// 4. Seed built-in defaults for any empty collection
	seedDefaults(userRepo, roleRepo, dispensaryRepo, engineerRepo, requestRepo,
		invoiceRepo, articleRepo, serviceItemRepo, templateRepo, cmsRepo)

	// 5. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Services
	mail := mailer.New(cfg.SMTP)
	authService := service.NewAuthService(userRepo, templateRepo, mail)
	userService := service.NewUserService(userRepo, roleRepo)
	dashService := service.NewDashboardService(dispensaryRepo, engineerRepo, requestRepo, invoiceRepo)

	// 7. Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)
	profileHandler := handler.NewProfileHandler(userService)
	dashHandler := handler.NewDashboardHandler(dashService)

	dispensaries := handler.NewCollectionHandler[model.Dispensary]("dispensaries", dispensaryRepo, wsHub, handler.DispensaryListConfig())
	engineers := handler.NewCollectionHandler[model.SupportEngineer]("supportEngineers", engineerRepo, wsHub, handler.EngineerListConfig())
	requests := handler.NewCollectionHandler[model.ServiceRequest]("serviceRequests", requestRepo, wsHub, handler.ServiceRequestListConfig())
	invoices := handler.NewCollectionHandler[model.Invoice]("invoices", invoiceRepo, wsHub, handler.InvoiceListConfig())
	articles := handler.NewCollectionHandler[model.Article]("knowledgeBase", articleRepo, wsHub, handler.ArticleListConfig())
	serviceItems := handler.NewCollectionHandler[model.ServiceItem]("manageServices", serviceItemRepo, wsHub, handler.ServiceItemListConfig())
	templates := handler.NewCollectionHandler[model.EmailTemplate]("emailTemplates", templateRepo, wsHub, handler.EmailTemplateListConfig())
	cmsPages := handler.NewCollectionHandler[model.CMSPage]("cmsPages", cmsRepo, wsHub, handler.CMSPageListConfig())

	// 8. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Myers Security Admin v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStats)

	// Own profile
	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	// Admin users
	protected.Get("/users", middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbRead)), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbRead)), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbCreate)), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbUpdate)), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbDelete)), userHandler.DeleteUser)

	// Roles
	protected.Get("/roles", middleware.RequirePermission(model.Perm(model.ResourceRoles, model.VerbRead)), roleHandler.GetRoles)

	// Dispensaries
	registerGated(protected, "/dispensaries", dispensaries, model.ResourceDispensaries)

	// Service requests
	registerGated(protected, "/service-requests", requests, model.ResourceServiceRequests)

	// Invoices
	registerGated(protected, "/invoices", invoices, model.ResourceInvoices)

	// Collections visible to any signed-in user
	registerOpen(protected, "/support-engineers", engineers)
	registerOpen(protected, "/knowledge-base", articles)
	registerOpen(protected, "/services", serviceItems)
	registerOpen(protected, "/email-templates", templates)

	// CMS pages: fixed slugs, content edits only
	protected.Get("/cms-pages", cmsPages.List)
	protected.Get("/cms-pages/:id", cmsPages.Get)
	protected.Put("/cms-pages/:id", cmsPages.Update)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// registerGated mounts a collection with per-verb permission checks on its
// resource.
func registerGated[T any, PT interface {
	*T
	handler.Record
}](router fiber.Router, path string, h *handler.CollectionHandler[T, PT], resource model.Resource) {
	router.Get(path, middleware.RequirePermission(model.Perm(resource, model.VerbRead)), h.List)
	router.Get(path+"/:id", middleware.RequirePermission(model.Perm(resource, model.VerbRead)), h.Get)
	router.Post(path, middleware.RequirePermission(model.Perm(resource, model.VerbCreate)), h.Create)
	router.Put(path+"/:id", middleware.RequirePermission(model.Perm(resource, model.VerbUpdate)), h.Update)
	router.Delete(path+"/:id", middleware.RequirePermission(model.Perm(resource, model.VerbDelete)), h.Delete)
}

// registerOpen mounts a collection behind authentication only, mirroring the
// pages every signed-in user could reach.
func registerOpen[T any, PT interface {
	*T
	handler.Record
}](router fiber.Router, path string, h *handler.CollectionHandler[T, PT]) {
	router.Get(path, h.List)
	router.Get(path+"/:id", h.Get)
	router.Post(path, h.Create)
	router.Put(path+"/:id", h.Update)
	router.Delete(path+"/:id", h.Delete)
}

// seedDefaults installs the built-in roles, accounts and mock collections on
// first boot (or after a wipe), so every list renders something.
func seedDefaults(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	dispensaryRepo repository.CollectionRepository[model.Dispensary],
	engineerRepo repository.CollectionRepository[model.SupportEngineer],
	requestRepo repository.CollectionRepository[model.ServiceRequest],
	invoiceRepo repository.CollectionRepository[model.Invoice],
	articleRepo repository.CollectionRepository[model.Article],
	serviceItemRepo repository.CollectionRepository[model.ServiceItem],
	templateRepo repository.EmailTemplateRepository,
	cmsRepo repository.CollectionRepository[model.CMSPage],
) {
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: failed to seed roles: %v", err)
	}
	if err := userRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: failed to seed users: %v", err)
	}
	if err := dispensaryRepo.SeedDefaults(model.DefaultDispensaries); err != nil {
		log.Printf("Warning: failed to seed dispensaries: %v", err)
	}
	if err := engineerRepo.SeedDefaults(model.DefaultSupportEngineers); err != nil {
		log.Printf("Warning: failed to seed support engineers: %v", err)
	}
	if err := requestRepo.SeedDefaults(model.DefaultServiceRequests); err != nil {
		log.Printf("Warning: failed to seed service requests: %v", err)
	}
	if err := invoiceRepo.SeedDefaults(model.DefaultInvoices); err != nil {
		log.Printf("Warning: failed to seed invoices: %v", err)
	}
	if err := articleRepo.SeedDefaults(model.DefaultArticles); err != nil {
		log.Printf("Warning: failed to seed knowledge base: %v", err)
	}
	if err := serviceItemRepo.SeedDefaults(model.DefaultServiceItems); err != nil {
		log.Printf("Warning: failed to seed services: %v", err)
	}
	if err := templateRepo.SeedDefaults(model.DefaultEmailTemplates); err != nil {
		log.Printf("Warning: failed to seed email templates: %v", err)
	}
	if err := cmsRepo.SeedDefaults(model.DefaultCMSPages); err != nil {
		log.Printf("Warning: failed to seed CMS pages: %v", err)
	}
}
