package main

import (
	"log"

	"ApparelStoreAPI/external/abstractapi"
	"ApparelStoreAPI/external/imagekit"
	"ApparelStoreAPI/external/resend"

	"ApparelStoreAPI/internal/config"
	"ApparelStoreAPI/internal/db"
	"ApparelStoreAPI/internal/repository"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if cfg.UseEmailReputation {
		emailValidator, err = abstractapi.NewAbstractReputationValidator(cfg.AbstractAPIKey)
		if err != nil {
			logger.Fatal("email reputation", zap.Error(err))
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	mailer, err := resend.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	if err != nil {
		logger.Fatal("mailer", zap.Error(err))
	}

	uploader, err := imagekit.NewUploader(cfg.ImageKitPrivateKey, cfg.ImageKitEndpoint)
	if err != nil {
		logger.Fatal("imagekit", zap.Error(err))
	}

	// ======================
	// REPOSITORIES
	// ======================
	customerRepo := repository.NewCustomerRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	designRepo := repository.NewDesignRepository(pool)
	homepageRepo := repository.NewHomepageRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(customerRepo, emailValidator, mailer, logger)
	adminSvc := services.NewAdminService(adminRepo, logger)
	orderSvc := services.NewOrderService(orderRepo, productRepo, couponRepo, cartRepo, cfg.ShippingCost)
	couponSvc := services.NewCouponService(couponRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo, designRepo)
	designSvc := services.NewDesignService(designRepo, productRepo, uploader)
	homepageSvc := services.NewHomepageService(homepageRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerAdminRoutes(api, adminSvc)
	registerOrderRoutes(api, orderSvc)
	registerCouponRoutes(api, couponSvc)
	registerProductRoutes(api, productSvc)
	registerCategoryRoutes(api, categorySvc)
	registerCartRoutes(api, cartSvc)
	registerDesignRoutes(api, designSvc)
	registerHomepageRoutes(api, homepageSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
