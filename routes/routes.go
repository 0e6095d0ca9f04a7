package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/configs"
	"github.com/softpro2020/foodland/controllers"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/middlewares"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	geoRepo := repository.NewGeoRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	collabRepo := repository.NewCollaborationRepository(db)
	fcRepo := repository.NewFoodCollectionRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	tableRepo := repository.NewTableRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	rateRepo := repository.NewRateRepository(db)

	// Services
	accountSvc := services.NewAccountService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	personSvc := services.NewPersonService(personRepo, userRepo)
	customerSvc := services.NewCustomerService(customerRepo, geoRepo, accountSvc)
	collabSvc := services.NewCollaborationService(collabRepo, fcRepo, userRepo)
	collectionSvc := services.NewCollectionService(fcRepo)
	branchSvc := services.NewBranchService(branchRepo, fcRepo, geoRepo)
	tableSvc := services.NewTableService(tableRepo, branchRepo)
	foodSvc := services.NewFoodService(foodRepo, branchRepo)
	orderSvc := services.NewOrderService(orderRepo, foodRepo, tableRepo, branchRepo, customerRepo)
	rateSvc := services.NewRateService(rateRepo, branchRepo, customerRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(accountSvc, customerSvc)
	userCtrl := controllers.NewUserController(accountSvc, personSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	geoCtrl := controllers.NewGeoController(geoRepo)
	collabCtrl := controllers.NewCollaborationController(collabSvc)
	collectionCtrl := controllers.NewCollectionController(collectionSvc)
	branchCtrl := controllers.NewBranchController(branchSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	rateCtrl := controllers.NewRateController(rateSvc)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth(), authCtrl.Me)

	// Public reference and browse data
	r.GET("/provinces", geoCtrl.ListProvinces)
	r.GET("/provinces/:id", geoCtrl.ProvinceDetail)
	r.GET("/provinces/:id/cities", geoCtrl.ListCities)
	r.GET("/collections", collectionCtrl.List)
	r.GET("/collections/:id", collectionCtrl.Detail)
	r.GET("/branches", branchCtrl.List)
	r.GET("/branches/:id", branchCtrl.Detail)
	r.GET("/branches/:id/tables", tableCtrl.List)
	r.GET("/branches/:id/foods", foodCtrl.List)
	r.GET("/branches/:id/rates", rateCtrl.ListForBranch)

	// Anyone may apply for a collaboration
	r.POST("/collaboration-requests", collabCtrl.Submit)

	// Customer (logged in)
	u := r.Group("/", auth(entity.RoleCustomer))
	{
		u.GET("/customers/me", customerCtrl.Me)
		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.ListMine)
		u.POST("/rates", rateCtrl.Submit)
	}
	r.GET("/orders/:id", auth(), orderCtrl.Detail)

	// Manager and branch staff
	manager := r.Group("/manager", auth(entity.RoleManager, entity.RoleBranchManager))
	{
		manager.GET("/collection", collectionCtrl.Mine)
		manager.POST("/branches", branchCtrl.Create)
		manager.PATCH("/branches/:id", branchCtrl.Rename)
		manager.DELETE("/branches/:id", branchCtrl.Delete)
		manager.PUT("/branches/:id/location", branchCtrl.SetLocation)
		manager.PUT("/branches/:id/contact", branchCtrl.SetCallContact)

		manager.POST("/branches/:id/tables", tableCtrl.Create)
		manager.POST("/branches/:id/tables/reserve", tableCtrl.SetState(entity.TableReserved))
		manager.POST("/branches/:id/tables/free", tableCtrl.SetState(entity.TableFree))

		manager.POST("/branches/:id/foods", foodCtrl.Create)
		manager.POST("/branches/:id/foods/import", foodCtrl.Import)
		manager.PATCH("/foods/:id", foodCtrl.UpdatePrice)

		manager.GET("/branches/:id/orders", orderCtrl.ListForBranch)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/users", userCtrl.List)
		admin.GET("/users/:id", userCtrl.Detail)
		admin.POST("/users", userCtrl.Create)
		admin.POST("/users/activate", userCtrl.SetActive(true))
		admin.POST("/users/deactivate", userCtrl.SetActive(false))
		admin.POST("/users/:id/person", userCtrl.AttachPerson)
		admin.POST("/users/:id/customer", customerCtrl.Attach)

		admin.GET("/customers", customerCtrl.List)
		admin.POST("/customers/activate", customerCtrl.SetActive(true))
		admin.POST("/customers/deactivate", customerCtrl.SetActive(false))

		admin.POST("/provinces", geoCtrl.CreateProvince)
		admin.POST("/provinces/:id/cities", geoCtrl.CreateCity)

		admin.GET("/collaboration-requests", collabCtrl.List)
		admin.GET("/collaboration-requests/:id", collabCtrl.Detail)
		admin.PATCH("/collaboration-requests/:id/approve", collabCtrl.Approve)
	}
}
