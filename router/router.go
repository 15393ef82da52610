package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/controllers"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Registered before any route so it wraps all of them
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	tenantCtrl := controllers.NewTenantController(db)
	hotelCtrl := controllers.NewHotelController(db)
	roomCtrl := controllers.NewRoomController(db)
	guestCtrl := controllers.NewGuestController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	requestCtrl := controllers.NewRequestController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	announcementCtrl := controllers.NewAnnouncementController(db)
	surveyCtrl := controllers.NewSurveyController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                PUBLIC ROUTES (tenant-scoped, guest-facing)
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.TenantMiddleware(db))

	login := api.Group("/auth")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", authCtrl.Login)
	}

	api.GET("/menu", menuCtrl.GetMenu)
	api.GET("/hotel", hotelCtrl.GetHotel)
	api.GET("/announcements", announcementCtrl.GetActiveAnnouncements)
	api.GET("/rooms/scan/:qr_token", roomCtrl.ScanRoom)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.POST("/requests", requestCtrl.CreateRequest)
	api.GET("/requests/room/:room_id", requestCtrl.GetRoomRequests)
	api.POST("/surveys", surveyCtrl.CreateSurveyResponse)

	// Guest WebSocket, scoped to one room of the tenant
	r.GET("/ws/room/:room_id", middlewares.TenantMiddleware(db), controllers.RoomSocketHandler)

	// ----------------------------------------------------------------
	//                AUTHENTICATED ROUTES (staff panels)
	// ----------------------------------------------------------------
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware(db))

	auth.GET("/auth/profile", authCtrl.GetProfile)
	auth.POST("/auth/logout", authCtrl.Logout)

	users := auth.Group("/users", middlewares.RequirePermission("users"))
	{
		users.GET("", userCtrl.GetAllUsers)
		users.POST("", userCtrl.CreateUser)
		users.PATCH("/:user_id", userCtrl.UpdateUser)
		users.DELETE("/:user_id", userCtrl.DeleteUser)
	}

	menu := auth.Group("/menu", middlewares.RequirePermission("menu"))
	{
		menu.GET("/all", menuCtrl.GetAllMenuItems)
		menu.POST("", menuCtrl.CreateMenuItem)
		menu.PATCH("/:item_id", menuCtrl.UpdateMenuItem)
		menu.DELETE("/:item_id", menuCtrl.DeleteMenuItem)
	}

	rooms := auth.Group("/rooms", middlewares.RequirePermission("rooms"))
	{
		rooms.GET("", roomCtrl.GetAllRooms)
		rooms.POST("", roomCtrl.CreateRoom)
		rooms.POST("/batch", roomCtrl.CreateRoomBatch)
		rooms.PATCH("/:room_id", roomCtrl.UpdateRoom)
		rooms.DELETE("/:room_id", roomCtrl.DeleteRoom)
		rooms.GET("/:room_id/qr", roomCtrl.GetRoomQR)
	}

	guests := auth.Group("/guests", middlewares.RequirePermission("guests"))
	{
		guests.GET("", guestCtrl.GetAllGuests)
		guests.POST("", guestCtrl.CheckIn)
		guests.POST("/checkout", guestCtrl.Checkout)
	}

	orders := auth.Group("/orders", middlewares.RequirePermission("orders"))
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PATCH("/:order_id", orderCtrl.UpdateOrderStatus)
	}

	requests := auth.Group("/requests", middlewares.RequirePermission("requests"))
	{
		requests.GET("", requestCtrl.GetAllRequests)
		requests.PATCH("/:request_id", requestCtrl.UpdateRequest)
	}

	notifications := auth.Group("/notifications", middlewares.RequirePermission("notifications"))
	{
		notifications.GET("", notificationCtrl.GetAllNotifications)
		notifications.POST("", notificationCtrl.CreateNotification)
		notifications.PATCH("/:notif_id/read", notificationCtrl.MarkNotificationRead)
		notifications.DELETE("/:notif_id", notificationCtrl.DeleteNotification)
	}

	announcements := auth.Group("/announcements", middlewares.RequirePermission("announcements"))
	{
		announcements.POST("", announcementCtrl.CreateAnnouncement)
		announcements.PATCH("/:announcement_id", announcementCtrl.UpdateAnnouncement)
		announcements.DELETE("/:announcement_id", announcementCtrl.DeleteAnnouncement)
	}

	auth.GET("/surveys", middlewares.RequirePermission("surveys"), surveyCtrl.GetAllSurveyResponses)
	auth.PATCH("/hotel", middlewares.RequirePermission("settings"), hotelCtrl.UpdateHotel)
	auth.GET("/dashboard/stats", middlewares.RequirePermission("dashboard"), dashboardCtrl.GetDashboardStats)

	// Staff WebSocket, token via query string
	r.GET("/ws/staff", middlewares.TenantMiddleware(db), middlewares.AuthMiddleware(db), controllers.StaffSocketHandler)

	// ----------------------------------------------------------------
	//                SYSTEM ADMIN (not tenant-scoped)
	// ----------------------------------------------------------------
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(db), middlewares.RequireAdmin())
	{
		admin.GET("/tenants", tenantCtrl.GetAllTenants)
		admin.POST("/tenants", tenantCtrl.CreateTenant)
		admin.PATCH("/tenants/:tenant_id", tenantCtrl.UpdateTenant)
		admin.DELETE("/tenants/:tenant_id", tenantCtrl.DeleteTenant)
		admin.GET("/tenants/:tenant_id/features", tenantCtrl.GetTenantFeatures)
		admin.PUT("/tenants/:tenant_id/features", tenantCtrl.PutTenantFeatures)
	}

	return r
}
