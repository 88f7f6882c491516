package routes

import (
	"context"
	"net/http"
	"time"

	"bff/config"
	"bff/constants"
	"bff/controllers"
	"bff/jobs"
	middlewares "bff/middleware"
	"bff/services"
	"bff/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	log := logger.NewDefaultLogger(logger.InfoLevel)
	api := services.NewAPIClient(config.App.UpstreamBaseURL, config.HTTPClient)

	persister := services.NewRedisSessionPersister(redisCli, time.Duration(config.App.SessionTTLHours)*time.Hour)
	catalogStore := services.NewCatalogStore(services.CatalogStoreOptions{
		API:      api,
		Redis:    redisCli,
		CacheTTL: time.Duration(config.App.CacheTTLMinutes) * time.Minute,
		Logger:   log,
	})
	bookingRegistry := services.NewBookingStoreRegistry(services.BookingStoreOptions{API: api, Logger: log})
	jobs.SetBookingStorePruner(bookingRegistry)
	adminStore := services.NewAdminStore(services.AdminStoreOptions{API: api, Logger: log})

	authController := controllers.NewAuthController(api, persister, log)
	roomController := controllers.NewRoomController(catalogStore)
	bookingController := controllers.NewBookingController(bookingRegistry, catalogStore)
	adminController := controllers.NewAdminController(api, adminStore)
	paymentController := controllers.NewPaymentController()

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/google", authController.AuthGoogle)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.GET("/auth/me", authController.Me)
	v1.PATCH("/profile", middlewares.AuthMiddleware(), authController.UpdateProfile)

	v1.GET("/rooms", roomController.GetRoomsPage)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/:id", roomController.GetRoomTypeDetail)

	v1.GET("/booking/availability", bookingController.CheckAvailability)
	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.SubmitBooking)
	v1.GET("/booking/my", middlewares.AuthMiddleware(), bookingController.GetMyBookings)
	v1.PATCH("/booking/cancel/:id", middlewares.AuthMiddleware(), bookingController.CancelMyBooking)

	v1.GET("/payment-results", paymentController.GetPaymentResult)

	admin := v1.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/stats", adminController.GetDashboardStats)
	admin.GET("/bookings", adminController.GetBookings)
	admin.PATCH("/bookings/cancel/:id", adminController.CancelBooking)
	admin.GET("/users", adminController.GetUsers)
	admin.PATCH("/users/:id/status", adminController.UpdateUserStatus)
	admin.PATCH("/users/:id/role", adminController.UpdateUserRole)
	admin.DELETE("/users/:id", adminController.DeleteUser)
	admin.POST("/roomTypes", adminController.CreateRoomType)
	admin.PATCH("/roomTypes/:id", adminController.UpdateRoomType)
	admin.DELETE("/roomTypes/:id", adminController.DeleteRoomType)
	admin.POST("/rooms", adminController.CreateRoom)
	admin.PATCH("/rooms/:id", adminController.UpdateRoom)
	admin.DELETE("/rooms/:id", adminController.DeleteRoom)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
