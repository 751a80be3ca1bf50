package routes

import (
	"context"
	"net/http"

	"lesnoy/config"
	"lesnoy/constants"
	"lesnoy/controllers"
	middlewares "lesnoy/middleware"
	"lesnoy/services"
	"lesnoy/services/logger"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	controllers.SetNotifier(services.NewNotifier(m, logger.NewDefaultLogger(logger.InfoLevel)))

	v1 := router.Group("/api/v1")

	// Public site
	v1.GET("/home", controllers.GetHome)

	v1.GET("/houses", controllers.GetAllHouses)
	v1.GET("/houses/:id", controllers.GetHouseDetail)
	v1.GET("/houses/search", controllers.SearchHouses)

	v1.POST("/check-availability", controllers.CheckAvailability)
	v1.POST("/calculate-price", controllers.CalculatePrice)
	v1.POST("/bookings", controllers.CreateBooking)
	v1.GET("/bookings/:code", controllers.GetBookingByCode)

	v1.GET("/reviews", controllers.GetReviews)
	v1.POST("/reviews", controllers.CreateReview)

	v1.GET("/gallery", controllers.GetGallery)

	v1.GET("/contact", controllers.GetContact)
	v1.POST("/contact-message", controllers.SubmitContactMessage)

	v1.POST("/auth/login", controllers.Login)
	v1.GET("/profile", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.GetProfile)

	// Staff
	admin := v1.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin))

	admin.POST("/houses", controllers.CreateHouse)
	admin.PUT("/houses/:id", controllers.UpdateHouse)
	admin.DELETE("/houses/:id", controllers.DeleteHouse)

	admin.GET("/bookings", controllers.GetBookings)
	admin.PUT("/bookingStatus", controllers.ChangeBookingStatus)

	admin.GET("/reviews", controllers.GetAllReviews)
	admin.PUT("/reviewStatus", controllers.ChangeReviewStatus)
	admin.DELETE("/reviews/:id", controllers.DeleteReview)

	admin.POST("/gallery", controllers.CreateGalleryImage)
	admin.PUT("/gallery/:id", controllers.UpdateGalleryImage)
	admin.DELETE("/gallery/:id", controllers.DeleteGalleryImage)

	admin.POST("/contact", controllers.CreateContact)
	admin.PUT("/contact", controllers.UpdateContact)
	admin.DELETE("/contact", controllers.DeleteContact)

	admin.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "houses"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	admin.POST("/img/multi-upload", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "gallery"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})
}
