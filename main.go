package main

import (
	"log"
	"net/http"

	"lesnoy/config"
	"lesnoy/constants"
	"lesnoy/jobs"
	"lesnoy/models"
	"lesnoy/routes"
	"lesnoy/services"

	"github.com/gin-gonic/gin"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.House{},
		&models.Booking{},
		&models.Review{},
		&models.GalleryImage{},
		&models.Contact{},
		&models.User{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

// seedAdminUser creates the first staff account from the environment
// when the users table is empty.
func seedAdminUser() {
	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count staff accounts: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := config.GetEnv("ADMIN_EMAIL")
	password := config.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hash,
		Role:     constants.RoleAdmin,
		Status:   constants.UserStatusActive,
	}
	if err := admin.ValidateRole(); err != nil {
		log.Printf("Refusing to seed admin account: %v", err)
		return
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", email)
}

func main() {
	config.LoadEnv()

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()
	seedAdminUser()

	jobs.InitCronJobs(c)

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
