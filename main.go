package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/bootstrap"
	"estate-backend/internal/config"
	"estate-backend/internal/gcp"
	"estate-backend/internal/handlers"
	"estate-backend/internal/middleware"
	"estate-backend/internal/repository"
	"estate-backend/internal/services"
	"estate-backend/internal/storage"
)

func main() {
	config.Load()

	ctx := context.Background()

	fsClient, err := gcp.NewFirestoreClient(ctx, config.AppEnv.ProjectID)
	if err != nil {
		log.Fatal(err)
	}
	defer fsClient.Close()

	gcsClient, err := gcp.NewStorageClient(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer gcsClient.Close()

	log.Println("Firestore connected to project:", config.AppEnv.ProjectID)

	media := storage.NewMediaService(gcsClient, config.AppEnv.StorageBucket)

	userService := services.NewUserService(repository.Users(fsClient))
	authService := services.NewAuthService(userService, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL)
	floorService := services.NewFloorService(repository.Floors(fsClient), media)
	apartmentService := services.NewApartmentService(repository.Apartments(fsClient), media)
	buyerService := services.NewBuyerService(repository.Buyers(fsClient))
	pictureService := services.NewPictureService(repository.Pictures(fsClient), media)

	if err := bootstrap.Run(ctx, bootstrap.Deps{
		Client:        fsClient,
		Users:         userService,
		Floors:        floorService,
		Apartments:    apartmentService,
		Buyers:        buyerService,
		AdminEmail:    config.AppEnv.AdminEmail,
		AdminPassword: config.AppEnv.AdminPassword,
	}); err != nil {
		log.Println("⚠️ bootstrap warning:", err)
	}

	adminOnly := middleware.AdminAuth(config.AppEnv.JWTSecret)

	r := gin.Default()

	api := r.Group("/api")

	api.POST("/auth/login", handlers.Login(authService))
	api.POST("/auth/register", handlers.Register(authService))

	apartments := api.Group("/apartments")
	{
		apartments.GET("", handlers.GetApartments(apartmentService))
		apartments.GET("/:id", handlers.GetApartment(apartmentService))
		apartments.GET("/status/:status", handlers.GetApartmentsByStatus(apartmentService))
		apartments.GET("/floor/:floorId", handlers.GetApartmentsByFloor(apartmentService))
		apartments.GET("/type/:type", handlers.GetApartmentsByType(apartmentService))
		apartments.GET("/price", handlers.GetApartmentsByPriceRange(apartmentService))

		apartments.POST("", adminOnly, handlers.CreateApartment(apartmentService))
		apartments.POST("/simple", adminOnly, handlers.CreateApartmentSimple(apartmentService))
		apartments.PUT("/:id", adminOnly, handlers.UpdateApartment(apartmentService))
		apartments.PUT("/:id/simple", adminOnly, handlers.UpdateApartmentSimple(apartmentService))
		apartments.DELETE("/:id", adminOnly, handlers.DeleteApartment(apartmentService))
	}

	floors := api.Group("/floors")
	{
		floors.GET("", handlers.GetFloors(floorService))
		floors.GET("/:id", handlers.GetFloor(floorService))
		floors.GET("/status/:status", handlers.GetFloorsByStatus(floorService))
		floors.GET("/:id/images", handlers.GetFloorImages(media))
		floors.GET("/:id/images/details", handlers.GetFloorImageDetails(media))
		floors.GET("/:id/images/:fileName/info", handlers.GetFloorImageInfo(media))

		floors.POST("", adminOnly, handlers.CreateFloor(floorService))
		floors.POST("/simple", adminOnly, handlers.CreateFloorSimple(floorService))
		floors.PUT("/:id", adminOnly, handlers.UpdateFloor(floorService))
		floors.PUT("/:id/simple", adminOnly, handlers.UpdateFloorSimple(floorService))
		floors.PUT("/:id/hotspots", adminOnly, handlers.UpdateFloorHotspots(floorService))
		floors.DELETE("/:id", adminOnly, handlers.DeleteFloor(floorService))

		floors.POST("/:id/images", adminOnly, handlers.UploadFloorImages(media))
		floors.POST("/:id/images/upload", adminOnly, handlers.UploadFloorImage(media))
		floors.POST("/:id/images/upload-multiple", adminOnly, handlers.UploadMultipleFloorImages(media))
		floors.PUT("/:id/images/:fileName/rename", adminOnly, handlers.RenameFloorImage(media))
		floors.DELETE("/:id/images/:fileName", adminOnly, handlers.DeleteFloorImage(media))
	}

	buyers := api.Group("/buyers")
	{
		// Public contact form submission; everything else is back office.
		buyers.POST("", handlers.CreateBuyer(buyerService))

		buyers.GET("", adminOnly, handlers.GetBuyers(buyerService))
		buyers.GET("/:id", adminOnly, handlers.GetBuyer(buyerService))
		buyers.GET("/status/:status", adminOnly, handlers.GetBuyersByStatus(buyerService))
		buyers.GET("/apartment/:apartmentId", adminOnly, handlers.GetBuyersByApartment(buyerService))
		buyers.GET("/date-range", adminOnly, handlers.GetBuyersByDateRange(buyerService))
		buyers.PUT("/:id", adminOnly, handlers.UpdateBuyer(buyerService))
		buyers.DELETE("/:id", adminOnly, handlers.DeleteBuyer(buyerService))
	}

	users := api.Group("/users")
	users.Use(adminOnly)
	{
		users.POST("", handlers.CreateUser(userService))
		users.GET("", handlers.GetUsers(userService))
		users.GET("/:id", handlers.GetUser(userService))
		users.PUT("/:id", handlers.UpdateUser(userService))
		users.DELETE("/:id", handlers.DeleteUser(userService))
	}

	mediaRoutes := api.Group("/media")
	{
		mediaRoutes.GET("/url/:type/:fileName", handlers.GetMediaURL(media))
		mediaRoutes.GET("/exists/:type/:fileName", handlers.CheckMediaExists(media))

		mediaRoutes.POST("/upload/:type", adminOnly, handlers.UploadMedia(media))
		mediaRoutes.DELETE("/:type/:fileName", adminOnly, handlers.DeleteMedia(media))
	}

	pictures := api.Group("/pictures")
	{
		pictures.GET("/apartment/:apartmentId", handlers.GetApartmentPictures(pictureService))

		pictures.POST("/apartment/:apartmentId", adminOnly, handlers.UploadApartmentPictures(pictureService))
		pictures.PUT("/apartment/:apartmentId/reorder", adminOnly, handlers.ReorderApartmentPictures(pictureService))
		pictures.DELETE("/:id", adminOnly, handlers.DeletePicture(pictureService))
	}

	port := config.AppEnv.Port
	log.Println("listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
