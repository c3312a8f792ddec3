package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/services"
	"estate-backend/internal/storage"
)

// UploadMedia stores a binary asset under the folder mapped from the type
// segment ("3d" goes to models, anything else to images) and returns a signed
// URL for it.
func UploadMedia(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		file, err := readUploadedFile(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		mediaType := c.Param("type")
		folder := storage.FolderForType(mediaType)

		url, err := media.Upload(ctx, file.Name, file.Data, file.ContentType, folder)
		if err != nil {
			log.Println("[MEDIA] [ERROR] upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url, "type": mediaType})
	}
}

func DeleteMedia(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		objectPath := storage.FolderForType(c.Param("type")) + "/" + c.Param("fileName")
		if err := media.Delete(ctx, objectPath); err != nil {
			log.Println("[MEDIA] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func GetMediaURL(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		mediaType := c.Param("type")
		objectPath := storage.FolderForType(mediaType) + "/" + c.Param("fileName")

		exists, err := media.Exists(ctx, objectPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		url, err := media.SignedURL(objectPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url, "type": mediaType})
	}
}

func CheckMediaExists(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		objectPath := storage.FolderForType(c.Param("type")) + "/" + c.Param("fileName")
		exists, err := media.Exists(ctx, objectPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"exists": exists})
	}
}

func GetApartmentPictures(pictures *services.PictureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := pictures.ByApartment(ctx, c.Param("apartmentId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UploadApartmentPictures appends uploaded images to the apartment's gallery
// after the current maximum order index.
func UploadApartmentPictures(pictures *services.PictureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
			return
		}
		files, err := readUploadedFiles(form.File["files"])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "files are required"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		uploaded, err := pictures.UploadPictures(ctx, c.Param("apartmentId"), files)
		if err != nil {
			log.Println("[PICTURE] [ERROR] upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, uploaded)
	}
}

type ReorderRequest struct {
	PictureIDs []string `json:"pictureIds" binding:"required"`
}

// ReorderApartmentPictures reassigns zero-based order integers following the
// supplied id sequence.
func ReorderApartmentPictures(pictures *services.PictureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := pictures.Reorder(ctx, c.Param("apartmentId"), req.PictureIDs); err != nil {
			log.Println("[PICTURE] [ERROR] reorder failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func DeletePicture(pictures *services.PictureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := pictures.Delete(ctx, c.Param("id")); err != nil {
			log.Println("[PICTURE] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}
