package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/internal/storage"
)

// HotspotUpdateRequest replaces a floor's hotspot collections. Nil fields
// leave the corresponding collection untouched.
type HotspotUpdateRequest struct {
	TopViewHotspots []models.Hotspot            `json:"topViewHotspots"`
	AngleHotspots   map[string][]models.Hotspot `json:"angleHotspots"`
}

func GetFloors(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := floors.GetAll(ctx)
		if err != nil {
			log.Println("[FLOOR] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetFloor(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		floor, err := floors.Get(ctx, c.Param("id"))
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}
		c.JSON(http.StatusOK, floor)
	}
}

func CreateFloor(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var floor models.Floor
		if err := parseEntityPart(c, "floor", &floor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		model, err := optionalFilePart(c, "model")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := floors.Create(ctx, &floor, model)
		if err != nil {
			log.Println("[FLOOR] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func UpdateFloor(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var floor models.Floor
		if err := parseEntityPart(c, "floor", &floor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		model, err := optionalFilePart(c, "model")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := floors.Update(ctx, c.Param("id"), &floor, model); err != nil {
			log.Println("[FLOOR] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func CreateFloorSimple(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var floor models.Floor
		if err := c.ShouldBindJSON(&floor); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if _, err := floors.Create(ctx, &floor, nil); err != nil {
			log.Println("[FLOOR] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, floor)
	}
}

func UpdateFloorSimple(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var floor models.Floor
		if err := c.ShouldBindJSON(&floor); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id := c.Param("id")
		if err := floors.Update(ctx, id, &floor, nil); err != nil {
			log.Println("[FLOOR] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		floor.ID = id
		c.JSON(http.StatusOK, floor)
	}
}

func UpdateFloorHotspots(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HotspotUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := floors.UpdateHotspots(ctx, c.Param("id"), req.TopViewHotspots, req.AngleHotspots); err != nil {
			log.Println("[FLOOR] [ERROR] hotspot update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func DeleteFloor(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := floors.Delete(ctx, c.Param("id")); err != nil {
			log.Println("[FLOOR] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func GetFloorsByStatus(floors *services.FloorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := floors.ByStatus(ctx, c.Param("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// Floor image endpoints operate on the floors/{floorId}/ namespace in object
// storage and never touch the floor document itself.

func GetFloorImages(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		urls, err := media.ListFloorImages(ctx, c.Param("id"))
		if err != nil {
			log.Println("[FLOOR] [ERROR] image list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, urls)
	}
}

// UploadFloorImages stores each file under the floor's namespace with its
// original filename and returns the resulting URLs.
func UploadFloorImages(media *storage.MediaService) gin.HandlerFunc {
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

		ctx, cancel := requestContext(c)
		defer cancel()

		floorID := c.Param("id")
		urls := make([]string, 0, len(files))
		for _, file := range files {
			url, err := media.UploadFloorImage(ctx, floorID, file.Name, file.Data, file.ContentType)
			if err != nil {
				log.Println("[FLOOR] [ERROR] image upload failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
				return
			}
			urls = append(urls, url)
		}
		c.JSON(http.StatusOK, urls)
	}
}

func GetFloorImageDetails(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		infos, err := media.FloorImageDetails(ctx, c.Param("id"))
		if err != nil {
			log.Println("[FLOOR] [ERROR] image details failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, infos)
	}
}

// UploadFloorImage stores a single image, honoring an optional caller-chosen
// fileName form field.
func UploadFloorImage(media *storage.MediaService) gin.HandlerFunc {
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

		fileName := strings.TrimSpace(c.PostForm("fileName"))
		if fileName == "" {
			fileName = file.Name
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		floorID := c.Param("id")
		url, err := media.UploadFloorImage(ctx, floorID, fileName, file.Data, file.ContentType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		info, err := media.FloorImageInfo(ctx, floorID, fileName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"downloadUrl": url,
			"imageInfo":   info,
		})
	}
}

// UploadMultipleFloorImages uploads each file independently, reporting
// per-file failures without failing the whole batch.
func UploadMultipleFloorImages(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "multipart form required"})
			return
		}
		headers := form.File["files"]

		ctx, cancel := requestContext(c)
		defer cancel()

		floorID := c.Param("id")
		uploaded := make([]gin.H, 0, len(headers))
		uploadErrors := make([]string, 0)

		for _, header := range headers {
			file, err := readUploadedFile(header)
			if err != nil {
				uploadErrors = append(uploadErrors, fmt.Sprintf("Failed to upload %s: %v", header.Filename, err))
				continue
			}

			url, err := media.UploadFloorImage(ctx, floorID, file.Name, file.Data, file.ContentType)
			if err != nil {
				uploadErrors = append(uploadErrors, fmt.Sprintf("Failed to upload %s: %v", file.Name, err))
				continue
			}
			info, err := media.FloorImageInfo(ctx, floorID, file.Name)
			if err != nil {
				uploadErrors = append(uploadErrors, fmt.Sprintf("Failed to upload %s: %v", file.Name, err))
				continue
			}

			uploaded = append(uploaded, gin.H{
				"fileName":    file.Name,
				"downloadUrl": url,
				"imageInfo":   info,
			})
		}

		response := gin.H{
			"success":        len(uploadErrors) == 0,
			"uploadedImages": uploaded,
			"uploadedCount":  len(uploaded),
			"totalCount":     len(headers),
		}
		if len(uploadErrors) > 0 {
			response["errors"] = uploadErrors
		}
		c.JSON(http.StatusOK, response)
	}
}

func DeleteFloorImage(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := media.DeleteFloorImage(ctx, c.Param("id"), c.Param("fileName")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to delete image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
	}
}

// RenameFloorImage copies then deletes; a missing source fails with no writes.
func RenameFloorImage(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		newName := strings.TrimSpace(c.Query("newFileName"))
		if newName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "newFileName is required"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		floorID := c.Param("id")
		if err := media.RenameFloorImage(ctx, floorID, c.Param("fileName"), newName); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to rename image"})
			return
		}

		info, err := media.FloorImageInfo(ctx, floorID, newName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to rename image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Image renamed successfully",
			"imageInfo": info,
		})
	}
}

func GetFloorImageInfo(media *storage.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		info, err := media.FloorImageInfo(ctx, c.Param("id"), c.Param("fileName"))
		if err != nil {
			if errors.Is(err, storage.ErrObjectMissing) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
