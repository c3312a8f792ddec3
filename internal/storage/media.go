package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// ErrObjectMissing is returned when an operation targets a blob that does not
// exist in the bucket.
var ErrObjectMissing = errors.New("storage object not found")

const signedURLTTL = 7 * 24 * time.Hour

// imageExtensions are the suffixes counted as floor images when listing a
// floor's namespace. Detail listings additionally accept gif and bmp.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
var detailImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp"}

// FloorImageInfo describes one blob under a floor's image namespace.
type FloorImageInfo struct {
	Name        string    `json:"name"`
	FullPath    string    `json:"fullPath"`
	DownloadURL string    `json:"downloadUrl"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	UploadDate  time.Time `json:"uploadDate"`
	IsImage     bool      `json:"isImage"`
}

// MediaService owns all object-storage access: generic uploads, 3D model
// blobs referenced from entities, and the per-floor image namespace
// (floors/{floorId}/...).
type MediaService struct {
	client *gcs.Client
	bucket string
}

func NewMediaService(client *gcs.Client, bucket string) *MediaService {
	return &MediaService{client: client, bucket: bucket}
}

// FolderForType maps a media type segment to a storage folder: "3d" goes to
// models, anything else to images.
func FolderForType(mediaType string) string {
	if mediaType == "3d" {
		return "models"
	}
	return "images"
}

// Upload stores bytes under folder with a collision-resistant name derived
// from the original filename's extension, and returns a 7-day signed URL.
func (m *MediaService) Upload(ctx context.Context, originalName string, data []byte, contentType, folder string) (string, error) {
	objectPath := folder + "/" + uniqueFileName(originalName)
	if err := m.write(ctx, objectPath, data, contentType); err != nil {
		return "", err
	}
	return m.SignedURL(objectPath)
}

// UploadFile stores a blob at the bucket root, prefixing the original
// filename with a random identifier, and returns its public URL. Used for 3D
// models and apartment pictures referenced from entity documents.
func (m *MediaService) UploadFile(ctx context.Context, originalName string, data []byte, contentType string) (string, error) {
	objectPath := uuid.NewString() + "_" + originalName
	if err := m.write(ctx, objectPath, data, contentType); err != nil {
		return "", err
	}
	return m.PublicURL(objectPath), nil
}

// UploadToPath stores bytes at an exact object path and returns its public URL.
func (m *MediaService) UploadToPath(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if err := m.write(ctx, objectPath, data, contentType); err != nil {
		return "", err
	}
	return m.PublicURL(objectPath), nil
}

func (m *MediaService) write(ctx context.Context, objectPath string, data []byte, contentType string) error {
	writer := m.client.Bucket(m.bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		log.Printf("[MEDIA] [ERROR] write %s failed: %v", objectPath, err)
		return fmt.Errorf("writing object %s: %w", objectPath, err)
	}
	if err := writer.Close(); err != nil {
		log.Printf("[MEDIA] [ERROR] finalize %s failed: %v", objectPath, err)
		return fmt.Errorf("finalizing object %s: %w", objectPath, err)
	}
	return nil
}

// Delete removes a blob. A missing blob is not an error; entity deletion
// treats blob cleanup as best-effort.
func (m *MediaService) Delete(ctx context.Context, objectPath string) error {
	err := m.client.Bucket(m.bucket).Object(objectPath).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("deleting object %s: %w", objectPath, err)
	}
	return nil
}

// DeleteByURL deletes the blob a model URL points at. Only the final path
// segment is used, matching how model blobs are named at the bucket root.
func (m *MediaService) DeleteByURL(ctx context.Context, fileURL string) error {
	return m.Delete(ctx, ObjectNameFromURL(fileURL))
}

// ObjectNameFromURL extracts the final path segment of a storage URL.
func ObjectNameFromURL(fileURL string) string {
	if idx := strings.LastIndex(fileURL, "/"); idx >= 0 {
		return fileURL[idx+1:]
	}
	return fileURL
}

func (m *MediaService) PublicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", m.bucket, objectPath)
}

// SignedURL returns a time-limited download URL for a private blob.
func (m *MediaService) SignedURL(objectPath string) (string, error) {
	url, err := m.client.Bucket(m.bucket).SignedURL(objectPath, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(signedURLTTL),
	})
	if err != nil {
		return "", fmt.Errorf("signing url for %s: %w", objectPath, err)
	}
	return url, nil
}

func (m *MediaService) Exists(ctx context.Context, objectPath string) (bool, error) {
	_, err := m.client.Bucket(m.bucket).Object(objectPath).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking object %s: %w", objectPath, err)
	}
	return true, nil
}

func floorPrefix(floorID string) string {
	return "floors/" + floorID + "/"
}

// ListFloorImages returns signed URLs for every image blob under the floor's
// namespace, sorted by object name to keep a stable order.
func (m *MediaService) ListFloorImages(ctx context.Context, floorID string) ([]string, error) {
	urls := make([]string, 0)

	names, err := m.listObjects(ctx, floorPrefix(floorID))
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if !hasImageExtension(name, imageExtensions) {
			continue
		}
		url, err := m.SignedURL(name)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls, nil
}

// FloorImageDetails returns full metadata for every image under the floor's
// namespace, sorted by filename.
func (m *MediaService) FloorImageDetails(ctx context.Context, floorID string) ([]FloorImageInfo, error) {
	infos := make([]FloorImageInfo, 0)

	it := m.client.Bucket(m.bucket).Objects(ctx, &gcs.Query{Prefix: floorPrefix(floorID)})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing floor %s images: %w", floorID, err)
		}
		if !hasImageExtension(attrs.Name, detailImageExtensions) {
			continue
		}

		url, err := m.SignedURL(attrs.Name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, FloorImageInfo{
			Name:        path.Base(attrs.Name),
			FullPath:    attrs.Name,
			DownloadURL: url,
			Size:        attrs.Size,
			ContentType: attrs.ContentType,
			UploadDate:  attrs.Created,
			IsImage:     true,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (m *MediaService) listObjects(ctx context.Context, prefix string) ([]string, error) {
	names := make([]string, 0)

	it := m.client.Bucket(m.bucket).Objects(ctx, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects under %s: %w", prefix, err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// UploadFloorImage stores an image under the floor's namespace, keeping the
// caller-supplied filename, and returns the public URL.
func (m *MediaService) UploadFloorImage(ctx context.Context, floorID, fileName string, data []byte, contentType string) (string, error) {
	return m.UploadToPath(ctx, floorPrefix(floorID)+fileName, data, contentType)
}

func (m *MediaService) DeleteFloorImage(ctx context.Context, floorID, fileName string) error {
	err := m.client.Bucket(m.bucket).Object(floorPrefix(floorID) + fileName).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrObjectMissing
	}
	if err != nil {
		return fmt.Errorf("deleting floor image %s/%s: %w", floorID, fileName, err)
	}
	return nil
}

// RenameFloorImage copies the blob to the new name and deletes the original.
// The two steps are not atomic; a crash in between leaves the copy behind.
// A missing source returns ErrObjectMissing with no writes performed.
func (m *MediaService) RenameFloorImage(ctx context.Context, floorID, oldName, newName string) error {
	bucket := m.client.Bucket(m.bucket)
	src := bucket.Object(floorPrefix(floorID) + oldName)
	dst := bucket.Object(floorPrefix(floorID) + newName)

	if _, err := src.Attrs(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return ErrObjectMissing
		}
		return fmt.Errorf("checking floor image %s/%s: %w", floorID, oldName, err)
	}

	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return fmt.Errorf("copying floor image %s/%s: %w", floorID, oldName, err)
	}
	if err := src.Delete(ctx); err != nil {
		return fmt.Errorf("removing renamed floor image %s/%s: %w", floorID, oldName, err)
	}
	return nil
}

// FloorImageInfo returns metadata for one blob under the floor's namespace,
// or ErrObjectMissing.
func (m *MediaService) FloorImageInfo(ctx context.Context, floorID, fileName string) (*FloorImageInfo, error) {
	objectPath := floorPrefix(floorID) + fileName

	attrs, err := m.client.Bucket(m.bucket).Object(objectPath).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, ErrObjectMissing
	}
	if err != nil {
		return nil, fmt.Errorf("checking floor image %s/%s: %w", floorID, fileName, err)
	}

	url, err := m.SignedURL(objectPath)
	if err != nil {
		return nil, err
	}
	return &FloorImageInfo{
		Name:        fileName,
		FullPath:    attrs.Name,
		DownloadURL: url,
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		UploadDate:  attrs.Created,
		IsImage:     hasImageExtension(fileName, detailImageExtensions),
	}, nil
}

func hasImageExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func uniqueFileName(originalName string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(originalName))
}
