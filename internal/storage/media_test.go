package storage

import (
	"strings"
	"testing"
)

func TestFolderForType(t *testing.T) {
	cases := []struct {
		mediaType string
		want      string
	}{
		{"3d", "models"},
		{"image", "images"},
		{"video", "images"},
		{"", "images"},
	}
	for _, tc := range cases {
		if got := FolderForType(tc.mediaType); got != tc.want {
			t.Fatalf("FolderForType(%q) = %q, want %q", tc.mediaType, got, tc.want)
		}
	}
}

func TestObjectNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://storage.googleapis.com/bucket/images/photo.jpg", "photo.jpg"},
		{"https://storage.googleapis.com/bucket/abc123_plan.png", "abc123_plan.png"},
		{"bare-object-name.webp", "bare-object-name.webp"},
	}
	for _, tc := range cases {
		if got := ObjectNameFromURL(tc.url); got != tc.want {
			t.Fatalf("ObjectNameFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestHasImageExtension(t *testing.T) {
	if !hasImageExtension("plan.JPG", imageExtensions) {
		t.Fatal("expected extension match to be case-insensitive")
	}
	if hasImageExtension("model.glb", imageExtensions) {
		t.Fatal("expected .glb to be rejected as an image")
	}
	if hasImageExtension("anim.gif", imageExtensions) {
		t.Fatal("expected .gif outside the listing extensions")
	}
	if !hasImageExtension("anim.gif", detailImageExtensions) {
		t.Fatal("expected .gif inside the detail extensions")
	}
}

func TestUniqueFileNameKeepsExtension(t *testing.T) {
	name := uniqueFileName("Floor Plan.PNG")
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected a lowercase .png suffix, got %q", name)
	}
	if strings.Contains(name, " ") {
		t.Fatalf("expected no spaces in generated name, got %q", name)
	}
	if name == uniqueFileName("Floor Plan.PNG") {
		t.Fatal("expected distinct names for repeated uploads")
	}
}

func TestUniqueFileNameNoExtension(t *testing.T) {
	name := uniqueFileName("README")
	if strings.Contains(name, ".") {
		t.Fatalf("expected no extension, got %q", name)
	}
}

func TestFloorPrefix(t *testing.T) {
	if got := floorPrefix("floor-1"); got != "floors/floor-1/" {
		t.Fatalf("expected floors/floor-1/, got %q", got)
	}
}

func TestPublicURL(t *testing.T) {
	m := &MediaService{bucket: "estate-media"}
	want := "https://storage.googleapis.com/estate-media/images/photo.jpg"
	if got := m.PublicURL("images/photo.jpg"); got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
