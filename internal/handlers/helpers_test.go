package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
)

func multipartContext(t *testing.T, build func(w *multipart.Writer)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	build(writer)
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/apartments", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseEntityPartDecodesJSONField(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("apartment", `{"lotNumber":"101","price":250000,"status":"AVAILABLE"}`)
	})

	var apartment models.Apartment
	if err := parseEntityPart(c, "apartment", &apartment); err != nil {
		t.Fatalf("parseEntityPart returned error: %v", err)
	}
	if apartment.LotNumber != "101" || apartment.Price != 250000 {
		t.Fatalf("unexpected apartment: %+v", apartment)
	}
	if apartment.Status != models.ApartmentAvailable {
		t.Fatalf("expected status AVAILABLE, got %q", apartment.Status)
	}
}

func TestParseEntityPartMissingPart(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("other", "{}")
	})

	var apartment models.Apartment
	if err := parseEntityPart(c, "apartment", &apartment); err == nil {
		t.Fatal("expected error when the apartment part is absent")
	}
}

func TestParseEntityPartInvalidJSON(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("floor", "{not json")
	})

	var floor models.Floor
	if err := parseEntityPart(c, "floor", &floor); err == nil {
		t.Fatal("expected error for malformed floor payload")
	}
}

func TestOptionalFilePartAbsent(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("apartment", "{}")
	})

	file, err := optionalFilePart(c, "model")
	if err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
	if file != nil {
		t.Fatalf("expected nil file, got %+v", file)
	}
}

func TestOptionalFilePartPresent(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		part, err := w.CreateFormFile("model", "unit.glb")
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		_, _ = part.Write([]byte("binary model data"))
	})

	file, err := optionalFilePart(c, "model")
	if err != nil {
		t.Fatalf("optionalFilePart returned error: %v", err)
	}
	if file == nil || file.Name != "unit.glb" {
		t.Fatalf("unexpected file: %+v", file)
	}
	if string(file.Data) != "binary model data" {
		t.Fatalf("unexpected file contents: %q", file.Data)
	}
}

func TestLowerCamel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Email", "email"},
		{"LotNumber", "lotNumber"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := lowerCamel(tc.in); got != tc.want {
			t.Fatalf("lowerCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
