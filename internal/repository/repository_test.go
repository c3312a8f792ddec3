package repository

import (
	"reflect"
	"testing"
	"time"

	"estate-backend/internal/models"
)

func TestToDocumentSkipsZeroOmitemptyFields(t *testing.T) {
	apartment := models.Apartment{
		LotNumber: "101",
		Price:     250000,
	}

	data := toDocument(&apartment)

	if data["lotNumber"] != "101" {
		t.Fatalf("expected lotNumber=101, got %v", data["lotNumber"])
	}
	if data["price"] != 250000.0 {
		t.Fatalf("expected price=250000, got %v", data["price"])
	}
	for _, absent := range []string{"floorId", "status", "description", "area", "createdAt"} {
		if _, ok := data[absent]; ok {
			t.Fatalf("expected zero field %q to be omitted, got %v", absent, data[absent])
		}
	}
}

func TestToDocumentKeepsZeroFieldsWithoutOmitempty(t *testing.T) {
	picture := models.Picture{ApartmentID: "apt-1", URL: "https://example.com/p.jpg"}

	data := toDocument(&picture)

	order, ok := data["order"]
	if !ok {
		t.Fatal("expected order=0 to be written even when zero")
	}
	if order != 0 {
		t.Fatalf("expected order=0, got %v", order)
	}

	user := models.User{Email: "a@b.com"}
	if enabled, ok := toDocument(&user)["enabled"]; !ok || enabled != false {
		t.Fatalf("expected enabled=false to be written, got %v (present=%v)", enabled, ok)
	}
}

func TestToDocumentUsesFirestoreTagNames(t *testing.T) {
	apartment := models.Apartment{FloorID: "floor-1", Model3DURL: "https://example.com/m.glb"}

	data := toDocument(&apartment)

	if data["floorId"] != "floor-1" {
		t.Fatalf("expected floorId key, got map %v", data)
	}
	if data["model3dUrl"] != "https://example.com/m.glb" {
		t.Fatalf("expected model3dUrl key, got map %v", data)
	}
}

func TestToDocumentPreservesTimeValues(t *testing.T) {
	contact := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	buyer := models.Buyer{Name: "Jane", ContactDate: contact}

	data := toDocument(&buyer)

	got, ok := data["contactDate"].(time.Time)
	if !ok {
		t.Fatalf("expected contactDate to stay a time.Time, got %T", data["contactDate"])
	}
	if !got.Equal(contact) {
		t.Fatalf("expected contactDate=%v, got %v", contact, got)
	}
}

func TestToDocumentNestedStructs(t *testing.T) {
	width := 10.0
	floor := models.Floor{
		Name: "First Floor",
		TopViewHotspots: []models.Hotspot{
			{ApartmentID: "apt-1", X: 25, Y: 40, Width: &width},
		},
	}

	data := toDocument(&floor)

	hotspots, ok := data["topViewHotspots"].([]models.Hotspot)
	if !ok {
		t.Fatalf("expected hotspot slice, got %T", data["topViewHotspots"])
	}
	if len(hotspots) != 1 || hotspots[0].X != 25 {
		t.Fatalf("unexpected hotspots: %+v", hotspots)
	}
}

func TestParseFirestoreTag(t *testing.T) {
	type sample struct {
		Plain      string `firestore:"plain"`
		Omit       string `firestore:"omit,omitempty"`
		Unnamed    string `firestore:",omitempty"`
		Ignored    string `firestore:"-"`
		NoTag      string
	}

	typ := reflect.TypeOf(sample{})

	cases := []struct {
		field     string
		name      string
		omitEmpty bool
	}{
		{"Plain", "plain", false},
		{"Omit", "omit", true},
		{"Unnamed", "Unnamed", true},
		{"Ignored", "-", false},
		{"NoTag", "NoTag", false},
	}
	for _, tc := range cases {
		field, _ := typ.FieldByName(tc.field)
		name, omitEmpty := parseFirestoreTag(field)
		if name != tc.name || omitEmpty != tc.omitEmpty {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", tc.field, tc.name, tc.omitEmpty, name, omitEmpty)
		}
	}
}

func TestUpdateDocumentNeverWritesIDOrCreatedAt(t *testing.T) {
	apartment := models.Apartment{
		ID:        "apt-1",
		LotNumber: "101",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data := updateDocument(&apartment)

	if _, ok := data["id"]; ok {
		t.Fatal("update map must not carry the id field")
	}
	if _, ok := data["createdAt"]; ok {
		t.Fatal("update map must not carry createdAt")
	}
	if _, ok := data["updatedAt"]; !ok {
		t.Fatal("update map must stamp updatedAt")
	}
	if data["lotNumber"] != "101" {
		t.Fatalf("expected lotNumber to survive, got %v", data["lotNumber"])
	}
}

func TestToDocumentNonStructInput(t *testing.T) {
	if data := toDocument("not a struct"); len(data) != 0 {
		t.Fatalf("expected empty map for non-struct input, got %v", data)
	}
	var nilApartment *models.Apartment
	if data := toDocument(nilApartment); len(data) != 0 {
		t.Fatalf("expected empty map for nil pointer, got %v", data)
	}
}
