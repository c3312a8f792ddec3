package models

import "time"

// Hotspot is a clickable region overlaid on a floor plan image, linking a
// position to an apartment. X and Y are percentages in [0, 100].
type Hotspot struct {
	ApartmentID string   `firestore:"apartmentId,omitempty" json:"apartmentId,omitempty"`
	X           float64  `firestore:"x" json:"x"`
	Y           float64  `firestore:"y" json:"y"`
	Width       *float64 `firestore:"width,omitempty" json:"width,omitempty"`
	Height      *float64 `firestore:"height,omitempty" json:"height,omitempty"`
}

type Floor struct {
	ID              string               `firestore:"id,omitempty" json:"id,omitempty"`
	Name            string               `firestore:"name,omitempty" json:"name,omitempty"`
	Level           *int                 `firestore:"level,omitempty" json:"level,omitempty"`
	FloorNumber     *int                 `firestore:"floorNumber,omitempty" json:"floorNumber,omitempty"`
	BuildingID      string               `firestore:"buildingId,omitempty" json:"buildingId,omitempty"`
	Area            float64              `firestore:"area,omitempty" json:"area,omitempty"`
	Description     string               `firestore:"description,omitempty" json:"description,omitempty"`
	TotalApartments *int                 `firestore:"totalApartments,omitempty" json:"totalApartments,omitempty"`
	FloorPlanURL    string               `firestore:"floorPlanUrl,omitempty" json:"floorPlanUrl,omitempty"`
	Model3DURL      string               `firestore:"model3dUrl,omitempty" json:"model3dUrl,omitempty"`
	ImageURLs       []string             `firestore:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	ApartmentIDs    []string             `firestore:"apartmentIds,omitempty" json:"apartmentIds,omitempty"`
	TopViewHotspots []Hotspot            `firestore:"topViewHotspots,omitempty" json:"topViewHotspots,omitempty"`
	AngleHotspots   map[string][]Hotspot `firestore:"angleHotspots,omitempty" json:"angleHotspots,omitempty"`
	CreatedAt       time.Time            `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time            `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
