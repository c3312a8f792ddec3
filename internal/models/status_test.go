package models

import "testing"

func TestApartmentStatusValid(t *testing.T) {
	for _, status := range []ApartmentStatus{ApartmentAvailable, ApartmentReserved, ApartmentSold} {
		if !status.Valid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []ApartmentStatus{"", "available", "PENDING"} {
		if status.Valid() {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestBuyerStatusValid(t *testing.T) {
	valid := []BuyerStatus{BuyerInterested, BuyerContacted, BuyerNegotiating, BuyerPurchased, BuyerNotInterested}
	for _, status := range valid {
		if !status.Valid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if BuyerStatus("MAYBE").Valid() {
		t.Fatal("expected MAYBE to be invalid")
	}
}
