package models

import "testing"

func boolPtr(v bool) *bool { return &v }

func validVisited() Destination {
	return Destination{
		Lat:     51.1,
		Lon:     17.0,
		Address: "Rynek 1",
		Country: "Poland",
		Type:    DestinationVisited,
		Visited: boolPtr(true),
	}
}

func TestDestinationValidateAcceptsBothVariants(t *testing.T) {
	visited := validVisited()
	if err := visited.Validate(); err != nil {
		t.Fatalf("expected visited destination to validate, got %v", err)
	}

	route := Destination{Lat: 45.4, Lon: 9.1, Address: "Via Roma 2", Country: "Italy", Type: DestinationRoute}
	if err := route.Validate(); err != nil {
		t.Fatalf("expected route destination to validate, got %v", err)
	}
}

func TestDestinationValidateRejectsNegativeCoordinates(t *testing.T) {
	dest := validVisited()
	dest.Lat = -1
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error for negative lat")
	}

	dest = validVisited()
	dest.Lon = -0.5
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error for negative lon")
	}
}

func TestDestinationValidateRejectsEmptyFields(t *testing.T) {
	dest := validVisited()
	dest.Address = ""
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error for empty address")
	}

	dest = validVisited()
	dest.Country = ""
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error for empty country")
	}
}

func TestDestinationValidateRejectsUnknownType(t *testing.T) {
	dest := validVisited()
	dest.Type = "wishlist"
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error for unknown type tag")
	}
}

func TestDestinationValidateRequiresVisitedFlag(t *testing.T) {
	dest := validVisited()
	dest.Visited = nil
	if err := dest.Validate(); err == nil {
		t.Fatal("expected error when visited variant lacks the visited flag")
	}

	// Route variant carries no visited payload and still validates.
	route := Destination{Lat: 1, Lon: 2, Address: "a", Country: "b", Type: DestinationRoute}
	if err := route.Validate(); err != nil {
		t.Fatalf("expected route without visited flag to validate, got %v", err)
	}
}
