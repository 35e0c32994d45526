package repository

import "testing"

func strPtr(s string) *string { return &s }

func TestBuildRouteUpdateAllFields(t *testing.T) {
	query, args := buildRouteUpdate("route-1", RouteUpdate{
		Description:   strPtr("new description"),
		StartLocation: strPtr("Oslo"),
		EndLocation:   strPtr("Bergen"),
	})

	want := "UPDATE routes SET description=$1, start_location=$2, end_location=$3, updated_at=NOW() WHERE id=$4"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %d, want 4", len(args))
	}
	if args[0] != "new description" || args[1] != "Oslo" || args[2] != "Bergen" || args[3] != "route-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildRouteUpdateSubset(t *testing.T) {
	query, args := buildRouteUpdate("route-2", RouteUpdate{EndLocation: strPtr("Tromsø")})

	want := "UPDATE routes SET end_location=$1, updated_at=NOW() WHERE id=$2"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 2 || args[0] != "Tromsø" || args[1] != "route-2" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildRouteUpdateNoFields(t *testing.T) {
	query, args := buildRouteUpdate("route-3", RouteUpdate{})

	want := "UPDATE routes SET updated_at=NOW() WHERE id=$1"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 1 || args[0] != "route-3" {
		t.Fatalf("unexpected args: %v", args)
	}
}
