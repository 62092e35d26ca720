package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetEmployeeDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/employees/user-7" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok","data":{"id":7,"name":"Amina Diallo","role":"site-engineer","email":"amina@example.com"}}`))
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL)
	emp, err := client.GetEmployee(context.Background(), "user-7")
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	// Numeric id in the payload must come back as its textual form.
	if emp.ID != "7" {
		t.Fatalf("expected id \"7\", got %q", emp.ID)
	}
	if emp.Name != "Amina Diallo" || emp.Role != "site-engineer" {
		t.Fatalf("unexpected employee: %+v", emp)
	}
}

func TestGetEmployeeStringIDTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"u-42","name":"Jonas Weber"}}`))
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL)
	emp, err := client.GetEmployee(context.Background(), "u-42")
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	if emp.ID != "u-42" {
		t.Fatalf("expected id \"u-42\", got %q", emp.ID)
	}
}

func TestGetEmployeeNon2xxSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such employee"}`))
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL)
	if _, err := client.GetEmployee(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
