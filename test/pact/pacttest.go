//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "grubdash-api"
	ConsumerName = "grubdash-portal"

	StateDishesBaseline = "dishes baseline"
	StateDishExists     = "dish pact-dish exists"
	StateDishMissing    = "no dish with id ghost-dish"
	StatePendingOrder   = "pending order pact-order exists"
	StateDeliveredOrder = "delivered order pact-delivered exists"
)

const (
	ExistingDishID   = "pact-dish"
	MissingDishID    = "ghost-dish"
	PendingOrderID   = "pact-order"
	DeliveredOrderID = "pact-delivered"
)

const (
	exampleDishName = "Pact Pasta"
	exampleImageURL = "https://example.pact/dishes/pasta.png"
	exampleAddress  = "1 Contract Way"
	exampleMobile   = "(555) 010-0101"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleDishPayload provides stable dish data for pact interactions.
func ExampleDishPayload(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        exampleDishName,
		"description": "Fresh pasta verified by contract",
		"price":       12,
		"image_url":   exampleImageURL,
	}
}

// ExampleOrderPayload provides stable order data for pact interactions.
func ExampleOrderPayload(id, status string) map[string]any {
	return map[string]any{
		"id":           id,
		"deliverTo":    exampleAddress,
		"mobileNumber": exampleMobile,
		"status":       status,
		"dishes": []map[string]any{
			{"dishId": ExistingDishID, "quantity": 2},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
