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
	ProviderName = "foodcart-api"
	ConsumerName = "order-admin-portal"

	StateMenuSeeded   = "menu catalog seeded"
	StateOrderMissing = "no order with id 404"
)

const (
	BurgerProductID int64 = 10
	FriesProductID  int64 = 11

	MissingOrderID int64 = 404
)

const (
	exampleFirstname = "Ivan"
	exampleLastname  = "Petrov"
	examplePhone     = "+79991234567"
	exampleAddress   = "Lenina 1"
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

// PactFile returns the canonical pact file path for the admin portal consumer.
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

// ExampleOrderSubmission provides stable intake data for pact interactions.
func ExampleOrderSubmission() map[string]any {
	return map[string]any{
		"firstname":   exampleFirstname,
		"lastname":    exampleLastname,
		"phonenumber": examplePhone,
		"address":     exampleAddress,
		"products": []map[string]any{
			{"product": BurgerProductID, "quantity": 2},
			{"product": FriesProductID, "quantity": 1},
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
