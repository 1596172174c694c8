package seed

import (
	"testing"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

func TestRunSeedsEmptyCatalogOnce(t *testing.T) {
	st := store.NewMemory()

	created, err := Run(st)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != len(Catalog()) {
		t.Fatalf("created %d products, want %d", created, len(Catalog()))
	}

	// Second run is a no-op.
	created, err = Run(st)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created != 0 {
		t.Fatalf("second run created %d products", created)
	}

	count, _ := st.ProductCount()
	if count != int64(len(Catalog())) {
		t.Fatalf("catalog has %d products, want %d", count, len(Catalog()))
	}
}

func TestCatalogFixturesAreComplete(t *testing.T) {
	for _, p := range Catalog() {
		if p.Name == "" || p.Description == "" || p.ImageFile == "" {
			t.Errorf("incomplete product: %+v", p)
		}
		if p.Price <= 0 {
			t.Errorf("product %q has price %v", p.Name, p.Price)
		}
	}
}
