package fixture

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	want := []string{"colors", "kitchen", "large", "sink"}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	for _, name := range want {
		g, ok := r.Get(name)
		if !ok {
			t.Errorf("Get(%q) not found", name)
			continue
		}
		if g.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, g.Name())
		}
		if g.Description() == "" {
			t.Errorf("Get(%q) has empty description", name)
		}
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(\"missing\") should not be found")
	}

	all := r.All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d generators, want %d", len(all), len(want))
	}
	for i, g := range all {
		if g.Name() != want[i] {
			t.Errorf("All()[%d].Name() = %q, want %q", i, g.Name(), want[i])
		}
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(&KitchenSink{})
	r.Register(&KitchenSink{})

	if got := len(r.List()); got != 1 {
		t.Errorf("duplicate registration produced %d entries, want 1", got)
	}
}
