package attribute

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "product", want: KindProduct},
		{in: "Variant", want: KindVariant},
		{in: "productvariant", want: KindVariant},
		{in: "product_variant", want: KindVariant},
		{in: " page ", want: KindPage},
		{in: "category", want: KindCategory},
		{in: "collection", want: KindCollection},
		{in: "warehouse", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedEntity) {
					t.Fatalf("ParseKind(%q) error = %v, want ErrUnsupportedEntity", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInstanceConstructors(t *testing.T) {
	settings := NewSiteSettings(1)

	tests := []struct {
		name     string
		instance Instance
		kind     Kind
		scope    int64
	}{
		{"product", ProductInstance(10, 2), KindProduct, 2},
		{"variant", VariantInstance(11, 2), KindVariant, 2},
		{"page", PageInstance(12, 3), KindPage, 3},
		{"category", CategoryInstance(13, settings), KindCategory, 1},
		{"collection", CollectionInstance(14, settings), KindCollection, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.instance.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", tt.instance.Kind(), tt.kind)
			}
			if tt.instance.ScopeID() != tt.scope {
				t.Errorf("ScopeID() = %d, want %d", tt.instance.ScopeID(), tt.scope)
			}
			if !tt.instance.Supported() {
				t.Error("Supported() = false")
			}
		})
	}
}

func TestInstance_ZeroValueUnsupported(t *testing.T) {
	var i Instance
	if i.Supported() {
		t.Error("zero Instance should be unsupported")
	}
}

func TestKind_UsesSiteSettings(t *testing.T) {
	for _, k := range Kinds() {
		want := k == KindCategory || k == KindCollection
		if k.UsesSiteSettings() != want {
			t.Errorf("%s.UsesSiteSettings() = %v, want %v", k, k.UsesSiteSettings(), want)
		}
	}
}
