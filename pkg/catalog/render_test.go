package catalog

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	entries := []Entry{
		{Ident: "ArrowUp", Name: "arrow-up", Path: "icons/arrow-up.svg", File: "arrow-up.svg"},
		{Ident: "Heart", Name: "heart", Path: "icons/heart.svg", File: "heart.svg"},
	}
	src, err := Render(entries, RenderOptions{Package: "demo", Dir: "assets"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by iconsgen from assets; DO NOT EDIT.",
		"package demo",
		`const AssetDir = "assets"`,
		"ArrowUp Icon = iota",
		"\tHeart\n",
		`{"arrow-up", "icons/arrow-up.svg"},`,
		`{"heart", "icons/heart.svg"},`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRequiresPackage(t *testing.T) {
	if _, err := Render(nil, RenderOptions{}); err == nil {
		t.Error("Render without a package name should fail")
	}
}

func TestRenderEmpty(t *testing.T) {
	src, err := Render(nil, RenderOptions{Package: "demo", Generator: "custom"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(src, []byte("// Code generated by custom")) {
		t.Errorf("header = %q", bytes.SplitN(src, []byte("\n"), 2)[0])
	}
}

// The checked-in table must be exactly what iconsgen produces for the
// bundled assets.
func TestRenderMatchesGeneratedIcons(t *testing.T) {
	const dir = "../assets/icons"
	entries, err := Scan(dir, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	src, err := Render(entries, RenderOptions{Package: "icons", Dir: dir})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	existing, err := os.ReadFile("../icons/icons_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, existing) {
		t.Error("pkg/icons/icons_gen.go is stale; run go generate ./pkg/icons")
	}
}
