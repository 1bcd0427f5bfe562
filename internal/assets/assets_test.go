package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		asset   string
		wantErr bool
	}{
		{name: "simple", asset: "report"},
		{name: "with hyphen and underscore", asset: "my-theme_2"},
		{name: "empty", asset: "", wantErr: true},
		{name: "path traversal", asset: "../etc/passwd", wantErr: true},
		{name: "dot", asset: "report.css", wantErr: true},
		{name: "slash", asset: "styles/report", wantErr: true},
		{name: "too long", asset: strings.Repeat("a", MaxAssetNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.asset)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.asset, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.asset, err)
			}
		})
	}
}

func TestEmbeddedLoaderStyles(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("report theme", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle("report")
		if err != nil {
			t.Fatalf("LoadStyle(report) error: %v", err)
		}
		for _, want := range []string{"#1e3a5f", "sev-critical", "tier-highlight", ".toc"} {
			if !strings.Contains(css, want) {
				t.Errorf("report theme missing %q", want)
			}
		}
	})

	t.Run("plain theme", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("plain"); err != nil {
			t.Errorf("LoadStyle(plain) error: %v", err)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(nonexistent) = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid name rejected before lookup", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("../x"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(../x) = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoaderTemplates(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tmpl, err := loader.LoadTemplate("cover")
	if err != nil {
		t.Fatalf("LoadTemplate(cover) error: %v", err)
	}
	for _, want := range []string{"{{.Title}}", "data-cover-end"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("cover template missing %q", want)
		}
	}

	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(nonexistent) = %v, want ErrTemplateNotFound", err)
	}
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	customCSS := "body { background: papayawhip; }"
	if err := os.WriteFile(filepath.Join(base, "styles", "custom.css"), []byte(customCSS), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error: %v", err)
	}

	t.Run("loads from directory", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle("custom")
		if err != nil {
			t.Fatalf("LoadStyle(custom) error: %v", err)
		}
		if css != customCSS {
			t.Errorf("LoadStyle(custom) = %q, want %q", css, customCSS)
		}
	})

	t.Run("falls back to embedded style", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle("report")
		if err != nil {
			t.Fatalf("LoadStyle(report) error: %v", err)
		}
		if !strings.Contains(css, "#1e3a5f") {
			t.Error("embedded fallback not used for missing style")
		}
	})

	t.Run("falls back to embedded template", func(t *testing.T) {
		t.Parallel()

		tmpl, err := loader.LoadTemplate("cover")
		if err != nil {
			t.Fatalf("LoadTemplate(cover) error: %v", err)
		}
		if !strings.Contains(tmpl, "data-cover-end") {
			t.Error("embedded fallback not used for missing template")
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(nonexistent) = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestNewFilesystemLoaderInvalidBase(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader("/nonexistent/assets"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "notadir")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFilesystemLoader(file); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() = %v, want ErrInvalidBasePath", err)
		}
	})
}
