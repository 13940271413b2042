package predefinedbindings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp YAML file: %v", err)
	}
	return path
}

func TestNewYAMLProvider(t *testing.T) {
	t.Run("empty path is an error", func(t *testing.T) {
		if _, err := NewYAMLProvider(""); err == nil {
			t.Error("NewYAMLProvider(\"\") error = nil, want error")
		}
	})
}

func TestYAMLProvider_GetPredefinedBindings(t *testing.T) {
	t.Run("parses per-scope bindings", func(t *testing.T) {
		path := writeTempYAML(t, `
user:
  - namespace: pkg.math
    nickname: m
  - namespace: pkg.strings
    nickname: s
pkg.app:
  - namespace: pkg.math
    nickname: math
`)
		provider, err := NewYAMLProvider(path)
		if err != nil {
			t.Fatalf("NewYAMLProvider() error = %v", err)
		}

		got, err := provider.GetPredefinedBindings()
		if err != nil {
			t.Fatalf("GetPredefinedBindings() error = %v", err)
		}

		want := map[string][]binding.Binding{
			"user": {
				{Namespace: "pkg.math", Nickname: "m"},
				{Namespace: "pkg.strings", Nickname: "s"},
			},
			"pkg.app": {
				{Namespace: "pkg.math", Nickname: "math"},
			},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("GetPredefinedBindings() = %v, want %v", got, want)
		}
	})

	t.Run("missing file yields no bindings", func(t *testing.T) {
		provider, err := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("NewYAMLProvider() error = %v", err)
		}
		got, err := provider.GetPredefinedBindings()
		if err != nil {
			t.Fatalf("GetPredefinedBindings() error = %v, want nil", err)
		}
		if len(got) != 0 {
			t.Errorf("GetPredefinedBindings() = %v, want empty", got)
		}
	})

	t.Run("empty file yields no bindings", func(t *testing.T) {
		provider, err := NewYAMLProvider(writeTempYAML(t, ""))
		if err != nil {
			t.Fatalf("NewYAMLProvider() error = %v", err)
		}
		got, err := provider.GetPredefinedBindings()
		if err != nil {
			t.Fatalf("GetPredefinedBindings() error = %v, want nil", err)
		}
		if len(got) != 0 {
			t.Errorf("GetPredefinedBindings() = %v, want empty", got)
		}
	})

	t.Run("comment-only file yields no bindings", func(t *testing.T) {
		provider, err := NewYAMLProvider(writeTempYAML(t, "# nothing here\n"))
		if err != nil {
			t.Fatalf("NewYAMLProvider() error = %v", err)
		}
		got, err := provider.GetPredefinedBindings()
		if err != nil {
			t.Fatalf("GetPredefinedBindings() error = %v, want nil", err)
		}
		if len(got) != 0 {
			t.Errorf("GetPredefinedBindings() = %v, want empty", got)
		}
	})

	t.Run("unknown fields are an error", func(t *testing.T) {
		provider, err := NewYAMLProvider(writeTempYAML(t, `
user:
  - namespace: pkg.math
    nick: m
`))
		if err != nil {
			t.Fatalf("NewYAMLProvider() error = %v", err)
		}
		if _, err := provider.GetPredefinedBindings(); err == nil {
			t.Error("GetPredefinedBindings() error = nil, want unmarshal error")
		}
	})
}
