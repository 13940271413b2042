package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
)

func TestService_Register(t *testing.T) {
	t.Run("success - returns confirmation string", func(t *testing.T) {
		svc := NewService()
		got, err := svc.Register("user", "pkg.math", "m")
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if want := "m => pkg.math"; got != want {
			t.Errorf("Register() = %q, want %q", got, want)
		}
	})

	t.Run("round-trip - both lookups see the binding", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if ns, ok := svc.LookupByNickname("user", "m"); !ok || ns != "pkg.math" {
			t.Errorf("LookupByNickname() = (%q, %v), want (%q, true)", ns, ok, "pkg.math")
		}
		if nick, ok := svc.LookupByNamespace("user", "pkg.math"); !ok || nick != "m" {
			t.Errorf("LookupByNamespace() = (%q, %v), want (%q, true)", nick, ok, "m")
		}
	})

	t.Run("scopes are independent", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if _, ok := svc.LookupByNickname("other", "m"); ok {
			t.Error("LookupByNickname() in a different scope found the binding")
		}
		if _, err := svc.Register("other", "pkg.strings", "m"); err != nil {
			t.Errorf("Register() in a different scope error = %v, want nil", err)
		}
	})
}

func TestService_Register_EmptyArguments(t *testing.T) {
	tests := []struct {
		name      string
		scope     string
		namespace string
		nickname  string
	}{
		{name: "empty scope", scope: "", namespace: "pkg.math", nickname: "m"},
		{name: "empty namespace", scope: "user", namespace: "", nickname: "m"},
		{name: "empty nickname", scope: "user", namespace: "pkg.math", nickname: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			_, err := svc.Register(tt.scope, tt.namespace, tt.nickname)
			var emptyErr *EmptyArgumentError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("Register() error = %v, want *EmptyArgumentError", err)
			}
		})
	}
}

func TestService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name         string
		namespace    string
		nickname     string
		wantDatum    string
		wantBoundTo  string
		wantNickname bool
	}{
		{
			name:         "nickname already bound to another namespace",
			namespace:    "pkg.strings",
			nickname:     "m",
			wantDatum:    "m",
			wantBoundTo:  "pkg.math",
			wantNickname: true,
		},
		{
			name:        "namespace already bound to another nickname",
			namespace:   "pkg.math",
			nickname:    "math",
			wantDatum:   "pkg.math",
			wantBoundTo: "m",
		},
		{
			name:         "identical pair is still a conflict",
			namespace:    "pkg.math",
			nickname:     "m",
			wantDatum:    "m",
			wantBoundTo:  "pkg.math",
			wantNickname: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
				t.Fatalf("setup Register() error = %v", err)
			}

			_, err := svc.Register("user", tt.namespace, tt.nickname)
			var boundErr *AlreadyBoundError
			if !errors.As(err, &boundErr) {
				t.Fatalf("Register() error = %v, want *AlreadyBoundError", err)
			}
			if boundErr.Datum != tt.wantDatum || boundErr.BoundTo != tt.wantBoundTo || boundErr.IsNickname != tt.wantNickname {
				t.Errorf("AlreadyBoundError = %+v, want Datum=%q BoundTo=%q IsNickname=%v",
					boundErr, tt.wantDatum, tt.wantBoundTo, tt.wantNickname)
			}

			// A failed registration must leave the table unchanged.
			want := []binding.Binding{{Namespace: "pkg.math", Nickname: "m"}}
			if got := svc.List("user"); !reflect.DeepEqual(got, want) {
				t.Errorf("List() after failed Register = %v, want %v", got, want)
			}
		})
	}
}

func TestService_Register_CaseSensitive(t *testing.T) {
	svc := NewService()
	if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// Differently-cased values are distinct; no conflict.
	if _, err := svc.Register("user", "PKG.MATH", "M"); err != nil {
		t.Errorf("Register() with different case error = %v, want nil", err)
	}
}

func TestService_Unregister(t *testing.T) {
	t.Run("by nickname", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if got := svc.Unregister("user", "m"); got != "m" {
			t.Errorf("Unregister() = %q, want %q", got, "m")
		}
		if _, ok := svc.LookupByNickname("user", "m"); ok {
			t.Error("LookupByNickname() found a binding after Unregister")
		}
	})

	t.Run("by namespace name", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if got := svc.Unregister("user", "pkg.math"); got != "pkg.math" {
			t.Errorf("Unregister() = %q, want %q", got, "pkg.math")
		}
		if _, ok := svc.LookupByNamespace("user", "pkg.math"); ok {
			t.Error("LookupByNamespace() found a binding after Unregister")
		}
	})

	t.Run("idempotent - second call is a no-op", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		svc.Unregister("user", "m")
		if got := svc.Unregister("user", "m"); got != "m" {
			t.Errorf("second Unregister() = %q, want %q", got, "m")
		}
	})

	t.Run("unknown datum is a no-op", func(t *testing.T) {
		svc := NewService()
		if got := svc.Unregister("user", "nothing"); got != "nothing" {
			t.Errorf("Unregister() = %q, want %q", got, "nothing")
		}
	})

	t.Run("frees both directions for re-registration", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		svc.Unregister("user", "m")
		if _, err := svc.Register("user", "pkg.math", "math"); err != nil {
			t.Errorf("Register() after Unregister error = %v, want nil", err)
		}
	})
}

func TestService_List(t *testing.T) {
	t.Run("empty scope lists nothing", func(t *testing.T) {
		svc := NewService()
		if got := svc.List("user"); len(got) != 0 {
			t.Errorf("List() = %v, want empty", got)
		}
	})

	t.Run("most recently registered first", func(t *testing.T) {
		svc := NewService()
		for _, pair := range [][2]string{
			{"pkg.math", "m"},
			{"pkg.strings", "s"},
			{"pkg.io", "io"},
		} {
			if _, err := svc.Register("user", pair[0], pair[1]); err != nil {
				t.Fatalf("Register(%q, %q) error = %v", pair[0], pair[1], err)
			}
		}

		want := []binding.Binding{
			{Namespace: "pkg.io", Nickname: "io"},
			{Namespace: "pkg.strings", Nickname: "s"},
			{Namespace: "pkg.math", Nickname: "m"},
		}
		if got := svc.List("user"); !reflect.DeepEqual(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})

	t.Run("snapshot is independent of the table", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Register("user", "pkg.math", "m"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		got := svc.List("user")
		got[0].Nickname = "mutated"
		if ns, ok := svc.LookupByNickname("user", "m"); !ok || ns != "pkg.math" {
			t.Error("mutating a List() snapshot changed the registry")
		}
	})
}
