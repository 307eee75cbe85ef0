/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"bennypowers.dev/tokenbuilder/internal/mapfs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		kind Kind
		pkg  string
		file string
	}{
		{"npm:@adobe/spectrum-tokens/src", KindNPM, "@adobe/spectrum-tokens", "src"},
		{"npm:@scope/pkg/json/tokens", KindNPM, "@scope/pkg", "json/tokens"},
		{"npm:simple-tokens/dist", KindNPM, "simple-tokens", "dist"},
		{"npm:bare", KindNPM, "bare", ""},
		{"./vendor/tokens", KindLocal, "", "./vendor/tokens"},
		{"/abs/tokens", KindLocal, "", "/abs/tokens"},
		{"jsr:@std/tokens", KindLocal, "", "jsr:@std/tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			spec := Parse(tt.spec)
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", spec.Kind, tt.kind)
			}
			if spec.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", spec.Package, tt.pkg)
			}
			if spec.File != tt.file {
				t.Errorf("File = %q, want %q", spec.File, tt.file)
			}
			if spec.Raw != tt.spec {
				t.Errorf("Raw = %q, want %q", spec.Raw, tt.spec)
			}
		})
	}
}

func TestNPMResolver_WalksUp(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@adobe/spectrum-tokens/src/layout.json", "{}", 0644)

	r := NewNPMResolver(mfs, "/project/packages/app")
	resolved, err := r.Resolve(DefaultTokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Path != "/project/node_modules/@adobe/spectrum-tokens/src" {
		t.Errorf("Path = %q", resolved.Path)
	}
	if resolved.Kind != KindNPM || resolved.Specifier != DefaultTokens {
		t.Errorf("unexpected resolution: %+v", resolved)
	}
}

func TestNPMResolver_NotFound(t *testing.T) {
	r := NewNPMResolver(mapfs.New(), "/project")
	_, err := r.Resolve(DefaultTokens)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocalResolver(t *testing.T) {
	r := NewLocalResolver("/project")

	tests := []struct {
		spec string
		want string
	}{
		{"vendor/tokens", "/project/vendor/tokens"},
		{"./tokens", "/project/tokens"},
		{"/abs/tokens", "/abs/tokens"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			resolved, err := r.Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resolved.Path != tt.want {
				t.Errorf("Path = %q, want %q", resolved.Path, tt.want)
			}
		})
	}

	if r.CanResolve("npm:pkg/src") {
		t.Error("expected CanResolve to reject npm specifiers")
	}
}

func TestDefaultResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/tokens/src/a.json", "{}", 0644)

	r := NewDefaultResolver(mfs, "/project")
	npm, err := r.Resolve("npm:tokens/src")
	if err != nil || npm.Kind != KindNPM {
		t.Fatalf("npm resolution failed: %+v, %v", npm, err)
	}
	local, err := r.Resolve("tokens")
	if err != nil || local.Path != "/project/tokens" {
		t.Fatalf("local resolution failed: %+v, %v", local, err)
	}
}
