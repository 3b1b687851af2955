/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package explain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/registry"
)

func TestExplain(t *testing.T) {
	var buf bytes.Buffer
	err := explain(&buf, registry.Default(), []string{"m[1rem]", "mx[2px]"}, "text", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"m[1rem]\n", "margin:1rem", "margin-left:2px;margin-right:2px"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExplain_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := explain(&buf, registry.Default(), []string{"unknown", "m[1rem]", "p{1rem"}, "text", false)
	if err == nil {
		t.Fatal("expected error")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if !errors.Is(errs[0], class.ErrValueMissing) || !errors.Is(errs[1], class.ErrInvalidBraces) {
		t.Errorf("unexpected errors %v", errs)
	}
	if !strings.Contains(buf.String(), "margin:1rem") {
		t.Errorf("expected the valid class to be explained, got:\n%s", buf.String())
	}
}

func TestExplain_Formats(t *testing.T) {
	tests := []struct {
		format string
		prefix string
	}{
		{"json", "["},
		{"markdown", "| Class"},
		{"text", "tt[u]"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := explain(&buf, registry.Default(), []string{"tt[u]"}, tt.format, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("expected %s output to start with %q, got %q", tt.format, tt.prefix, buf.String())
			}
		})
	}

	if err := explain(&bytes.Buffer{}, registry.Default(), []string{"tt[u]"}, "yaml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}
