/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/annieversary/zephyr/registry"
)

func TestList(t *testing.T) {
	r := registry.Default()

	t.Run("one table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := list(&buf, r, []string{"pseudo-elements"}, "names"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "ph\n" {
			t.Errorf("expected ph, got %q", buf.String())
		}
	})

	t.Run("all tables", func(t *testing.T) {
		var buf bytes.Buffer
		if err := list(&buf, r, nil, "table"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"properties", "context-values", "specials", "margin-left:<value>;margin-right:<value>"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := list(&buf, r, []string{"values"}, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var entries []registry.Entry
		if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(entries) != 1 || entries[0].Name != "full" || entries[0].Value != "100%" {
			t.Errorf("unexpected entries %v", entries)
		}
	})

	t.Run("unknown table", func(t *testing.T) {
		err := list(&bytes.Buffer{}, r, []string{"colors"}, "table")
		if !errors.Is(err, registry.ErrUnknownTable) {
			t.Errorf("expected ErrUnknownTable, got %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := list(&bytes.Buffer{}, r, nil, "css"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
