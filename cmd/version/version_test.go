/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newCmd(format string, out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "version", RunE: run}
	cmd.Flags().StringP("format", "f", format, "")
	cmd.SetOut(out)
	return cmd
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newCmd("text", &buf), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "zephyr ") {
		t.Errorf("expected text output to start with 'zephyr ', got %q", buf.String())
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newCmd("json", &buf), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["version"] == "" || info["goVersion"] == "" {
		t.Errorf("expected version and goVersion, got %v", info)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	if err := run(newCmd("yaml", &bytes.Buffer{}), nil); err == nil {
		t.Error("expected error for unknown format")
	}
}
