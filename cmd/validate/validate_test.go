/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/config"
	"github.com/annieversary/zephyr/testutil"
)

func TestCheck(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/site", "/project")
	cfg := config.Default()
	cfg.Output = "/project/zephyr.css"

	rep, err := Check(mfs, cfg, "/project", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Files != 3 {
		t.Errorf("expected 3 files, got %d", rep.Files)
	}
	if rep.Classes != 9 {
		t.Errorf("expected 9 classes, got %d", rep.Classes)
	}
	if len(rep.Problems) != 1 {
		t.Fatalf("expected one problem, got %v", rep.Problems)
	}
	p := rep.Problems[0]
	if p.Path != "/project/src/page.html" || p.Class != "white" {
		t.Errorf("unexpected problem %v", p)
	}
	if !errors.Is(p.Err, class.ErrValueMissing) {
		t.Errorf("expected ErrValueMissing, got %v", p.Err)
	}
}

func TestCheck_CSSColors(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/site", "/project")
	cfg := config.Default()
	cfg.CSSColors = true

	rep, err := Check(mfs, cfg, "/project/src", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Problems) != 0 {
		t.Errorf("expected no problems, got %v", rep.Problems)
	}
}

func TestCheck_MissingSource(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/site", "/project")
	if _, err := Check(mfs, config.Default(), "/project/missing", nil); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestPrint(t *testing.T) {
	rep := Report{
		Files:   2,
		Classes: 4,
		Problems: []Problem{
			{Path: "/project/src/page.html", Class: "white", Err: class.ErrValueMissing},
		},
	}

	var out, errOut bytes.Buffer
	err := printReport(&out, &errOut, "/project", rep, false)
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
	if errOut.String() != "src/page.html: white: value missing\n" {
		t.Errorf("unexpected problems %q", errOut.String())
	}

	out.Reset()
	errOut.Reset()
	rep.Problems = nil
	if err := printReport(&out, &errOut, "/project", rep, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "2 files, 4 classes, all valid.\n" {
		t.Errorf("unexpected summary %q", out.String())
	}

	out.Reset()
	if err := printReport(&out, &errOut, "/project", rep, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output when quiet, got %q", out.String())
	}
}
