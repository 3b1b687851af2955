/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/generate"
	"github.com/annieversary/zephyr/registry"
)

func newGenerator(t *testing.T, opts ...registry.Option) *generate.Generator {
	t.Helper()
	return generate.New(registry.New(opts...), generate.Options{}, zaptest.NewLogger(t))
}

func TestGenerate(t *testing.T) {
	g := newGenerator(t)

	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{
			name:     "declaration",
			input:    []string{"flex-row"},
			expected: `.flex-row{display:flex;flex-direction:row}`,
		},
		{
			name:     "modifiers and pseudo element",
			input:    []string{"m[3rem]hover,focus$placeholder"},
			expected: `.m\[3rem\]hover,focus\$placeholder:hover:focus::placeholder{margin:3rem}`,
		},
		{
			name:     "value-less with modifiers",
			input:    []string{"flex|hover,focus$placeholder"},
			expected: `.flex\|hover,focus\$placeholder:hover:focus::placeholder{display:flex}`,
		},
		{
			name:     "dot in value",
			input:    []string{"mr[0.5rem]"},
			expected: `.mr\[0\.5rem\]{margin-right:0.5rem}`,
		},
		{
			name:     "space separated fragment",
			input:    []string{"flex-row mt[1rem]"},
			expected: `.flex-row{display:flex;flex-direction:row}.mt\[1rem\]{margin-top:1rem}`,
		},
		{
			name:     "special",
			input:    []string{"mx[1rem]"},
			expected: `.mx\[1rem\]{margin-left:1rem;margin-right:1rem}`,
		},
		{
			name:     "underscores become spaces",
			input:    []string{"border[1px_solid_black]"},
			expected: `.border\[1px_solid_black\]{border:1px solid black}`,
		},
		{
			name:     "literals",
			input:    []string{"border{1px_solid_black}", "w{full}"},
			expected: `.border\{1px_solid_black\}{border:1px_solid_black}.w\{full\}{width:full}`,
		},
		{
			name:     "variable",
			input:    []string{"m(my-margin)"},
			expected: `.m\(my-margin\){margin:var(--my-margin)}`,
		},
		{
			name:     "context value",
			input:    []string{"tt[u]"},
			expected: `.tt\[u\]{text-transform:uppercase}`,
		},
		{
			name:     "media queries",
			input:    []string{"m[1rem]sm m[1rem]<md"},
			expected: `@media(min-width:640px){.m\[1rem\]sm{margin:1rem}}@media(max-width:767.9px){.m\[1rem\]\<md{margin:1rem}}`,
		},
		{
			name:     "empty",
			input:    []string{"", "  \n\t"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.Generate(tt.input...))
		})
	}
}

func TestGenerateJoinedEqualsSeparate(t *testing.T) {
	g := newGenerator(t)
	assert.Equal(t, g.Generate("flex-row", "mt[1rem]"), g.Generate("flex-row mt[1rem]"))
}

func TestGenerateDeduplicates(t *testing.T) {
	g := newGenerator(t)
	assert.Equal(t,
		g.Generate("flex-row", "mt[1rem]"),
		g.Generate("flex-row", "flex-row", "mt[1rem] flex-row"),
	)
}

func TestGenerateWithCSSColors(t *testing.T) {
	g := newGenerator(t, registry.WithCSSColors())
	assert.Equal(t,
		`.white{color:white}.blanchedalmond{color:blanchedalmond}`,
		g.Generate("white blanchedalmond"),
	)
}

func TestGenerateWithoutDefaults(t *testing.T) {
	g := newGenerator(t, registry.WithoutDefaults())
	assert.Equal(t, `.m\[1rem\]{m:1rem}`, g.Generate("m[1rem] flex"))
}

func TestGenerateSkipsAndLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	g := generate.New(registry.Default(), generate.Options{}, zap.New(core))

	out := g.Generate("m[1rem] nope|hover a{b flex")

	assert.Equal(t, `.m\[1rem\]{margin:1rem}.flex{display:flex}`, out)

	entries := logs.FilterMessage("skipping class").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "nope|hover", entries[0].ContextMap()["class"])
	assert.Equal(t, "a{b", entries[1].ContextMap()["class"])
	assert.Equal(t, "generate", entries[0].LoggerName)
}

func TestStrict(t *testing.T) {
	g := newGenerator(t)

	out, err := g.Strict(context.Background(), slices.Values([]string{"m[1rem] nope|hover a}b"}))

	assert.Equal(t, `.m\[1rem\]{margin:1rem}`, out)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], class.ErrValueMissing)
	assert.ErrorIs(t, errs[1], class.ErrInvalidBraces)
}

func TestStrictNoErrors(t *testing.T) {
	g := newGenerator(t)
	out, err := g.Strict(context.Background(), slices.Values([]string{"flex"}))
	require.NoError(t, err)
	assert.Equal(t, `.flex{display:flex}`, out)
}

func TestGenerateSeqCancelled(t *testing.T) {
	g := newGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateSeq(ctx, slices.Values([]string{"m[1rem]"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrderIsStableUnderConcurrency(t *testing.T) {
	var classes []string
	var expected strings.Builder
	single := generate.New(registry.Default(), generate.Options{Jobs: 1}, nil)
	for i := range 200 {
		c := "m[" + strings.Repeat("1", i%7+1) + "px]" + []string{"", "hover", "sm", "@md"}[i%4]
		classes = append(classes, c)
	}
	expected.WriteString(single.Generate(classes...))

	parallel := generate.New(registry.Default(), generate.Options{Jobs: 16}, nil)
	for range 5 {
		assert.Equal(t, expected.String(), parallel.Generate(classes...))
	}
}

func TestPretty(t *testing.T) {
	g := generate.New(registry.Default(), generate.Options{Pretty: true}, nil)

	expected := "@media (min-width:640px) {\n" +
		"  .m\\[1rem\\]sm {\n" +
		"    margin:1rem;\n" +
		"  }\n" +
		"}\n" +
		".flex-row {\n" +
		"  display:flex;\n" +
		"  flex-direction:row;\n" +
		"}\n"

	assert.Equal(t, expected, g.Generate("m[1rem]sm flex-row"))
}

func TestClasses(t *testing.T) {
	got := generate.Classes(slices.Values([]string{"a b\ta", "c\nb", "", "d\r\fe"}))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestClassStrict(t *testing.T) {
	g := newGenerator(t)

	rule, err := g.Class("m[1rem]@xl,motion-reduce")
	require.NoError(t, err)
	assert.Equal(t,
		`@media(min-width:1280px)and(max-width:1535.9px)and(prefers-reduced-motion:reduce){.m\[1rem\]\@xl,motion-reduce{margin:1rem}}`,
		rule.String(),
	)

	_, err = g.Class("m")
	assert.ErrorIs(t, err, class.ErrValueMissing)
}
