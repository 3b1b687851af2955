/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownTable is returned by ParseTable for names that are not tables.
var ErrUnknownTable = errors.New("unknown table")

// Table names one of the shorthand tables.
type Table string

// The shorthand tables, in display order.
const (
	Properties     Table = "properties"
	Values         Table = "values"
	ContextValues  Table = "context-values"
	Modifiers      Table = "modifiers"
	PseudoElements Table = "pseudo-elements"
	Declarations   Table = "declarations"
	Specials       Table = "specials"
)

// Tables lists every table in display order.
var Tables = []Table{Properties, Values, ContextValues, Modifiers, PseudoElements, Declarations, Specials}

// ParseTable returns the table called name.
func ParseTable(name string) (Table, error) {
	t := Table(name)
	if !slices.Contains(Tables, t) {
		return "", fmt.Errorf("%w %q", ErrUnknownTable, name)
	}
	return t, nil
}

// SpecialPlaceholder stands in for the class value when a special is
// listed.
const SpecialPlaceholder = "<value>"

// Entry is one row of a table. Context is set only for context values
// and holds the property the value applies to.
type Entry struct {
	Table   Table  `json:"table"`
	Context string `json:"context,omitempty"`
	Name    string `json:"name"`
	Value   string `json:"value"`
}

// Entries returns the rows of the given tables, or of all tables when
// none are given. Rows follow table order and are sorted by name within a
// table.
func (r *Registry) Entries(tables ...Table) []Entry {
	if len(tables) == 0 {
		tables = Tables
	}
	var out []Entry
	for _, t := range Tables {
		if !slices.Contains(tables, t) {
			continue
		}
		switch t {
		case Properties:
			out = appendTable(out, t, "", r.properties)
		case Values:
			out = appendTable(out, t, "", r.values)
		case ContextValues:
			for _, prop := range slices.Sorted(maps.Keys(r.contextValues)) {
				out = appendTable(out, t, prop, r.contextValues[prop])
			}
		case Modifiers:
			out = appendTable(out, t, "", r.modifiers)
		case PseudoElements:
			out = appendTable(out, t, "", r.pseudoElements)
		case Declarations:
			out = appendTable(out, t, "", r.declarations)
		case Specials:
			for _, name := range slices.Sorted(maps.Keys(r.specials)) {
				out = append(out, Entry{Table: t, Name: name, Value: r.specials[name](SpecialPlaceholder)})
			}
		}
	}
	return out
}

func appendTable(out []Entry, t Table, context string, m map[string]string) []Entry {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		out = append(out, Entry{Table: t, Context: context, Name: name, Value: m[name]})
	}
	return out
}
