/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

var defaultProperties = map[string]string{
	"m":   "margin",
	"mt":  "margin-top",
	"mb":  "margin-bottom",
	"ml":  "margin-left",
	"mr":  "margin-right",
	"p":   "padding",
	"pt":  "padding-top",
	"pb":  "padding-bottom",
	"pl":  "padding-left",
	"pr":  "padding-right",
	"w":   "width",
	"h":   "height",
	"bg":  "background",
	"bgc": "background-color",
	"tt":  "text-transform",
	"ta":  "text-align",
	"fs":  "font-size",
	"fw":  "font-weight",
}

var defaultValues = map[string]string{
	"full": "100%",
}

var defaultContextValues = map[string]map[string]string{
	"text-transform": {
		"u": "uppercase",
		"l": "lowercase",
		"c": "capitalize",
		"n": "none",
	},
	"text-align": {
		"l": "left",
		"r": "right",
		"c": "center",
		"j": "justify",
	},
}

var defaultModifiers = map[string]string{
	"odd":   "nth-child(odd)",
	"even":  "nth-child(even)",
	"first": "first-child",
	"last":  "last-child",
	"only":  "only-child",
}

var defaultPseudoElements = map[string]string{
	"ph": "placeholder",
}

var defaultDeclarations = map[string]string{
	"flex":           "display:flex",
	"flex-row":       "display:flex;flex-direction:row",
	"flex-col":       "display:flex;flex-direction:column",
	"items-center":   "align-items:center",
	"justify-center": "justify-content:center",
}

var defaultSpecials = map[string][]string{
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
}

func installDefaults(r *Registry) {
	for k, v := range defaultProperties {
		r.properties[k] = v
	}
	for k, v := range defaultValues {
		r.values[k] = v
	}
	for prop, table := range defaultContextValues {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		r.contextValues[prop] = copied
	}
	for k, v := range defaultModifiers {
		r.modifiers[k] = v
	}
	for k, v := range defaultPseudoElements {
		r.pseudoElements[k] = v
	}
	for k, v := range defaultDeclarations {
		r.declarations[k] = v
	}
	for k, props := range defaultSpecials {
		r.specials[k] = MultiProperty(props...)
	}
}
