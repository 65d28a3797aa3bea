// Package skins is the catalog of visual templates for invoice documents
// and notification emails.
//
// Styles form a closed set of constants. Lookups by identifier go through
// Registry.Document and Registry.Email, which never fail: an unknown id
// resolves to the default skin of the kind and the Resolution reports
// Fallback so callers can surface it.
//
//	reg := skins.MustNew()
//	res := reg.Document(r.PathValue("style"))
//	if res.Fallback {
//	    w.Header().Set("X-Style-Fallback", string(res.Skin.Style))
//	}
//	html, err := res.Skin.Body.Execute(bindings)
//
// Skins are HTML files embedded in the binary and described by
// data/manifest.yaml. WithFS loads an alternative set with the same layout.
// All templates are parsed when the registry is built.
package skins
