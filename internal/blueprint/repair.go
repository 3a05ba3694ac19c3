package blueprint

import (
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
)

// repairDocument rebuilds a cleaned JSON document section by section,
// applying the structural coercions the strict parser cannot tolerate:
// camelCase section keys, object-shaped sequences, and sequence-shaped
// maps. Fields not recognized by any rule pass through unchanged.
func repairDocument(doc string) (string, error) {
	var root map[string]any
	if err := sonic.UnmarshalString(doc, &root); err != nil {
		return "", fmt.Errorf("repair: parse: %w", err)
	}

	fixed := make(map[string]any, len(root))
	consumed := make(map[string]bool)

	take := func(canonical string, aliases ...string) (any, bool) {
		for _, key := range append([]string{canonical}, aliases...) {
			if v, ok := root[key]; ok {
				consumed[key] = true
				return v, true
			}
		}
		return nil, false
	}

	if v, ok := take("project_info", "projectInfo"); ok {
		fixed["project_info"] = v
	}
	if v, ok := take("technology_stack", "technologyStack"); ok {
		fixed["technology_stack"] = repairTechStack(v)
	}
	if v, ok := take("features"); ok {
		fixed["features"] = repairFeatures(v)
	}
	if v, ok := take("api_endpoints", "apiEndpoints"); ok {
		fixed["api_endpoints"] = repairEndpoints(v)
	}
	if v, ok := take("database_schema", "databaseSchema"); ok {
		fixed["database_schema"] = repairSchema(v)
	}
	if v, ok := take("frontend_components", "frontendComponents"); ok {
		fixed["frontend_components"] = namedList(v)
	}
	if v, ok := take("business_logic", "businessLogic"); ok {
		fixed["business_logic"] = v
	}
	if v, ok := take("authentication"); ok {
		fixed["authentication"] = v
	}
	if v, ok := take("deployment"); ok {
		fixed["deployment"] = v
	}
	if v, ok := take("testing_requirements", "testing"); ok {
		fixed["testing_requirements"] = v
	}

	// Everything else passes through unchanged.
	for key, v := range root {
		if !consumed[key] {
			fixed[key] = v
		}
	}

	return sonic.MarshalString(fixed)
}

// repairTechStack fixes the database.additional field when it arrived as a
// key/value map instead of a list of strings.
func repairTechStack(v any) any {
	stack, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(stack))
	for key, sv := range stack {
		switch key {
		case "database":
			out["database"] = repairDatabase(sv)
		case "buildTool":
			out["build_tool"] = sv
		default:
			out[key] = sv
		}
	}
	return out
}

func repairDatabase(v any) any {
	db, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(db))
	for key, dv := range db {
		if key != "additional" {
			out[key] = dv
			continue
		}
		if m, isMap := dv.(map[string]any); isMap {
			entries := make([]any, 0, len(m))
			for _, k := range sortedKeys(m) {
				entries = append(entries, k+":"+asText(m[k]))
			}
			out["additional"] = entries
		} else {
			out["additional"] = dv
		}
	}
	return out
}

// repairFeatures converts an object-shaped features section into an ordered
// sequence (map key becomes the feature id), and fixes requirements fields
// that arrived as sequences inside an already-array-shaped section.
func repairFeatures(v any) any {
	switch features := v.(type) {
	case map[string]any:
		items := make([]any, 0, len(features))
		for _, key := range sortedKeys(features) {
			item := map[string]any{"id": key}
			switch fv := features[key].(type) {
			case map[string]any:
				for fk, fvv := range fv {
					item[fk] = fvv
				}
			default:
				item["description"] = asText(fv)
			}
			items = append(items, item)
		}
		return items
	case []any:
		items := make([]any, 0, len(features))
		for _, raw := range features {
			feature, ok := raw.(map[string]any)
			if !ok {
				items = append(items, raw)
				continue
			}
			out := make(map[string]any, len(feature))
			for fk, fv := range feature {
				if fk == "requirements" {
					if seq, isSeq := fv.([]any); isSeq {
						out["requirements"] = requirementsMap(seq)
						continue
					}
				}
				out[fk] = fv
			}
			items = append(items, out)
		}
		return items
	default:
		return v
	}
}

// requirementsMap converts a requirements sequence into a map keyed by
// positional index; nested object entries are merged in.
func requirementsMap(seq []any) map[string]any {
	out := make(map[string]any, len(seq))
	for i, item := range seq {
		switch rv := item.(type) {
		case string:
			out[fmt.Sprintf("requirement_%d", i)] = rv
		case map[string]any:
			for k, v := range rv {
				out[k] = v
			}
		}
	}
	return out
}

// repairEndpoints converts an object-shaped api_endpoints section into a
// sequence, injecting the map key as the endpoint path.
func repairEndpoints(v any) any {
	endpoints, ok := v.(map[string]any)
	if !ok {
		return v
	}
	items := make([]any, 0, len(endpoints))
	for _, key := range sortedKeys(endpoints) {
		item := map[string]any{"path": "/" + trimSlash(key)}
		switch ev := endpoints[key].(type) {
		case map[string]any:
			for ek, evv := range ev {
				item[ek] = evv
			}
		default:
			item["method"] = "GET"
			item["description"] = asText(ev)
		}
		items = append(items, item)
	}
	return items
}

// repairSchema wraps a bare-sequence database_schema as an object.
func repairSchema(v any) any {
	if seq, ok := v.([]any); ok {
		return map[string]any{"tables": seq}
	}
	return v
}

// namedList converts an object-shaped component section into a sequence,
// injecting each key as the item name.
func namedList(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	items := make([]any, 0, len(m))
	for _, key := range sortedKeys(m) {
		item := map[string]any{"name": key}
		switch cv := m[key].(type) {
		case map[string]any:
			for ck, cvv := range cv {
				item[ck] = cvv
			}
		default:
			item["description"] = asText(cv)
		}
		items = append(items, item)
	}
	return items
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func trimSlash(s string) string {
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}

// asText renders a scalar JSON value the way it would appear as a string.
func asText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}
