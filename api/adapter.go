package api

// AdaptRegistration normalizes a raw registration payload for the
// downstream contract. Two rules, in order:
//
//  1. A value under the single-underscore variant "password_1" is
//     renamed to the canonical "password1".
//  2. "password2" is synthesized from the (possibly renamed) primary
//     value, so callers never send a confirmation field. A
//     caller-supplied "password2" is discarded, never surfaced.
//
// The input map is not mutated; shared request state stays intact.
func AdaptRegistration(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		if k == "password2" {
			continue
		}
		out[k] = v
	}

	if v, ok := out["password_1"]; ok {
		out["password1"] = v
		delete(out, "password_1")
	}

	if v, ok := out["password1"]; ok {
		out["password2"] = v
	}

	return out
}
