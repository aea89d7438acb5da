package testutils

// TestingT is the part of testing.T the helpers need
type TestingT interface {
	Errorf(format string, args ...any)
}

// FieldsToMap turns the key/value fields passed to a Logger into a map.
// A dangling key or a non-string key is reported through t and skipped.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	out := make(map[string]any, len(fields)/2)

	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		switch {
		case !ok:
			t.Errorf("log field %d: key must be a string, got %T", i, fields[i])
		case i+1 >= len(fields):
			t.Errorf("log field %d: key %q has no value", i, key)
		default:
			out[key] = fields[i+1]
		}
	}

	return out
}

// FieldMap returns the call's fields as a map
func (c LogCall) FieldMap(t TestingT) map[string]any {
	return FieldsToMap(t, c.Fields)
}
