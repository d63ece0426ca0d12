package binder

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// bindValues copies values into the struct pointed to by v. Fields are
// matched by the tag named tag, falling back to the lowercased field name;
// a "-" tag skips the field. Missing keys leave fields untouched, so callers
// can pre-fill defaults.
func bindValues(v any, tag string, values url.Values, kind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to a struct", kind)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf, tag)
		if name == "" {
			continue
		}
		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return fmt.Errorf("%w: %s: %v", kind, name, err)
		}
	}
	return nil
}

func fieldName(sf reflect.StructField, tag string) string {
	t, ok := sf.Tag.Lookup(tag)
	if !ok || t == "" {
		return strings.ToLower(sf.Name)
	}
	name, _, _ := strings.Cut(t, ",")
	if name == "-" {
		return ""
	}
	return name
}

func setField(f reflect.Value, raw []string) error {
	switch f.Kind() {
	case reflect.Pointer:
		if f.IsNil() {
			f.Set(reflect.New(f.Type().Elem()))
		}
		return setField(f.Elem(), raw)
	case reflect.Slice:
		parts := splitList(raw)
		s := reflect.MakeSlice(f.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setScalar(s.Index(i), p); err != nil {
				return err
			}
		}
		f.Set(s)
		return nil
	default:
		return setScalar(f, raw[0])
	}
}

// splitList flattens repeated and comma-separated values, dropping blanks.
func splitList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		for p := range strings.SplitSeq(r, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func setScalar(f reflect.Value, s string) error {
	switch f.Kind() {
	case reflect.String:
		f.SetString(sanitizeString(s))
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		f.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), f.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		f.SetFloat(n)
	default:
		return fmt.Errorf("unsupported type %s", f.Type())
	}
	return nil
}

// parseBool also accepts the values HTML checkboxes and humans send.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "on", "yes", "y":
		return true, nil
	case "", "0", "f", "false", "off", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
