// Package envflag reads debug and feature flags from environment variables
// into struct values.
//
// A flags struct has one exported field per flag, of kind bool, int or
// string. The flag name is the lower-cased field name. A default other
// than the zero value is given with a field tag such as
//
//	Strict bool `envflag:"default:true"`
package envflag

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// ErrInvalid is matched, using errors.Is, by errors for malformed values.
var ErrInvalid = errors.New("invalid value")

type errInvalid struct{ error }

func (errInvalid) Is(err error) bool {
	return err == ErrInvalid
}

// Init calls Parse with the value of the environment variable envVar.
func Init[T any](flags *T, envVar string) error {
	if err := Parse(flags, os.Getenv(envVar)); err != nil {
		return fmt.Errorf("cannot parse %s: %w", envVar, err)
	}
	return nil
}

// Parse resets the fields of *flags to their defaults and then applies
// env, a comma-separated list of name=value pairs. For boolean flags the
// value may be omitted, so that "strict" is short for "strict=true".
// Names are matched case insensitively and empty list elements are
// ignored.
//
// All elements are applied even if some of them fail; the returned error
// joins the individual failures.
func Parse[T any](flags *T, env string) error {
	fv := reflect.ValueOf(flags).Elem()
	fields, err := fieldsOf(fv.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		fv.Field(f.index).Set(reflect.ValueOf(f.def))
	}

	var errs []error
	for _, elem := range strings.Split(env, ",") {
		if elem == "" {
			continue
		}
		name, str, hasValue := strings.Cut(elem, "=")
		name = strings.ToLower(name)
		f, ok := lookup(fields, name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown flag %q", elem))
			continue
		}
		var val any = true
		switch {
		case hasValue:
			val, err = parseValue(name, f.kind, str)
			if err != nil {
				errs = append(errs, err)
				continue
			}
		case f.kind != reflect.Bool:
			errs = append(errs, fmt.Errorf("value needed for %s flag %q", f.kind, name))
			continue
		}
		fv.Field(f.index).Set(reflect.ValueOf(val))
	}
	return errors.Join(errs...)
}

// Names returns the names of the flags in T, in field order.
func Names[T any]() []string {
	fields, err := fieldsOf(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Format returns the flags in flags as name=value pairs, in field order.
// Joined with commas, they can be read back with Parse.
func Format[T any](flags T) []string {
	fv := reflect.ValueOf(flags)
	fields, err := fieldsOf(fv.Type())
	if err != nil {
		panic(err)
	}
	pairs := make([]string, len(fields))
	for i, f := range fields {
		pairs[i] = fmt.Sprintf("%s=%v", f.name, fv.Field(f.index).Interface())
	}
	return pairs
}

type field struct {
	name  string
	index int
	kind  reflect.Kind
	def   any
}

func fieldsOf(t reflect.Type) ([]field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("flags must be a struct, not %s", t)
	}
	fields := make([]field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		f := field{
			name:  strings.ToLower(sf.Name),
			index: i,
			kind:  sf.Type.Kind(),
			def:   reflect.Zero(sf.Type).Interface(),
		}
		if tag, ok := sf.Tag.Lookup("envflag"); ok {
			str, ok := strings.CutPrefix(tag, "default:")
			if !ok {
				return nil, fmt.Errorf("unknown envflag tag %q", tag)
			}
			def, err := parseValue(f.name, f.kind, str)
			if err != nil {
				return nil, err
			}
			f.def = def
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func lookup(fields []field, name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

func parseValue(name string, kind reflect.Kind, str string) (val any, err error) {
	switch kind {
	case reflect.Bool:
		val, err = strconv.ParseBool(str)
	case reflect.Int:
		val, err = strconv.Atoi(str)
	case reflect.String:
		val = str
	default:
		return nil, errInvalid{fmt.Errorf("unsupported kind %s", kind)}
	}
	if err != nil {
		return nil, errInvalid{fmt.Errorf("invalid %s value for %s: %v", kind, name, err)}
	}
	return val, nil
}
