// Package envtag overrides struct fields from environment variables named
// after a struct tag.
package envtag

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal sets the fields of s, which must be a pointer to a struct, from
// the environment variable PREFIX+TAG (uppercased). Only string, bool, int
// and []string (comma separated) fields are supported. Tag options after a
// comma are ignored; ",squash" recurses into embedded structs.
func Unmarshal(tagName string, prefix string, s interface{}) error {
	structVal := reflect.ValueOf(s)

	if structVal.Kind() != reflect.Ptr || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected a pointer to a struct, got %T", s)
	}
	structVal = structVal.Elem()
	typ := structVal.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		v := structVal.Field(i)
		if !v.CanSet() {
			continue
		}

		if tag == ",squash" && field.Type.Kind() == reflect.Struct {
			if err := Unmarshal(tagName, prefix, v.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		key := strings.ToUpper(prefix + name)
		envVal := os.Getenv(key)
		if envVal == "" {
			continue
		}
		if err := set(v, envVal); err != nil {
			return fmt.Errorf("error setting %s from %s: %w", field.Name, key, err)
		}
	}
	return nil
}

func set(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int:
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(i))
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return nil
		}
		split := strings.Split(s, ",")
		for i := range split {
			split[i] = strings.TrimSpace(split[i])
		}
		v.Set(reflect.ValueOf(split).Convert(v.Type()))
	}
	return nil
}
