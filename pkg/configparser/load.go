package configparser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var ErrNotStructPointer = errors.New("config must be a non-nil pointer to a struct")

// LoadAndParseYaml reads an optional YAML file and fills every cfg field tagged with `env`.
//
// Nested YAML keys map to env names the same way sections do:
//
//	log:
//	  level: DEBUG   # LOG_LEVEL
//
// Environment variables win over the file, the `default` tag fills the rest.
// An empty filepath means environment and defaults only.
func LoadAndParseYaml(filepath string, cfg any) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filepath != "" {
		v.SetConfigFile(filepath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read YAML file: %w", err)
		}
	}

	return Parse(v, cfg)
}

// Parse fills cfg from v using `env` and `default` struct tags.
func Parse(v *viper.Viper, cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	return parseStruct(v, rv.Elem())
}

func parseStruct(v *viper.Viper, rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		env, ok := field.Tag.Lookup("env")
		if !ok {
			// sections have no env tag of their own
			if fv.Kind() == reflect.Struct {
				if err := parseStruct(v, fv); err != nil {
					return err
				}
			}
			continue
		}

		key := keyFromEnv(env)
		if def, ok := field.Tag.Lookup("default"); ok {
			v.SetDefault(key, def)
		}
		if !v.IsSet(key) {
			continue
		}

		if err := setField(fv, v.Get(key)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", env, err)
		}
	}

	return nil
}

// keyFromEnv turns LOG_LEVEL into log.level
func keyFromEnv(env string) string {
	return strings.ToLower(strings.ReplaceAll(env, "_", "."))
}

func setField(fv reflect.Value, raw any) error {
	if fv.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := cast.ToDurationE(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return err
		}
		fv.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return err
		}
		if fv.OverflowInt(n) {
			return fmt.Errorf("%d overflows %s", n, fv.Type())
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}

	return nil
}
