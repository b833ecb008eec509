package helper

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// ParseFromQueryParam parse url query string to struct target (with multiple data type in struct field), target must in pointer
func ParseFromQueryParam(query url.Values, target interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	errs := NewMultiError()

	pValue := reflect.ValueOf(target)
	if pValue.Kind() != reflect.Ptr {
		panic(fmt.Errorf("%v is not pointer", pValue.Kind()))
	}
	pValue = pValue.Elem()
	pType := reflect.TypeOf(target).Elem()
	for i := 0; i < pValue.NumField(); i++ {
		field := pValue.Field(i)
		typ := pType.Field(i)

		key := strings.TrimSuffix(typ.Tag.Get("json"), ",omitempty")
		if key == "-" || key == "" {
			continue
		}

		var v string
		if val := query[key]; len(val) > 0 && val[0] != "" {
			v = val[0]
		} else {
			v = typ.Tag.Get("default")
		}

		switch field.Kind() {
		case reflect.String:
			if ok, _ := strconv.ParseBool(typ.Tag.Get("lower")); ok {
				v = strings.ToLower(v)
			}
			field.SetString(strings.TrimSpace(v))
		case reflect.Int32, reflect.Int, reflect.Int64:
			vInt, err := strconv.Atoi(v)
			if v != "" && err != nil {
				errs.Append(key, fmt.Errorf("Cannot parse '%s' (%T) to type number", v, v))
			}
			field.SetInt(int64(vInt))
		case reflect.Bool:
			vBool, err := strconv.ParseBool(v)
			if v != "" && err != nil {
				errs.Append(key, fmt.Errorf("Cannot parse '%s' (%T) to type boolean", v, v))
			}
			field.SetBool(vBool)
		}
	}

	if errs.HasError() {
		return errs
	}
	return
}

// StringGreen func
func StringGreen(str string) string {
	return fmt.Sprintf("\x1b[32;1m%s\x1b[0m", str)
}

// MaskEmail hide the local part of an email for log output, ex: j***@mail.com
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
