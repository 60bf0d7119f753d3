package middleware

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/cstockton/go-conv"
	"github.com/labstack/echo/v4"
)

// BindAndValidate binds the request body, params, query and headers into req
// and validates it. Invalid requests are answered with bad request.
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	if err := bindHeader(c.Request().Header, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// bindHeader decode http header to struct by tag `header:"<header_name>"`
// out must be a pointer to a struct
func bindHeader(header http.Header, dst interface{}) error {
	getValueFn := func(tagValue string) (interface{}, error) {
		return header.Get(tagValue), nil
	}

	return bindStruct(dst, "header", getValueFn)
}

// bindStruct decode to struct by custom tag `tagName:"tagValue"`
// dst must be a pointer to a struct
func bindStruct(dst interface{}, tagName string, getValueFn func(tagValue string) (interface{}, error)) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Ptr {
		return fmt.Errorf("non-pointer passed to Unmarshal")
	}

	indirect := reflect.Indirect(ptr)
	structType := indirect.Type()

	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		tagValue := structField.Tag.Get(tagName)
		if tagValue == "-" || tagValue == "" {
			continue
		}

		value, err := getValueFn(tagValue)
		if err != nil {
			return err
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}

		field := indirect.Field(i)
		if err := conv.Infer(field, value); err != nil {
			return fmt.Errorf("cannot parse %s.%s as %s from: %#v / %s",
				structType.Name(), structField.Name, field.Type(), value, err)
		}
	}

	return nil
}
