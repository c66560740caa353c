package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Msg string `json:"msg"`
}

type DataResponse struct {
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data"`
}

var (
	// Predefined errors
	BodyRequiredResponse = Response{Msg: "you must send information in the body"}
	DBError1Response     = Response{Msg: "DB Error 1"}
	DBError2Response     = Response{Msg: "DB Error 2"}
)

func init() {
	// Report JSON names in validation errors, e.g. "planet_id" instead of "PlanetID"
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func fieldRequiredResponse(field string) Response {
	return Response{Msg: "the " + field + " field is required"}
}

// bindBody decodes a JSON object body into req and checks its required fields.
// Required fields are pointers so that zero values still count as present.
// On failure the 400 response is already written
func bindBody(c *gin.Context, req any) bool {
	body, err := c.GetRawData()
	body = bytes.TrimSpace(body)
	if err != nil || len(body) == 0 || body[0] != '{' || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, BodyRequiredResponse)
		return false
	}
	if err = binding.JSON.BindBody(body, req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.JSON(http.StatusBadRequest, fieldRequiredResponse(verrs[0].Field()))
			return false
		}
		var terr *json.UnmarshalTypeError
		if errors.As(err, &terr) && terr.Field != "" {
			c.JSON(http.StatusBadRequest, fieldTypeResponse(terr.Field, terr.Type.Kind()))
			return false
		}
		c.JSON(http.StatusBadRequest, BodyRequiredResponse)
		return false
	}
	return true
}

// fieldTypeResponse names the field and the expected JSON type, never the Go type
func fieldTypeResponse(field string, kind reflect.Kind) Response {
	expected := "a valid value"
	switch kind {
	case reflect.String:
		expected = "a string"
	case reflect.Bool:
		expected = "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		expected = "a whole number"
	case reflect.Float32, reflect.Float64:
		expected = "a number"
	}
	return Response{Msg: "the " + field + " field must be " + expected}
}
