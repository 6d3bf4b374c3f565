package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// pairPattern matches trading pair symbols like BTCUSDT or eth-usdt.
var pairPattern = regexp.MustCompile(`^[A-Za-z0-9]{2,10}[-/]?[A-Za-z0-9]{2,10}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pair", validatePair)
	}
}

func validatePair(fl validator.FieldLevel) bool {
	return pairPattern.MatchString(fl.Field().String())
}

// NormalizePair strips separators and uppercases a pair symbol so that
// BTC-USDT, btc/usdt and BTCUSDT all address the same market.
func NormalizePair(pair string) string {
	pair = strings.NewReplacer("-", "", "/", "").Replace(pair)
	return strings.ToUpper(strings.TrimSpace(pair))
}

// SanitizeStruct trims whitespace from all exported string fields of a
// struct pointer. Call after binding, before handing data to services.
func SanitizeStruct(obj interface{}) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.String && field.CanSet() {
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}
