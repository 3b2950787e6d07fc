// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap mengubah error validator menjadi map field → daftar pesan,
// siap dikirim lewat JsonValidationError.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		msg := "gagal validasi rule " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
