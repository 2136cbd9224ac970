package wrap

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// PrepareConfig fills in default values on a wrapper config struct and
// validates it. cfg must be a pointer to a struct using `default` and
// `validate` tags.
//
// Default values are applied with the creasty/defaults package before
// validation, so zero-valued fields pick up their documented defaults.
// Validations are done using the go-playground/validator package.
//
// Validation failures are reported as a single error carrying
// CodeInvalidConfig.
func PrepareConfig(cfg any) error {
	if err := defaults.Set(cfg); err != nil {
		return errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // Using type assertion for validator errors handling
		for _, err := range errs {
			tagErr := err.Tag()
			if err.Param() != "" {
				tagErr += fmt.Sprintf("=%s", err.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", err.Namespace(), tagErr))
		}
	}

	if len(failedFields) > 0 {
		return errx.New(
			fmt.Sprintf("invalid wrapper config -> %s", strings.Join(failedFields, ",  ")),
			errx.WithCode(CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
		)
	}

	return errx.Wrap(err, errx.WithCode(CodeInvalidConfig), errx.WithType(errx.T_Validation))
}
