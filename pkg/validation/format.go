// Package validation provides common validation utilities. These run in the
// editing layer before the engine is invoked; the engine itself performs no
// validation and degenerate input propagates as non-finite output.
package validation

import (
	"fmt"

	"github.com/iwvelando/property-proforma/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
