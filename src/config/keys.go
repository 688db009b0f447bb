package config

import (
	"fmt"
	"ontap-models/src/interfaces"
	"slices"
	"strconv"
)

const (
	// Log verbosity of the library loggers. One of: debug, info, warn, error.
	KeyLogLevel = "ONTAP_MODELS_LOG_LEVEL"
	// Emit log lines as JSON ("true") or pretty-printed for terminals ("false").
	KeyLogJson = "ONTAP_MODELS_LOG_JSON"
	// Make generated models reject unknown wire keys instead of excluding them.
	KeyStrictDecode = "ONTAP_MODELS_STRICT_DECODE"
)

func validateBool(value string) error {
	_, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("expected a boolean value, got '%s'", value)
	}
	return nil
}

func validateLogLevel(value string) error {
	valid := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(valid, value) {
		return fmt.Errorf("expected one of %v, got '%s'", valid, value)
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

// DeclareLibraryKeys declares every config value the library reads.
// Callers embedding the library into a larger config module can declare
// their own keys before or after this.
func DeclareLibraryKeys(c interfaces.ConfigModule) {
	c.Declare(interfaces.ConfigDeclaration{
		Key:          KeyLogLevel,
		DefaultValue: strPtr("info"),
		Description:  strPtr("Log verbosity: debug, info, warn or error."),
		Envs:         []string{"LOG_LEVEL"},
		Validate:     validateLogLevel,
	})
	c.Declare(interfaces.ConfigDeclaration{
		Key:          KeyLogJson,
		DefaultValue: strPtr("true"),
		Description:  strPtr("Emit JSON log lines instead of pretty terminal output."),
		Validate:     validateBool,
	})
	c.Declare(interfaces.ConfigDeclaration{
		Key:          KeyStrictDecode,
		DefaultValue: strPtr("false"),
		Description:  strPtr("Reject unknown wire keys while decoding instead of excluding them."),
		Validate:     validateBool,
	})
}
