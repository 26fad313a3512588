package cli

import (
	"fmt"

	"ghostconfig/internal/i18n"
)

type unknownOptionError struct {
	key string
}

func (e unknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.key)
}

func errUnknownOption(key string) error {
	return unknownOptionError{key: key}
}

type serverRequiredError struct {
	command string
}

func (e serverRequiredError) Error() string {
	return fmt.Sprintf("%s: missing --server (or GHOSTCONFIG_SERVER)", e.command)
}

func errServerRequired(command string) error {
	return serverRequiredError{command: command}
}

// schemaError is a failure to read the option schema from ghostty. It carries
// the localized install hint.
type schemaError struct {
	lang string
	err  error
}

func (e schemaError) Error() string {
	return fmt.Sprintf(i18n.T(e.lang, "error.parse_schema"), e.err) + "\n" + i18n.T(e.lang, "error.ghostty_not_found")
}

func (e schemaError) Unwrap() error { return e.err }

type unsupportedLanguageError struct {
	lang      string
	supported []string
}

func (e unsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s (expected one of %v)", e.lang, e.supported)
}
