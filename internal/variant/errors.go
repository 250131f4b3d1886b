package variant

import "errors"

// ErrUnknownVariant is returned by ParseVariant for any input that does not
// match a known cartridge. Callers wrap it as a runtime.ConfigError, which is
// fatal at startup per the error-kind policy.
var ErrUnknownVariant = errors.New("variant: unrecognized ROM variant")
