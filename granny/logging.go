package granny

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger routes the package's debug output (library loading, symbol
// resolution) to l. The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}
