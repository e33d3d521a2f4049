package strutil

const defaultHost = "0.0.0.0"

// NormalizeAddress substitutes the missing host by the one meaning all the interfaces.
func NormalizeAddress(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return defaultHost + addr
	}

	return addr
}
