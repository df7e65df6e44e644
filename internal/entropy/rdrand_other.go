//go:build !amd64

package entropy

func hasRDRAND() bool {
	return false
}

func rdrand32() (uint32, bool) {
	return 0, false
}
