package keyz

import "encoding/hex"

// successor returns the smallest byte string that is greater than every
// string having data as a prefix, or false if there is none.
func successor(data string) ([]byte, bool) {
	n := len(data)
	for i := n - 1; i >= 0; i-- {
		if data[i] != 0xFF {
			end := []byte(data[:i+1])
			end[i]++
			return end, true
		}
	}
	return nil, false
}

func hexstr(b []byte) string {
	if b == nil {
		return "<nil>"
	}
	if len(b) == 0 {
		return "<empty>"
	}
	return hex.EncodeToString(b)
}
