package bytes

// Join joins multiple different bytes.
func Join(s ...[]byte) []byte {
	n := 0
	for _, v := range s {
		n += len(v)
	}
	b, i := make([]byte, n), 0
	for _, v := range s {
		i += copy(b[i:], v)
	}
	return b
}
