package cstr

// at returns s[i], or NUL past the end of the slice.
func at(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// Strcmp compares two sequences lexicographically as unsigned bytes.
// It returns the difference of the first differing pair, or 0 when the
// sequences are equal through their terminators.
func Strcmp(a, b []byte) int {
	for i := 0; ; i++ {
		ca, cb := at(a, i), at(b, i)
		if ca != cb || ca == 0 {
			return int(ca) - int(cb)
		}
	}
}

// Strncmp is Strcmp limited to at most n byte comparisons.
// It returns 0 when n <= 0 or when the first n bytes are equal.
func Strncmp(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		ca, cb := at(a, i), at(b, i)
		if ca != cb || ca == 0 {
			return int(ca) - int(cb)
		}
	}
	return 0
}
