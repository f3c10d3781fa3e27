package conv

// AppendUint appends the base-10 representation of n to dst.
// No fmt/strconv dependency; allocation only if dst must grow.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// Utoa returns the base-10 representation of n.
func Utoa(n uint64) string {
	var buf [20]byte
	return string(AppendUint(buf[:0], n))
}
