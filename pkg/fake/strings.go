package fake

const (
	charsetAlphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLetters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetDigits       = "0123456789"
	charsetHex          = "0123456789abcdef"
)

// Alphanumeric returns a random string of n letters and digits. n <= 0 yields
// an empty string.
func Alphanumeric(n int) string {
	return fromCharset(charsetAlphanumeric, n)
}

// Letters returns a random string of n ASCII letters.
func Letters(n int) string {
	return fromCharset(charsetLetters, n)
}

// Digits returns a random string of n decimal digits.
func Digits(n int) string {
	return fromCharset(charsetDigits, n)
}

// Hex returns a random string of n lowercase hexadecimal digits.
func Hex(n int) string {
	return fromCharset(charsetHex, n)
}
