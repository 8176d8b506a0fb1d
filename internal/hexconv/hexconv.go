package hexconv

// Invalid marks a byte that is not a hexadecimal digit.
const Invalid = 0xff

var decodeTable = func() (lut [256]byte) {
	for i := range lut {
		lut[i] = Invalid
	}

	for char := byte('0'); char <= '9'; char++ {
		lut[char] = char - '0'
	}

	for char := byte('a'); char <= 'f'; char++ {
		lut[char] = char - 'a' + 0xa
		lut[char&^0x20] = char - 'a' + 0xa
	}

	return lut
}()

// Parse returns the value of a hex digit, or Invalid.
func Parse(char byte) byte {
	return decodeTable[char]
}
