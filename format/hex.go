package format

// IsHexValid reports whether `hex` has the form #RRGGBB: seven characters
// starting with '#'. The digits themselves are not checked here.
func IsHexValid(hex string) bool {
	return len(hex) == 7 && hex[0] == '#'
}

// AreHexesValid reports whether every entry is a valid hex, stopping at the
// first invalid one
func AreHexesValid(hexes []string) bool {
	for _, hex := range hexes {
		if !IsHexValid(hex) {
			return false
		}
	}
	return true
}
