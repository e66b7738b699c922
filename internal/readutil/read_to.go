// Package readutil contains methods to scan serialized objects
package readutil

// ReadTo reads from b until to is seen and returns the bytes between the start
// and to, exclusive of to. Returns nil if it's not found
func ReadTo(b []byte, to byte) []byte {
	var i int
	for ; i < len(b) && b[i] != to; i++ {
		// the conditions handle it all!
	}

	if i == len(b) {
		return nil
	}

	return b[0:i]
}

// Lines returns all the \n terminated lines of b, without their \n.
// A last line that has no \n is returned as well.
func Lines(b []byte) [][]byte {
	lines := [][]byte{}
	for offset := 0; offset < len(b); {
		line := ReadTo(b[offset:], '\n')
		if line == nil {
			lines = append(lines, b[offset:])
			break
		}
		lines = append(lines, line)
		offset += len(line) + 1 // +1 for the \n
	}
	return lines
}
