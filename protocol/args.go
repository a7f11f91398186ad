package protocol

// ArgBlock builds the launch argument block: the payload's display
// name, then each extra argument, NUL-joined with a trailing NUL. The
// receiver hands this to the launched application verbatim, so element
// order is preserved exactly.
func ArgBlock(name string, extra []string) []byte {
	size := len(name) + 1
	for _, a := range extra {
		size += len(a) + 1
	}

	block := make([]byte, 0, size)
	block = append(block, name...)
	block = append(block, 0x00)
	for _, a := range extra {
		block = append(block, a...)
		block = append(block, 0x00)
	}

	return block
}
