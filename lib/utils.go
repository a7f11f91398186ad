package lib

// ByteSplit will split []byte into chunks of lim. Chunks come back in
// offset order and every chunk except possibly the last has exactly lim
// bytes, so concatenating them reproduces buf. An empty buf yields no
// chunks. The returned slices alias buf.
func ByteSplit(buf []byte, lim int) [][]byte {
	var chunk []byte

	chunks := make([][]byte, 0, len(buf)/lim+1)
	for len(buf) >= lim {
		chunk, buf = buf[:lim], buf[lim:]
		chunks = append(chunks, chunk)
	}

	if len(buf) > 0 {
		chunks = append(chunks, buf[:])
	}

	return chunks
}
