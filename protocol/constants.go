package protocol

// Magic is the four byte marker the wiiload listener expects at the
// start of every transfer.
const Magic = "HAXX"

// Protocol version understood by the Homebrew Channel.
const (
	VersionMajor = 0
	VersionMinor = 5
)

// Port is the well-known TCP port the wiiload listener binds on the Wii.
const Port = 4299

// ChunkSize is the maximum number of compressed payload bytes written
// to the socket in a single piece.
const ChunkSize = 128 * 1024

// HeaderSize is the size of an encoded transfer header, magic included.
const HeaderSize = 16
