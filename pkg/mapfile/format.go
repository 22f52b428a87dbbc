package mapfile

// magic is the fixed 7-byte file signature, matching the C string
// "DG_MAP\0" (6 characters plus the trailing NUL terminator).
var magic = [7]byte{'D', 'G', '_', 'M', 'A', 'P', 0}

// formatVersion bumps whenever the section layout changes in a
// non-backward-compatible way.
const formatVersion uint16 = 1

// headerSize is the byte size of everything from the magic through the
// reserved flags field, before the first length-prefixed section.
const headerSize = len(magic) + 2 + 4 + 4 + 4 + 8 + 4 + 4
