package encoding

import "github.com/vecio/colvec/endian"

// littleEndian is the wire format's mandated byte order for every
// packed region this package writes.
var littleEndian = endian.GetLittleEndianEngine()
