package tokenizer

import "sync"

// unescapePool holds scratch buffers for collapsing doubled enclosures.
var unescapePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64)
		return &b
	},
}

// getBuffer gets an empty []byte from the pool.
func getBuffer() []byte {
	p := unescapePool.Get().(*[]byte)
	return (*p)[:0]
}

// putBuffer returns buf to the pool unless it grew beyond a typical field.
func putBuffer(buf []byte) {
	const maxCapacity = 4096
	if cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	unescapePool.Put(&buf)
}

// unescape collapses every doubled enclosure in raw to a single byte. raw is
// the content between the enclosures of a quoted field, so every enclosure
// in it is doubled.
func unescape(raw []byte, enclosure byte) string {
	buf := getBuffer()
	for i := 0; i < len(raw); i++ {
		buf = append(buf, raw[i])
		if raw[i] == enclosure {
			i++
		}
	}
	s := string(buf)
	putBuffer(buf)
	return s
}
