package proto

// Version holds the protocol version numbers as they were met in the request line.
type Version struct {
	Major, Minor uint8
}

var (
	HTTP09 = Version{Major: 0, Minor: 9}
	HTTP10 = Version{Major: 1, Minor: 0}
	HTTP11 = Version{Major: 1, Minor: 1}
)

// String returns the version in its wire form, e.g. HTTP/1.1
func (v Version) String() string {
	return "HTTP/" + itoa(v.Major) + "." + itoa(v.Minor)
}

// KeepAlive reports whether connections of this version are persistent by default.
func (v Version) KeepAlive() bool {
	return v.Major == 1 && v.Minor >= 1
}

func itoa(n uint8) string {
	if n < 10 {
		return string(rune('0' + n))
	}

	var buff [3]byte
	i := len(buff)
	for ; n > 0; n /= 10 {
		i--
		buff[i] = '0' + n%10
	}

	return string(buff[i:])
}
