package method

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE}

func (m Method) String() string {
	lut := [...]string{
		Unknown: "UNKNOWN",
		GET:     "GET",
		HEAD:    "HEAD",
		POST:    "POST",
		PUT:     "PUT",
		DELETE:  "DELETE",
	}

	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}
