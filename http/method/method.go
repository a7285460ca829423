package method

// Parse matches the token against the supported methods set. The length is compared first,
// so most unknown tokens are rejected without looking at their content. Matching is
// case-sensitive.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}
