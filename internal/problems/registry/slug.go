package registry

import "strings"

// Slugify converts a component base name into its URL slug by inserting a
// hyphen at every lowercase-to-uppercase transition and lowercasing the result.
//
//	UserDirectory -> user-directory
func Slugify(name string) string {
	return strings.ToLower(splitCamel(name, '-'))
}

// Titleize converts a component base name into a display title by inserting a
// space at every lowercase-to-uppercase transition.
//
//	TodoList -> Todo List
func Titleize(name string) string {
	return splitCamel(name, ' ')
}

func splitCamel(name string, sep byte) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i > 0 && isLower(name[i-1]) && isUpper(c) {
			b.WriteByte(sep)
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
