package output

import "reflect"

func Plural(countable interface{}, singular string, plural string) string {
	switch c := countable.(type) {
	case int:
		if c != 1 {
			return plural
		}
	default:
		if reflect.ValueOf(c).Len() != 1 {
			return plural
		}
	}
	return singular
}
