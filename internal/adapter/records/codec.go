package records

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// ListSeparator joins list elements in a single text column.
const ListSeparator = "|"

// Encode serializes a value to its stored text form. Lists are joined with
// ListSeparator; an element containing the separator is rejected.
func Encode(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []string:
		for _, el := range x {
			if strings.Contains(el, ListSeparator) {
				return "", domain.NewValidationError("list",
					fmt.Sprintf("element %q contains reserved %q", el, ListSeparator))
			}
		}
		return strings.Join(x, ListSeparator), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", domain.NewValidationError("value", fmt.Sprintf("unsupported type %T", v))
	}
}

// SplitList is the inverse of Encode for lists. Empty elements are dropped,
// so "" decodes to an empty list.
func SplitList(s string) []string {
	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func checkIdent(name string) error {
	if !identRe.MatchString(name) {
		return domain.NewValidationError("identifier", fmt.Sprintf("invalid name %q", name))
	}
	return nil
}

func quote(name string) string { return `"` + name + `"` }
