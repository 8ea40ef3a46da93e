package notion

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ParseID accepts a dashed or dashless id, or a Notion URL whose last path
// segment ends in one, and returns the canonical dashed form.
func ParseID(s string) (string, error) {
	raw := strings.TrimSpace(s)
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", validationError("", ErrInvalidID, err.Error())
		}
		// peeked pages carry the id in p
		if p := u.Query().Get("p"); p != "" {
			raw = p
		} else {
			raw = u.Path[strings.LastIndex(u.Path, "/")+1:]
		}
	}
	if len(raw) > 32 && !isUUIDShape(raw) {
		raw = raw[len(raw)-32:]
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", validationError("", ErrInvalidID, "cannot parse "+strings.TrimSpace(s))
	}
	return id.String(), nil
}

func isUUIDShape(s string) bool {
	return len(s) == 36 && strings.Count(s, "-") == 4
}

// PageURL returns the web url of a page or database.
func PageURL(id string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(id, "-", "")
}
