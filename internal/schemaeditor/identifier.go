package schemaeditor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/jackc/pgx/v5"
)

const maxIdentifierLen = 63

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		all alter analyse analyze and any array as asc asymmetric both case cast
		check collate column constraint create current_catalog current_date
		current_role current_time current_timestamp current_user default
		deferrable delete desc distinct do drop else end except false fetch for
		foreign from grant group having in initially insert intersect into
		lateral leading limit localtime localtimestamp not null offset on only
		or order placing primary references returning select session_user some
		symmetric table then to trailing true truncate union unique update user
		using variadic when where window with`) {
		reservedWords[w] = struct{}{}
	}
}

// ValidateIdentifier checks a table or column name and returns it folded to
// lower case.
func ValidateIdentifier(name string) (string, error) {
	if !identifierPattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", database.ErrInvalidIdentifier, name)
	}
	if len(name) > maxIdentifierLen {
		return "", fmt.Errorf("%w: %q is longer than %d bytes", database.ErrInvalidIdentifier, name, maxIdentifierLen)
	}
	lower := strings.ToLower(name)
	if _, ok := reservedWords[lower]; ok {
		return "", fmt.Errorf("%w: %q is a reserved word", database.ErrInvalidIdentifier, name)
	}
	return lower, nil
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
