// Package identifier validates table names accepted by the builder's
// consumer API before they're copied verbatim into the schema row.
package identifier

import (
	"fmt"
	"strings"
	"unicode"

	radix "github.com/armon/go-radix"
)

// reservedWords holds the SQL keywords a table name must not collide
// with, case-insensitively. A radix tree gives prefix-sharing keyword
// sets (e.g. every "CREATE*"/"CROSS*" variant) cheap lookup without
// hand-rolling a trie.
var reservedWords = buildReservedTree()

func buildReservedTree() *radix.Tree {
	t := radix.New()
	for _, w := range []string{
		"select", "insert", "update", "delete", "create", "drop", "alter",
		"table", "index", "view", "trigger", "from", "where", "join",
		"on", "and", "or", "not", "null", "primary", "key", "foreign",
		"references", "unique", "check", "default", "constraint",
		"group", "order", "by", "having", "limit", "offset", "union",
		"all", "distinct", "as", "into", "values", "set", "cross",
		"inner", "outer", "left", "right", "natural", "using", "with",
		"recursive", "transaction", "commit", "rollback", "begin",
	} {
		t.Insert(w, struct{}{})
	}
	return t
}

// ValidateTableName reports whether name is usable as a table identifier:
// non-empty, starting with a letter or underscore, made up of letters,
// digits and underscores afterward, and not a bare SQL reserved word.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("identifier: table name must not be empty")
	}

	first := rune(name[0])
	if !unicode.IsLetter(first) && first != '_' {
		return fmt.Errorf("identifier: table name %q must start with a letter or underscore", name)
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("identifier: table name %q contains invalid character %q", name, r)
		}
	}

	if _, reserved := reservedWords.Get(strings.ToLower(name)); reserved {
		return fmt.Errorf("identifier: table name %q is a reserved SQL keyword", name)
	}

	return nil
}
