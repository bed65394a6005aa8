package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTableName_Valid(t *testing.T) {
	r := require.New(t)

	r.NoError(ValidateTableName("foo"))
	r.NoError(ValidateTableName("_private"))
	r.NoError(ValidateTableName("person_v2"))
}

func TestValidateTableName_Empty(t *testing.T) {
	require.Error(t, ValidateTableName(""))
}

func TestValidateTableName_BadStart(t *testing.T) {
	require.Error(t, ValidateTableName("1table"))
}

func TestValidateTableName_BadCharacter(t *testing.T) {
	require.Error(t, ValidateTableName("foo-bar"))
	require.Error(t, ValidateTableName("foo bar"))
}

func TestValidateTableName_ReservedWord(t *testing.T) {
	r := require.New(t)

	r.Error(ValidateTableName("select"))
	r.Error(ValidateTableName("SELECT"))
	r.Error(ValidateTableName("Table"))
}
