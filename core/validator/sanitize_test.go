package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nickname struct {
	Nick string `form:"nick" sanitize:"trim"`
	Age  int    `form:"age"`
}

func TestStructSchema_SanitizeFailure(t *testing.T) {
	t.Parallel()

	schema := MustStruct[nickname]()
	// Tags are checked when the schema is built, so break one afterwards.
	schema.fields[0].sanitize = "max:0"

	data, report := schema.Validate(map[string]string{"nick": "  bob  ", "age": "7"})
	require.NotNil(t, report)
	assert.Equal(t, nickname{}, data)
	require.Len(t, report.FieldErrors["nick"], 1)
	assert.Contains(t, report.FieldErrors["nick"][0], "unknown sanitizer")
	assert.False(t, report.Has("age"))
}
