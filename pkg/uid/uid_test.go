package uid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReuse(t *testing.T) {
	id := New()
	require.Equal(t, id, Reuse(id))

	fresh := Reuse("not-a-uuid")
	require.NotEqual(t, "not-a-uuid", fresh)
	require.Equal(t, fresh, Reuse(fresh))
}
