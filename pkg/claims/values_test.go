package claims_test

import (
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granjalabs/avikit/pkg/claims"
)

func TestString(t *testing.T) {
	t.Parallel()

	mc := jwt.MapClaims{"a": "first", "b": "second", "empty": "", "num": float64(1)}

	v, ok := claims.String(mc, "a", "b")
	require.True(t, ok)
	assert.Equal(t, "first", v)

	v, ok = claims.String(mc, "missing", "b")
	require.True(t, ok)
	assert.Equal(t, "second", v)

	_, ok = claims.String(mc, "empty")
	assert.False(t, ok)

	_, ok = claims.String(mc, "num")
	assert.False(t, ok, "non-string claims are not stringified")
}

func TestInt64(t *testing.T) {
	t.Parallel()

	mc := jwt.MapClaims{
		"str":     "42",
		"padded":  " 7 ",
		"float":   float64(13),
		"number":  json.Number("99"),
		"garbage": "not-a-number",
	}

	for name, tc := range map[string]struct {
		keys []string
		want int64
	}{
		"string form":         {[]string{"str"}, 42},
		"padded string":       {[]string{"padded"}, 7},
		"float64 form":        {[]string{"float"}, 13},
		"json.Number form":    {[]string{"number"}, 99},
		"unparsable skipped":  {[]string{"garbage", "str"}, 42},
		"missing key skipped": {[]string{"nope", "float"}, 13},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, ok := claims.Int64(mc, tc.keys...)
			require.True(t, ok)
			assert.Equal(t, tc.want, v)
		})
	}

	_, ok := claims.Int64(mc, "garbage")
	assert.False(t, ok)
	_, ok = claims.Int64(mc, "missing")
	assert.False(t, ok)
}

func TestSubjectGUID(t *testing.T) {
	t.Parallel()

	primary := uuid.New()
	fallback := uuid.New()

	t.Run("nameidentifier preferred", func(t *testing.T) {
		t.Parallel()

		mc := jwt.MapClaims{
			claims.ClaimNameIdentifier: primary.String(),
			claims.ClaimSubject:        fallback.String(),
		}
		id, ok := claims.SubjectGUID(mc)
		require.True(t, ok)
		assert.Equal(t, primary, id)
	})

	t.Run("sub as fallback", func(t *testing.T) {
		t.Parallel()

		id, ok := claims.SubjectGUID(jwt.MapClaims{claims.ClaimSubject: fallback.String()})
		require.True(t, ok)
		assert.Equal(t, fallback, id)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		t.Parallel()

		_, ok := claims.SubjectGUID(jwt.MapClaims{claims.ClaimSubject: "user-42"})
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		_, ok := claims.SubjectGUID(jwt.MapClaims{})
		assert.False(t, ok)
	})
}
