package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStruct(t *testing.T) {
	note := "  <b>note</b>  "
	req := struct {
		Name string
		Note *string
	}{
		Name: "  alice<script>  ",
		Note: &note,
	}

	SanitizeStruct(&req)

	assert.Equal(t, "alice&lt;script&gt;", req.Name)
	assert.Equal(t, "&lt;b&gt;note&lt;/b&gt;", *req.Note)
}

func TestSanitizeStruct_NonStructInput(t *testing.T) {
	// Must not panic
	SanitizeStruct(nil)
	SanitizeStruct("plain string")
	s := "x"
	SanitizeStruct(&s)
}

func TestValidateSafeID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"alice", true},
		{"user_1.test-a", true},
		{"has space", false},
		{"semi;colon", false},
		{"<script>", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeStringRe.MatchString(tt.input), tt.input)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("nil means no bound", func(t *testing.T) {
		got, err := ParseDate(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty means no bound", func(t *testing.T) {
		empty := ""
		got, err := ParseDate(&empty)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("date only", func(t *testing.T) {
		s := "2025-06-01"
		got, err := ParseDate(&s)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("rfc3339", func(t *testing.T) {
		s := "2025-06-01T12:30:00Z"
		got, err := ParseDate(&s)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 12, got.UTC().Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		s := "June 1st"
		got, err := ParseDate(&s)
		assert.Nil(t, got)
		assert.Error(t, err)
	})
}
