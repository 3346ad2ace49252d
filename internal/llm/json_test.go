package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superclaims/internal/llm"
)

func TestStripCodeFences(t *testing.T) {
	t.Run("labeled_fence", func(t *testing.T) {
		reply := "```json\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, llm.StripCodeFences(reply))
	})

	t.Run("bare_fence", func(t *testing.T) {
		reply := "```\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, llm.StripCodeFences(reply))
	})

	t.Run("no_fence", func(t *testing.T) {
		assert.Equal(t, `{"a": 1}`, llm.StripCodeFences("  {\"a\": 1}\n"))
	})

	t.Run("idempotent", func(t *testing.T) {
		reply := "```json\n{\"a\": 1}\n```"
		once := llm.StripCodeFences(reply)
		assert.Equal(t, once, llm.StripCodeFences(once))
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		HospitalName string  `json:"hospital_name"`
		TotalAmount  float64 `json:"total_amount"`
	}

	t.Run("fenced_equals_unfenced", func(t *testing.T) {
		raw := `{"hospital_name": "ABC Hospital", "total_amount": 12500}`
		fenced := "```json\n" + raw + "\n```"

		var fromRaw, fromFenced payload
		require.NoError(t, llm.DecodeJSON(raw, &fromRaw))
		require.NoError(t, llm.DecodeJSON(fenced, &fromFenced))
		assert.Equal(t, fromRaw, fromFenced)
	})

	t.Run("prose_around_object", func(t *testing.T) {
		reply := "Here is the extraction:\n{\"hospital_name\": \"ABC\", \"total_amount\": 10}\nLet me know if you need more."
		var p payload
		require.NoError(t, llm.DecodeJSON(reply, &p))
		assert.Equal(t, "ABC", p.HospitalName)
	})

	t.Run("no_json", func(t *testing.T) {
		var p payload
		err := llm.DecodeJSON("I could not find any data in this document.", &p)
		assert.Error(t, err)
	})

	t.Run("malformed_json", func(t *testing.T) {
		var p payload
		err := llm.DecodeJSON(`{"hospital_name": `, &p)
		assert.Error(t, err)
	})
}
