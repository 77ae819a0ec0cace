package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

func TestParseAccountID(t *testing.T) {
	const valid = "38f54a1f52ec226a40d806156fb0434c71ae09fd0073aa3de2e0515a8948b0f3"

	t.Run("valid", func(t *testing.T) {
		id, err := types.ParseAccountID(valid)
		require.NoError(t, err)
		require.Equal(t, valid, id.String())
		require.Equal(t, "38f54", id.ShortString())
		require.False(t, id.IsEmpty())
	})
	t.Run("too short", func(t *testing.T) {
		_, err := types.ParseAccountID(valid[:63])
		require.ErrorIs(t, err, types.ErrWrongAccountIDLength)
	})
	t.Run("too long", func(t *testing.T) {
		_, err := types.ParseAccountID(valid + "00")
		require.ErrorIs(t, err, types.ErrWrongAccountIDLength)
	})
	t.Run("not hex", func(t *testing.T) {
		_, err := types.ParseAccountID(strings.Repeat("z", types.AccountIDHexLength))
		require.ErrorIs(t, err, types.ErrDecodeHex)
	})
}

func TestAccountIDJSON(t *testing.T) {
	id := types.BytesToAccountID([]byte{1, 2, 3})
	data, err := json.Marshal(struct {
		ID types.AccountID `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	require.Equal(t, `{"id":"`+strings.Repeat("0", 58)+`010203"}`, string(data))

	var decoded struct {
		ID types.AccountID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded.ID)

	require.Error(t, json.Unmarshal([]byte(`{"id":"abcd"}`), &decoded))
}
