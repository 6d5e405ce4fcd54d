package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestItemJSONPassthrough(t *testing.T) {
	payload := `{
		"name": "Black umbrella",
		"description": "Left in the library",
		"type": "Lost",
		"locationLostFound": "Frenchay Library",
		"dateLostFound": "2025-03-14",
		"reportUserId": "u1",
		"color": "black",
		"reward": 10
	}`

	var it Item
	require.NoError(t, json.Unmarshal([]byte(payload), &it))
	require.Equal(t, "Black umbrella", it.Name)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), it.DateLostFound)
	require.Equal(t, "black", it.Extra["color"])

	it.ID = primitive.NewObjectID()
	out, err := json.Marshal(it)
	require.NoError(t, err)

	var round map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &round))
	require.Equal(t, "2025-03-14", round["dateLostFound"])
	require.Equal(t, "black", round["color"])
	require.Equal(t, float64(10), round["reward"])
	require.Equal(t, it.ID.Hex(), round["id"])
}

func TestParseItemDate(t *testing.T) {
	d, err := ParseItemDate("2025-03-14")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	// a full timestamp is truncated to its calendar date
	d, err = ParseItemDate("2025-03-14T18:30:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseItemDate("14/03/2025")
	require.Error(t, err)
}
