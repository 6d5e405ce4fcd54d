package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ItemTypeLost  = "Lost"
	ItemTypeFound = "Found"
)

// dateLayout is how dateLostFound is exposed over the API. Incoming values
// may also carry a full RFC 3339 timestamp; only the calendar date is kept.
const dateLayout = "2006-01-02"

// Item is a lost or found report. Clients may attach arbitrary extra fields
// (e.g. category, color, reward) which are stored and returned verbatim.
type Item struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	Name          string                 `bson:"name"`
	Description   string                 `bson:"description"`
	Type          string                 `bson:"type"`
	Location      string                 `bson:"locationLostFound"`
	DateLostFound time.Time              `bson:"dateLostFound"`
	ReportUserID  string                 `bson:"reportUserId"`
	Extra         map[string]interface{} `bson:",inline"`
}

// itemKnownKeys are the JSON keys owned by the typed fields above.
var itemKnownKeys = map[string]bool{
	"id":                true,
	"name":              true,
	"description":       true,
	"type":              true,
	"locationLostFound": true,
	"dateLostFound":     true,
	"reportUserId":      true,
}

func (it Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(it.Extra)+7)
	for k, v := range it.Extra {
		if !itemKnownKeys[k] {
			out[k] = v
		}
	}
	if !it.ID.IsZero() {
		out["id"] = it.ID.Hex()
	}
	out["name"] = it.Name
	out["description"] = it.Description
	out["type"] = it.Type
	out["locationLostFound"] = it.Location
	out["reportUserId"] = it.ReportUserID
	if !it.DateLostFound.IsZero() {
		out["dateLostFound"] = it.DateLostFound.Format(dateLayout)
	}
	return json.Marshal(out)
}

func (it *Item) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if s, ok := raw["id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			it.ID = oid
		}
	}
	it.Name, _ = raw["name"].(string)
	it.Description, _ = raw["description"].(string)
	it.Type, _ = raw["type"].(string)
	it.Location, _ = raw["locationLostFound"].(string)
	it.ReportUserID, _ = raw["reportUserId"].(string)
	if s, ok := raw["dateLostFound"].(string); ok && s != "" {
		t, err := ParseItemDate(s)
		if err != nil {
			return err
		}
		it.DateLostFound = t
	}
	it.Extra = map[string]interface{}{}
	for k, v := range raw {
		if !itemKnownKeys[k] {
			it.Extra[k] = v
		}
	}
	return nil
}

// ParseItemDate accepts a plain date or a full timestamp and truncates to
// the calendar date in UTC, so a created item reads back on the same day.
func ParseItemDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dateLostFound %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
