package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHumanizeLabel(t *testing.T) {
	cases := map[string]string{
		"missing_sheet_in_partial_delivery": "Missing Sheet In Partial Delivery",
		"":                                  "",
		"shipping":                          "Shipping",
		"late_DELIVERY":                     "Late Delivery",
		"abc1def":                           "Abc1Def",
		"item_2pack":                        "Item 2Pack",
		"opencx_id":                         "Opencx Id",
		"ALL_CAPS":                          "All Caps",
		"don't_care":                        "Don'T Care",
	}
	for in, want := range cases {
		assert.Equal(t, want, HumanizeLabel(in), in)
	}
}

func TestToCategoryToken(t *testing.T) {
	assert.Equal(t, "missing_sheet", ToCategoryToken("Missing Sheet"))
	assert.Equal(t, "shipping", ToCategoryToken(" shipping "))
	assert.Equal(t, "late_delivery", ToCategoryToken(HumanizeLabel("late_delivery")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 66.67, Percent(2, 3))
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 100.0, Percent(4, 4))
}

func TestTopNStableAndTruncated(t *testing.T) {
	in := []Counted{{"a", 1}, {"b", 5}, {"c", 5}, {"d", 3}}
	got := TopN(in, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []Counted{{"b", 5}, {"c", 5}, {"d", 3}}, got)
	assert.Equal(t, "a", in[0].Key, "input must not be reordered")
	assert.Len(t, TopN(in, 0), 4)
}

func TestNormalizeReview(t *testing.T) {
	id := primitive.NewObjectID()
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	doc := bson.M{
		"_id":         id,
		"time_period": primitive.NewDateTimeFromTime(ts),
		"nested":      bson.M{"ref": id, "at": ts},
		"tags":        bson.A{"x", id},
		"platform":    "gorgias",
	}
	out := NormalizeReview(doc)
	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, "2024-03-05 14:07:09", out["time_period"])
	assert.Equal(t, "gorgias", out["platform"])
	nested := out["nested"].(map[string]interface{})
	assert.Equal(t, id.Hex(), nested["ref"])
	assert.Equal(t, "2024-03-05T14:07:09Z", nested["at"])
	assert.Equal(t, []interface{}{"x", id.Hex()}, out["tags"])
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Minute, time.Hour)
	defer c.Stop()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.SetWithTTL("k", true, time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	c.purgeExpired()
	assert.Equal(t, 0, c.Len())
}

func TestEmailHelpers(t *testing.T) {
	assert.NoError(t, ValidateEmail("a.b@joineverestgroup.com"))
	assert.Error(t, ValidateEmail("nope"))
	assert.True(t, HasEmailDomain("A@JoinEverestGroup.com", "@joineverestgroup.com"))
	assert.False(t, HasEmailDomain("a@gmail.com", "@joineverestgroup.com"))
	assert.Error(t, ValidatePassword("short"))
}
