package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunvoyage/portal/internal/client/models"
)

func closed(duration string) models.SessionInterval {
	logoutAt := "2026-01-02T10:00:00Z"
	return models.SessionInterval{
		LoginAt:        "2026-01-02T09:00:00Z",
		LogoutAt:       &logoutAt,
		TimeDifference: duration,
	}
}

func open() models.SessionInterval {
	return models.SessionInterval{LoginAt: "2026-01-02T09:00:00Z"}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Equal(t, ZeroTotalTime, got.TotalTime)
	assert.False(t, got.Online)
}

func TestAggregate_SingleOpenInterval(t *testing.T) {
	got := Aggregate([]models.SessionInterval{open()})
	assert.Equal(t, UnknownTotalTime, got.TotalTime)
	assert.True(t, got.Online)
}

func TestAggregate_SingleClosedInterval(t *testing.T) {
	got := Aggregate([]models.SessionInterval{closed("01:30:45")})
	assert.Equal(t, "01 hrs 30 min 45 sec", got.TotalTime)
	assert.False(t, got.Online)
}

func TestAggregate_MixedClosedAndOpen(t *testing.T) {
	got := Aggregate([]models.SessionInterval{closed("01:30:45"), open()})
	assert.Equal(t, "01 hrs 30 min 45 sec", got.TotalTime, "open interval is excluded from the sum")
	assert.True(t, got.Online, "open interval still marks the user online")
}

func TestAggregate_CarryArithmetic(t *testing.T) {
	got := Aggregate([]models.SessionInterval{closed("00:45:50"), closed("00:30:20")})
	assert.Equal(t, "01 hrs 16 min 10 sec", got.TotalTime)
	assert.False(t, got.Online)
}

func TestAggregate_SecondsCarryIntoMinutes(t *testing.T) {
	got := Aggregate([]models.SessionInterval{closed("00:00:59"), closed("00:00:02")})
	assert.Equal(t, "00 hrs 01 min 01 sec", got.TotalTime)
}

func TestAggregate_MalformedDurationCountsAsZero(t *testing.T) {
	got := Aggregate([]models.SessionInterval{closed("garbage"), closed("00:10:00")})
	assert.Equal(t, "00 hrs 10 min 00 sec", got.TotalTime)
}

func TestAggregate_Deterministic(t *testing.T) {
	input := []models.SessionInterval{closed("00:45:50"), open(), closed("00:30:20")}
	first := Aggregate(input)
	second := Aggregate(input)
	assert.Equal(t, first, second)
}
