package events_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/stardrift/internal/events"
)

func TestFeedNewestFirst(t *testing.T) {
	feed := events.NewFeed(10)
	for i := 0; i < 3; i++ {
		feed.Notify(events.Notification{
			Kind:    events.KindLog,
			Message: fmt.Sprintf("entry %d", i),
			At:      time.Now(),
		})
	}

	got := feed.Recent()
	assert.Len(t, got, 3)
	assert.Equal(t, "entry 2", got[0].Message)
	assert.Equal(t, "entry 0", got[2].Message)
}

func TestFeedBounded(t *testing.T) {
	feed := events.NewFeed(5)
	for i := 0; i < 12; i++ {
		feed.Notify(events.Notification{Message: fmt.Sprintf("entry %d", i)})
	}

	got := feed.Recent()
	assert.Len(t, got, 5)
	assert.Equal(t, "entry 11", got[0].Message)
	assert.Equal(t, "entry 7", got[4].Message)
}

func TestRecentReturnsCopy(t *testing.T) {
	feed := events.NewFeed(5)
	feed.Notify(events.Notification{Message: "original"})

	got := feed.Recent()
	got[0].Message = "mutated"

	assert.Equal(t, "original", feed.Recent()[0].Message)
}

func TestMultiFansOut(t *testing.T) {
	a := events.NewFeed(5)
	b := events.NewFeed(5)
	sink := events.Multi{a, b}

	sink.Notify(events.Notification{Message: "hello"})

	assert.Len(t, a.Recent(), 1)
	assert.Len(t, b.Recent(), 1)
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "0", events.FormatCredits(0))
	assert.Equal(t, "1,250", events.FormatCredits(1250))
	// Fractions truncate rather than round: players never see credit
	// they cannot spend.
	assert.Equal(t, "999", events.FormatCredits(999.95))
	assert.Equal(t, "1,234,567", events.FormatCredits(1234567.2))
}
