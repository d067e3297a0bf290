package notify

import (
	"testing"
	"time"
)

func TestFeedKeepsNewest(t *testing.T) {
	f := NewFeed(2)
	f.Notify(Info("one"))
	f.Notify(Info("two"))
	f.Notify(Error("three"))

	got := f.Recent()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Message != "two" || got[1].Message != "three" {
		t.Errorf("Recent = %+v", got)
	}
	if got[1].Level != LevelError {
		t.Errorf("level = %q", got[1].Level)
	}
}

func TestFeedSince(t *testing.T) {
	f := NewFeed(0)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.Notify(Notification{Level: LevelInfo, Message: "old", At: base})
	f.Notify(Notification{Level: LevelInfo, Message: "new", At: base.Add(time.Minute)})

	got := f.Since(base)
	if len(got) != 1 || got[0].Message != "new" {
		t.Errorf("Since = %+v", got)
	}
}

func TestMultiSkipsNil(t *testing.T) {
	var seen []string
	rec := NotifierFunc(func(n Notification) { seen = append(seen, n.Message) })

	Multi(rec, nil, rec).Notify(Success("saved"))

	if len(seen) != 2 {
		t.Errorf("seen = %v", seen)
	}
}
