package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStatusesOrder(t *testing.T) {
	want := []JobStatus{"New", "Saved", "Applied", "Interview", "Offer", "Rejected"}
	got := Statuses()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Statuses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got[0] = "Mutated"
	if Statuses()[0] != StatusNew {
		t.Error("Statuses must return a copy")
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("Interview"); !ok || s != StatusInterview {
		t.Errorf("ParseStatus(Interview) = %q, %v", s, ok)
	}
	for _, in := range []string{"interview", "", "42", "Archived"} {
		if _, ok := ParseStatus(in); ok {
			t.Errorf("ParseStatus(%q) should fail", in)
		}
	}
}

func TestTimestampDecode(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-03-01T10:20:30Z"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{`"2024-03-01T10:20:30.123456"`, time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{`"2024-03-01T10:20:30+02:00"`, time.Date(2024, 3, 1, 8, 20, 30, 0, time.UTC)},
	}

	for _, tt := range tests {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if !ts.Equal(tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, ts.Time, tt.want)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil || !ts.IsZero() {
		t.Errorf("null should decode to zero, got %v, %v", ts, err)
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for garbage timestamp")
	}
}

func TestJobDecodeNaiveTimestamps(t *testing.T) {
	body := `{"id":3,"user_id":1,"title":"Go Dev","company":"Acme","description":"d",
		"status":"Applied","created_at":"2024-05-02T09:00:00","updated_at":null}`

	var j Job
	if err := json.Unmarshal([]byte(body), &j); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if j.Status != StatusApplied || j.CreatedAt.Year() != 2024 {
		t.Errorf("unexpected job %+v", j)
	}
}

func TestJobUpdateOmitsUnsetFields(t *testing.T) {
	st := StatusOffer
	b, err := json.Marshal(JobUpdate{Status: &st})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"status":"Offer"}` {
		t.Errorf("Marshal = %s", b)
	}
	if (JobUpdate{}).Empty() != true || (JobUpdate{Status: &st}).Empty() {
		t.Error("Empty misreports")
	}
}

func TestValidateJobCreate(t *testing.T) {
	err := Validate(JobCreate{Title: "Go Dev"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, want := range []string{"company is required", "description is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should contain %q", err, want)
		}
	}

	err = Validate(JobCreate{Title: "t", Company: "c", Description: "d", Status: "Archived"})
	if err == nil || !strings.Contains(err.Error(), "status must be one of") {
		t.Errorf("expected status error, got %v", err)
	}

	if err := Validate(JobCreate{Title: "t", Company: "c", Description: "d", Status: StatusSaved}); err != nil {
		t.Errorf("valid job rejected: %v", err)
	}
}

func TestValidateSearchParams(t *testing.T) {
	if err := Validate(SearchParams{}.Normalize()); err == nil || !strings.Contains(err.Error(), "query is required") {
		t.Errorf("expected query error, got %v", err)
	}
	if err := Validate(SearchParams{Query: "go", NumPages: 6}); err == nil {
		t.Error("num_pages above 5 should fail")
	}

	p := SearchParams{Query: "  golang  "}.Normalize()
	if p.Query != "golang" || p.Page != 1 || p.NumPages != 1 {
		t.Errorf("Normalize = %+v", p)
	}
}

func TestJobFilterDefaults(t *testing.T) {
	f := JobFilter{Skip: -3}.WithDefaults()
	if f.Skip != 0 || f.Limit != DefaultJobLimit {
		t.Errorf("WithDefaults = %+v", f)
	}
}

func TestSearchJobKey(t *testing.T) {
	if k := (SearchJob{Source: "adzuna", ExternalID: "9"}).Key(); k != "adzuna:9" {
		t.Errorf("Key = %q", k)
	}
	if k := (SearchJob{Source: "jsearch", JobID: "x1"}).Key(); k != "jsearch:x1" {
		t.Errorf("Key = %q", k)
	}
	if k := (SearchJob{Source: "jsearch"}).Key(); k != "" {
		t.Errorf("Key = %q, want empty", k)
	}
}
