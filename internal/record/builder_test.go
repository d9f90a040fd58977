package record_test

import (
	"testing"
	"time"

	"github.com/parisxmas/featuredesk/internal/record"
)

var now = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func TestBuildMapsCodedValues(t *testing.T) {
	fields := map[string]string{
		"requestor_name":        "J. Lee",
		"dealer_name":           "Acme Motors",
		"priority_1":            "1",
		"severity_1":            "2",
		"feature_description_1": "faster checkout",
	}
	rec := record.Build(fields, [3]string{}, now)

	if rec.RequestorName != "J. Lee" || rec.DealerName != "Acme Motors" {
		t.Fatalf("header fields wrong: %+v", rec)
	}
	if rec.Slots[0].Priority != "Urgent" {
		t.Fatalf("priority 1 = %q, want Urgent", rec.Slots[0].Priority)
	}
	if rec.Slots[0].Severity != "Important but Workable" {
		t.Fatalf("severity 2 = %q, want Important but Workable", rec.Slots[0].Severity)
	}
	if rec.Slots[0].Attachment != "" {
		t.Fatalf("attachment should be empty, got %q", rec.Slots[0].Attachment)
	}
}

func TestBuildPassesUnknownCodesThrough(t *testing.T) {
	fields := map[string]string{
		"priority_2": "9",
		"severity_2": "urgent-ish",
	}
	rec := record.Build(fields, [3]string{}, now)

	if rec.Slots[1].Priority != "9" {
		t.Fatalf("unknown priority code mangled: %q", rec.Slots[1].Priority)
	}
	if rec.Slots[1].Severity != "urgent-ish" {
		t.Fatalf("unknown severity code mangled: %q", rec.Slots[1].Severity)
	}
}

func TestBuildDefaultsMissingFields(t *testing.T) {
	rec := record.Build(nil, [3]string{"", "a.png", ""}, now)

	if rec.RequestorName != "" || rec.Email != "" || rec.Phone != "" {
		t.Fatalf("missing fields not empty: %+v", rec)
	}
	for i, slot := range rec.Slots {
		if slot.Priority != "" || slot.Description != "" || slot.Severity != "" {
			t.Fatalf("slot %d not empty: %+v", i+1, slot)
		}
	}
	if rec.Slots[1].Attachment != "a.png" {
		t.Fatalf("attachment lost: %+v", rec.Slots)
	}
	if rec.Timestamp != now.Format(time.RFC3339) {
		t.Fatalf("timestamp = %q", rec.Timestamp)
	}
}
