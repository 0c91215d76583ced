package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestParseScheduleTime(t *testing.T) {
	tests := []struct {
		input   string
		want    ScheduleTime
		wantErr bool
	}{
		{input: "08:30", want: ScheduleTime{Hour: 8, Minute: 30}},
		{input: "00:00", want: ScheduleTime{Hour: 0, Minute: 0}},
		{input: "23:59", want: ScheduleTime{Hour: 23, Minute: 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheduleTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScheduleTime(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheduleTime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScheduleTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScheduleTimeString(t *testing.T) {
	st := ScheduleTime{Hour: 8, Minute: 5}
	if got := st.String(); got != "08:05" {
		t.Errorf("String() = %q, want %q", got, "08:05")
	}
}

func TestNewValidation(t *testing.T) {
	provider := func(ctx context.Context) ([]Job, error) { return nil, nil }

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "no schedule times",
			cfg:  Config{JobProvider: provider},
		},
		{
			name: "invalid schedule time",
			cfg:  Config{ScheduleTimes: []string{"25:00"}, JobProvider: provider},
		},
		{
			name: "missing job provider",
			cfg:  Config{ScheduleTimes: []string{"08:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestShouldRun(t *testing.T) {
	s, err := New(Config{
		ScheduleTimes: []string{"08:30"},
		JobProvider:   func(ctx context.Context) ([]Job, error) { return nil, nil },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	at := time.Date(2026, 8, 15, 8, 30, 10, 0, time.UTC)
	if !s.shouldRun(at) {
		t.Error("expected run at a matching schedule time")
	}
	if s.shouldRun(at.Add(20 * time.Second)) {
		t.Error("must not fire twice within the same minute")
	}
	if s.shouldRun(at.Add(5 * time.Minute)) {
		t.Error("must not fire outside schedule times")
	}
	if !s.shouldRun(at.Add(24 * time.Hour)) {
		t.Error("expected run at the same time the next day")
	}
}
