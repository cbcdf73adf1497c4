package service

import "time"

// SleepPacer pauses a fixed interval between consecutive platform calls.
// The messaging platform bans accounts that burst writes, so the invite
// and notification loops pace every call through it.
type SleepPacer struct {
	Interval time.Duration
}

func (p SleepPacer) Pause() {
	time.Sleep(p.Interval)
}
