package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

type Phone struct {
	Number     string `json:"number"`
	RegionCode string `json:"regionCode,omitempty"`
}

// E164 formats the number for SMS providers. Numbers already carrying a
// leading "+" keep their country code; bare US/CA numbers get "+1".
func (p Phone) E164() string {
	var digits strings.Builder
	for _, r := range p.Number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if strings.HasPrefix(strings.TrimSpace(p.Number), "+") {
		return "+" + d
	}
	switch strings.ToUpper(p.RegionCode) {
	case "", "US", "CA":
		if len(d) == 10 {
			return "+1" + d
		}
	}
	return "+" + d
}

type ConsentRecord struct {
	SubpopulationGUID string     `json:"subpopulationGuid"`
	SignedOn          time.Time  `json:"signedOn"`
	WithdrewOn        *time.Time `json:"withdrewOn,omitempty"`
}

func (c ConsentRecord) IsWithdrawn() bool {
	return c.WithdrewOn != nil
}

// Participant is the study platform's view of an enrolled user.
type Participant struct {
	ID               string                     `json:"id"`
	Phone            *Phone                     `json:"phone,omitempty"`
	PhoneVerified    *bool                      `json:"phoneVerified,omitempty"`
	TimeZone         string                     `json:"timeZone,omitempty"`
	DataGroups       []string                   `json:"dataGroups"`
	ConsentHistories map[string][]ConsentRecord `json:"consentHistories"`
	CreatedOn        time.Time                  `json:"createdOn"`
}

// Location parses the participant's time zone. Both UTC offsets ("-07:00")
// and IANA names ("America/Los_Angeles") are accepted.
func (p *Participant) Location() (*time.Location, error) {
	return ParseTimeZone(p.TimeZone)
}

func ParseTimeZone(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, ErrInvalidTimeZone
	}

	if m := offsetPattern.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(tz, offset), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeZone, tz)
	}
	return loc, nil
}

type AccountSummary struct {
	ID string `json:"id"`
}

type ActivityEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
}

type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusAvailable ScheduleStatus = "available"
	ScheduleStatusStarted   ScheduleStatus = "started"
	ScheduleStatusExpired   ScheduleStatus = "expired"
	ScheduleStatusFinished  ScheduleStatus = "finished"
)

func (s ScheduleStatus) IsFinished() bool {
	return s == ScheduleStatusFinished
}

// ScheduledActivity is one scheduled instance of the burst task.
type ScheduledActivity struct {
	GUID        string         `json:"guid"`
	ScheduledOn time.Time      `json:"scheduledOn"`
	Status      ScheduleStatus `json:"status"`
}

type ReportData struct {
	Date string         `json:"date"`
	Data map[string]any `json:"data"`
}

// LocalDate truncates t to its calendar date in loc. The result is midnight
// UTC so dates from different zones compare by calendar day.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the instant local midnight begins on date in loc.
func StartOfDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
