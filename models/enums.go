package models

import "fmt"

// Status is the sales stage of an inquiry.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

// Platform is the delivery platform a restaurant wants photos for.
type Platform string

const (
	PlatformZomato Platform = "Zomato"
	PlatformSwiggy Platform = "Swiggy"
	PlatformBoth   Platform = "Both"
	PlatformOther  Platform = "Other"
)

var (
	Statuses  = []Status{StatusNew, StatusContacted, StatusQuoted, StatusWon, StatusLost}
	Platforms = []Platform{PlatformZomato, PlatformSwiggy, PlatformBoth, PlatformOther}
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoted, StatusWon, StatusLost:
		return true
	default:
		return false
	}
}

// Closed reports whether the lead has reached a final outcome.
func (s Status) Closed() bool {
	switch s {
	case StatusWon, StatusLost:
		return true
	case StatusNew, StatusContacted, StatusQuoted:
		return false
	default:
		return false
	}
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", v)
	}
	return s, nil
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformZomato, PlatformSwiggy, PlatformBoth, PlatformOther:
		return true
	default:
		return false
	}
}

func ParsePlatform(v string) (Platform, error) {
	p := Platform(v)
	if !p.Valid() {
		return "", fmt.Errorf("invalid platform %q", v)
	}
	return p, nil
}
