package models

import "time"

// Service is a provisioned hosting product instance attached to an invoice.
type Service struct {
	ID        string     `bson:"id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	StartDate *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	// Control-panel credentials, each optional.
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Username string `bson:"username,omitempty" json:"username,omitempty"`
	Password string `bson:"password,omitempty" json:"-"`
	ServerIP string `bson:"serverIp,omitempty" json:"serverIp,omitempty"`
}

// DurationYears returns the service period in whole years, floor of the
// day-difference over 365. Either date missing yields 0.
func (s *Service) DurationYears() int {
	if s.StartDate == nil || s.EndDate == nil {
		return 0
	}
	days := int(s.EndDate.Sub(*s.StartDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}
