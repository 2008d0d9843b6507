package models

// Course is one row of the catalog for a given branch and semester.
type Course struct {
	Code    string  `json:"code" yaml:"code"`
	Name    string  `json:"name" yaml:"name"`
	Credits float64 `json:"credits" yaml:"credits"`
}

// PriorHistory holds the raw text the user typed for the optional CPI inputs.
// Both fields are parsed leniently every time a report is built.
type PriorHistory struct {
	PreviousSPI     string `json:"previous_spi"`
	PreviousCredits string `json:"previous_credits"`
}
