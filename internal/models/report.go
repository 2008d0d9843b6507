package models

type (
	// Report is the derived view of one input snapshot.
	Report struct {
		Branch          string         `json:"branch"`
		Semester        string         `json:"semester"`
		Courses         []GradedCourse `json:"courses"`
		TotalCredits    float64        `json:"total_credits"`
		SPI             float64        `json:"spi"`
		PreviousSPI     float64        `json:"previous_spi"`
		PreviousCredits float64        `json:"previous_credits"`
		CPI             float64        `json:"cpi"`
		CombinedCredits float64        `json:"combined_credits"`
		Empty           bool           `json:"empty"`
	}

	GradedCourse struct {
		Course
		Grade      string `json:"grade,omitempty"`
		GradePoint int    `json:"grade_point"`
	}
)
