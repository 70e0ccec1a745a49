package feedback

import (
	"math"
	"time"
)

var FilterFields = []string{"type"}

type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Feedback struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type,omitempty"`
	Content   string    `json:"content"`
	Rating    *int      `json:"rating,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	User      *Author   `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f Feedback) Rated() bool { return f.Rating != nil }

func field(f Feedback, name string) string {
	if name == "type" {
		return f.Type
	}
	return ""
}

// Summary is the rating panel of the feedback page.
type Summary struct {
	Average float64
	Rated   int
	Total   int
}

// AverageRating averages the rated entries only, rounded to one decimal.
// Unrated entries count towards Total but not towards the average.
func AverageRating(items []Feedback) Summary {
	s := Summary{Total: len(items)}
	sum := 0
	for _, f := range items {
		if f.Rating == nil {
			continue
		}
		s.Rated++
		sum += *f.Rating
	}
	if s.Rated > 0 {
		s.Average = math.Round(float64(sum)/float64(s.Rated)*10) / 10
	}
	return s
}
