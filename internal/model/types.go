// Package model defines the core data structures for followgraph.
package model

// ProblemType identifies which of the two challenge problems a dataset poses.
type ProblemType string

const (
	ProblemMutual ProblemType = "mutual"
	ProblemLevel  ProblemType = "level"
)

// Valid reports whether p is a known problem type.
func (p ProblemType) Valid() bool {
	return p == ProblemMutual || p == ProblemLevel
}

// Title returns the heading shown for the problem.
func (p ProblemType) Title() string {
	switch p {
	case ProblemMutual:
		return "Question 1: Mutual Followers"
	case ProblemLevel:
		return "Question 2: Nth-Level Followers"
	default:
		return string(p)
	}
}

// User is a node in the follow graph. Follows may reference ids that are not
// present in the dataset.
type User struct {
	ID      int    `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Follows []int  `yaml:"follows" json:"follows"`
}

// DatasetFile is the on-disk form of a challenge dataset.
type DatasetFile struct {
	Problem ProblemType `yaml:"problem"`
	N       int         `yaml:"n,omitempty"`
	FindID  int         `yaml:"find_id,omitempty"`
	Users   []User      `yaml:"users"`
}

// Request carries the identity submitted to the request stage.
type Request struct {
	Name  string `json:"name" validate:"required"`
	RegNo string `json:"regNo" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Response is the simulated generateWebhook response. Data holds the
// problem-specific JSON shape of the dataset.
type Response struct {
	Webhook     string      `json:"webhook"`
	AccessToken string      `json:"accessToken"`
	ProblemType ProblemType `json:"problemType"`
	Data        any         `json:"data"`
}

// WebhookPayload is the body that would be posted to the webhook.
type WebhookPayload struct {
	RegNo   string `json:"regNo"`
	Outcome any    `json:"outcome"`
}

// Simulated endpoint values. Nothing is ever sent to them.
const (
	WebhookURL  = "https://bfhldevapigw.healthrx.co.in/hiring/testWebhook"
	AccessToken = "asjdh89d7897asd89asdaskjdlasd8sa"
)
