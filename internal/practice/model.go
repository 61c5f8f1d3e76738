package practice

const (
	StatusQueued = "queued"
	StatusDone   = "done"
)

type Problem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

type SubmissionResult struct {
	Verdict string `json:"verdict"`
	Stdout  string `json:"stdout"`
}

type Submission struct {
	ID        string            `json:"id"`
	ProblemID string            `json:"problemId"`
	Code      string            `json:"code"`
	Language  string            `json:"language"`
	UserID    string            `json:"userId"`
	Status    string            `json:"status"`
	Result    *SubmissionResult `json:"result"`
}
