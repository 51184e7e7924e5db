package entities

type TeamPlan string

const (
	FreePlan  TeamPlan = "free"
	BasicPlan TeamPlan = "basic"
	ProPlan   TeamPlan = "pro"
)

// TeamPlans lists the plans a team can be created with
var TeamPlans = []TeamPlan{FreePlan, BasicPlan, ProPlan}

// Team is the struct to store teams
type Team struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Plan        TeamPlan `json:"plan"`
}

// SearchQuery is the input of a tender search
type SearchQuery struct {
	Keywords string
	Province string
	Budget   string
}
