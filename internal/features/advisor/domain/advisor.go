package domain

// Role is an expert persona used to frame the role-analysis prompt.
type Role string

const (
	RoleProductManager   Role = "Product Manager"
	RoleInvestor         Role = "Investor"
	RoleGrowthHacker     Role = "Growth Hacker"
	RoleTechnicalAdvisor Role = "Technical Advisor"
	RoleMarketingExpert  Role = "Marketing Expert"
)

// RoleTemplate pairs a role with its instruction prefix.
type RoleTemplate struct {
	Role        Role   `json:"role"`
	Instruction string `json:"instruction"`
}

// roleTemplates is in presentation order; the first entry is the default role.
var roleTemplates = []RoleTemplate{
	{RoleProductManager, "As a Product Manager, analyze the following startup idea and provide feedback on product-market fit, user needs, and MVP suggestions."},
	{RoleInvestor, "As an Investor, evaluate the following startup idea for market opportunity, scalability, and risks."},
	{RoleGrowthHacker, "As a Growth Hacker, suggest creative growth strategies for the following startup idea."},
	{RoleTechnicalAdvisor, "As a Technical Advisor, evaluate the technical feasibility and architecture recommendations for this startup idea."},
	{RoleMarketingExpert, "As a Marketing Expert, suggest marketing strategies and customer acquisition approaches for this startup idea."},
}

var roleIndex = func() map[Role]string {
	m := make(map[Role]string, len(roleTemplates))
	for _, t := range roleTemplates {
		m[t.Role] = t.Instruction
	}
	return m
}()

// Roles returns the role names in presentation order.
func Roles() []Role {
	roles := make([]Role, len(roleTemplates))
	for i, t := range roleTemplates {
		roles[i] = t.Role
	}
	return roles
}

// DefaultRole is the role preselected in the UI.
func DefaultRole() Role {
	return roleTemplates[0].Role
}

// Instruction returns the instruction prefix for role.
func Instruction(role Role) (string, bool) {
	s, ok := roleIndex[role]
	return s, ok
}

// IdeaFields are the inputs of the structured idea builder. Empty fields are
// rendered as NotProvided.
type IdeaFields struct {
	Problem      string `json:"problem" form:"problem"`
	Solution     string `json:"solution" form:"solution"`
	TargetMarket string `json:"target_market" form:"target_market"`
	Revenue      string `json:"revenue" form:"revenue"`
	Competitors  string `json:"competitors" form:"competitors"`
	Execution    string `json:"execution" form:"execution"`
}

// NotProvided replaces any missing builder field.
const NotProvided = "Not provided"

// Panel identifies one of the four forms on the page.
type Panel string

const (
	PanelRole       Panel = "role"
	PanelBuilder    Panel = "builder"
	PanelPitch      Panel = "pitch"
	PanelMotivation Panel = "motivation"
)

// RoleAnalysisRequest is the input of the role analysis panel.
type RoleAnalysisRequest struct {
	Role string `json:"role" form:"role"`
	Idea string `json:"idea" form:"idea"`
}

// PitchRequest is the input of the pitch judge panel.
type PitchRequest struct {
	Pitch string `json:"pitch" form:"pitch"`
}

// MotivationRequest is the input of the motivation panel.
type MotivationRequest struct {
	Challenge string `json:"challenge" form:"challenge"`
}

// PanelResponse carries the text shown in a panel's output field, whether it
// is generated content, a placeholder or an error description.
type PanelResponse struct {
	Output string `json:"output"`
}

// RolesResponse lists the selectable roles.
type RolesResponse struct {
	Roles   []Role `json:"roles"`
	Default Role   `json:"default"`
}
