// Package catalog holds the static job-role taxonomy: role identifiers,
// display labels, and per-role skill descriptions grouped into categories.
// It parametrizes prompt construction and backs the role-selection endpoint.
// The data is fixed at compile time; there is no lifecycle.
package catalog

// Role is one selectable job role.
type Role struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Category groups related roles under a display label.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Roles []Role `json:"roles"`
}

// FallbackDescription is used when a role has no skill description on file.
const FallbackDescription = "General professional skills"

// Describe returns the skill description used to parametrize the analysis
// prompt for roleID. Unknown roles fall back to a generic description rather
// than failing; the analysis remains meaningful for any role string.
func Describe(roleID string) string {
	if d, ok := skillDescriptions[roleID]; ok {
		return d
	}
	return FallbackDescription
}

// Categories returns the full role taxonomy in display order.
func Categories() []Category { return categories }

// skillDescriptions maps role identifiers to the one-line skill summary the
// prompt interpolates. Not every catalog role has an entry; Describe falls
// back for the rest.
var skillDescriptions = map[string]string{
	// Corporate roles
	"Manager":              "Leadership, decision-making, team coordination, strategic planning",
	"Software Developer":   "Analytical thinking, problem-solving, attention to detail, creativity in technical solutions",
	"Sales Executive":      "Communication, persuasion, relationship building, resilience",
	"HR Professional":      "Empathy, conflict resolution, organizational skills, people management",
	"Finance Analyst":      "Numerical aptitude, attention to detail, analytical thinking, risk assessment",
	"Marketing Specialist": "Creativity, communication, trend awareness, strategic thinking",
	"Operations Manager":   "Process optimization, multitasking, leadership, efficiency focus",
	// Industry-specific roles
	"Doctor":       "Precision, empathy, analytical thinking, patience, dedication",
	"Lawyer":       "Logic, argumentation, attention to detail, persuasion, ethics",
	"Engineer":     "Problem-solving, technical aptitude, precision, innovation",
	"Teacher":      "Patience, communication, empathy, knowledge sharing, adaptability",
	"Artist":       "Creativity, emotional expression, intuition, originality",
	"Entrepreneur": "Risk-taking, innovation, leadership, resilience, vision",
	"Researcher":   "Curiosity, attention to detail, patience, analytical thinking",
	"Consultant":   "Problem-solving, communication, adaptability, strategic thinking",
}

var categories = []Category{
	{ID: "executive", Label: "Executive Leadership", Roles: []Role{
		{ID: "CEO", Label: "CEO / Managing Director", Icon: "👑"},
		{ID: "CTO", Label: "CTO / Chief Technology Officer", Icon: "💡"},
		{ID: "CFO", Label: "CFO / Chief Financial Officer", Icon: "💰"},
		{ID: "COO", Label: "COO / Chief Operating Officer", Icon: "⚙️"},
		{ID: "CMO", Label: "CMO / Chief Marketing Officer", Icon: "📢"},
		{ID: "CHRO", Label: "CHRO / Chief HR Officer", Icon: "👥"},
		{ID: "CIO", Label: "CIO / Chief Information Officer", Icon: "🖥️"},
		{ID: "VP", Label: "Vice President", Icon: "🏛️"},
		{ID: "Director", Label: "Director", Icon: "📋"},
	}},
	{ID: "management", Label: "Management", Roles: []Role{
		{ID: "General Manager", Label: "General Manager", Icon: "🎯"},
		{ID: "Project Manager", Label: "Project Manager", Icon: "📊"},
		{ID: "Product Manager", Label: "Product Manager", Icon: "🚀"},
		{ID: "Operations Manager", Label: "Operations Manager", Icon: "⚙️"},
		{ID: "HR Manager", Label: "HR Manager", Icon: "🤝"},
		{ID: "Finance Manager", Label: "Finance Manager", Icon: "💳"},
		{ID: "Marketing Manager", Label: "Marketing Manager", Icon: "📣"},
		{ID: "Sales Manager", Label: "Sales Manager", Icon: "📈"},
		{ID: "IT Manager", Label: "IT Manager", Icon: "🔧"},
		{ID: "Quality Manager", Label: "Quality Manager", Icon: "✅"},
		{ID: "Supply Chain Manager", Label: "Supply Chain Manager", Icon: "🚚"},
	}},
	{ID: "technology", Label: "Technology & IT", Roles: []Role{
		{ID: "Software Engineer", Label: "Software Engineer", Icon: "💻"},
		{ID: "Data Scientist", Label: "Data Scientist", Icon: "📊"},
		{ID: "DevOps Engineer", Label: "DevOps Engineer", Icon: "🔄"},
		{ID: "Cloud Architect", Label: "Cloud Architect", Icon: "☁️"},
		{ID: "Cybersecurity Analyst", Label: "Cybersecurity Analyst", Icon: "🔒"},
		{ID: "UI/UX Designer", Label: "UI/UX Designer", Icon: "🎨"},
		{ID: "Database Administrator", Label: "Database Administrator", Icon: "🗄️"},
		{ID: "QA Engineer", Label: "QA Engineer", Icon: "🧪"},
		{ID: "Technical Lead", Label: "Technical Lead", Icon: "👨‍💻"},
		{ID: "System Administrator", Label: "System Administrator", Icon: "🖧"},
	}},
	{ID: "finance", Label: "Finance & Accounting", Roles: []Role{
		{ID: "Accountant", Label: "Accountant", Icon: "📒"},
		{ID: "Financial Analyst", Label: "Financial Analyst", Icon: "📈"},
		{ID: "Investment Banker", Label: "Investment Banker", Icon: "🏦"},
		{ID: "Auditor", Label: "Auditor", Icon: "🔍"},
		{ID: "Tax Specialist", Label: "Tax Specialist", Icon: "📝"},
		{ID: "Treasury Analyst", Label: "Treasury Analyst", Icon: "💵"},
		{ID: "Risk Analyst", Label: "Risk Analyst", Icon: "⚠️"},
		{ID: "Credit Analyst", Label: "Credit Analyst", Icon: "💳"},
	}},
	{ID: "sales", Label: "Sales", Roles: []Role{
		{ID: "Sales Executive", Label: "Sales Executive", Icon: "🎯"},
		{ID: "Business Development", Label: "Business Development", Icon: "🤝"},
		{ID: "Account Manager", Label: "Account Manager", Icon: "👤"},
		{ID: "Sales Representative", Label: "Sales Representative", Icon: "📞"},
		{ID: "Key Account Manager", Label: "Key Account Manager", Icon: "⭐"},
		{ID: "Territory Manager", Label: "Territory Manager", Icon: "🗺️"},
	}},
	{ID: "marketing", Label: "Marketing & Communications", Roles: []Role{
		{ID: "Digital Marketer", Label: "Digital Marketer", Icon: "📱"},
		{ID: "Content Strategist", Label: "Content Strategist", Icon: "✍️"},
		{ID: "SEO Specialist", Label: "SEO Specialist", Icon: "🔎"},
		{ID: "Brand Manager", Label: "Brand Manager", Icon: "™️"},
		{ID: "Social Media Manager", Label: "Social Media Manager", Icon: "📲"},
		{ID: "Marketing Analyst", Label: "Marketing Analyst", Icon: "📊"},
		{ID: "Public Relations", Label: "Public Relations", Icon: "📰"},
		{ID: "Event Manager", Label: "Event Manager", Icon: "🎪"},
	}},
	{ID: "humanResources", Label: "Human Resources", Roles: []Role{
		{ID: "HR Generalist", Label: "HR Generalist", Icon: "👥"},
		{ID: "Recruiter", Label: "Recruiter / Talent Acquisition", Icon: "🔍"},
		{ID: "Training Manager", Label: "Training & Development", Icon: "📚"},
		{ID: "Compensation Analyst", Label: "Compensation & Benefits", Icon: "💰"},
		{ID: "Employee Relations", Label: "Employee Relations", Icon: "🤝"},
		{ID: "HR Business Partner", Label: "HR Business Partner", Icon: "🎯"},
	}},
	{ID: "operations", Label: "Operations & Logistics", Roles: []Role{
		{ID: "Operations Analyst", Label: "Operations Analyst", Icon: "📋"},
		{ID: "Logistics Coordinator", Label: "Logistics Coordinator", Icon: "🚛"},
		{ID: "Procurement Specialist", Label: "Procurement Specialist", Icon: "🛒"},
		{ID: "Facilities Manager", Label: "Facilities Manager", Icon: "🏢"},
		{ID: "Process Improvement", Label: "Process Improvement", Icon: "📈"},
		{ID: "Warehouse Manager", Label: "Warehouse Manager", Icon: "📦"},
	}},
	{ID: "legal", Label: "Legal & Compliance", Roles: []Role{
		{ID: "Corporate Lawyer", Label: "Corporate Lawyer", Icon: "⚖️"},
		{ID: "Legal Counsel", Label: "Legal Counsel", Icon: "📜"},
		{ID: "Compliance Officer", Label: "Compliance Officer", Icon: "✅"},
		{ID: "Contract Manager", Label: "Contract Manager", Icon: "📄"},
		{ID: "Paralegal", Label: "Paralegal", Icon: "📋"},
	}},
	{ID: "healthcare", Label: "Healthcare", Roles: []Role{
		{ID: "Doctor", Label: "Doctor / Physician", Icon: "🩺"},
		{ID: "Nurse", Label: "Nurse", Icon: "💉"},
		{ID: "Pharmacist", Label: "Pharmacist", Icon: "💊"},
		{ID: "Medical Administrator", Label: "Medical Administrator", Icon: "🏥"},
		{ID: "Healthcare Consultant", Label: "Healthcare Consultant", Icon: "📊"},
	}},
	{ID: "creative", Label: "Creative & Design", Roles: []Role{
		{ID: "Graphic Designer", Label: "Graphic Designer", Icon: "🎨"},
		{ID: "Video Producer", Label: "Video Producer", Icon: "🎬"},
		{ID: "Copywriter", Label: "Copywriter", Icon: "✍️"},
		{ID: "Creative Director", Label: "Creative Director", Icon: "🎯"},
		{ID: "Photographer", Label: "Photographer", Icon: "📷"},
		{ID: "Art Director", Label: "Art Director", Icon: "🖼️"},
	}},
	{ID: "education", Label: "Education & Training", Roles: []Role{
		{ID: "Teacher", Label: "Teacher / Educator", Icon: "📚"},
		{ID: "Professor", Label: "Professor", Icon: "🎓"},
		{ID: "Corporate Trainer", Label: "Corporate Trainer", Icon: "👨‍🏫"},
		{ID: "Academic Administrator", Label: "Academic Administrator", Icon: "🏫"},
		{ID: "Instructional Designer", Label: "Instructional Designer", Icon: "📝"},
	}},
	{ID: "consulting", Label: "Consulting", Roles: []Role{
		{ID: "Management Consultant", Label: "Management Consultant", Icon: "💼"},
		{ID: "Strategy Consultant", Label: "Strategy Consultant", Icon: "🎯"},
		{ID: "IT Consultant", Label: "IT Consultant", Icon: "💻"},
		{ID: "Financial Consultant", Label: "Financial Consultant", Icon: "💰"},
		{ID: "HR Consultant", Label: "HR Consultant", Icon: "👥"},
	}},
	{ID: "entrepreneurship", Label: "Entrepreneurship", Roles: []Role{
		{ID: "Entrepreneur", Label: "Entrepreneur / Founder", Icon: "🚀"},
		{ID: "Startup Founder", Label: "Startup Founder", Icon: "💡"},
		{ID: "Business Owner", Label: "Business Owner", Icon: "🏪"},
		{ID: "Freelancer", Label: "Freelancer / Independent", Icon: "🎯"},
		{ID: "Investor", Label: "Investor / VC", Icon: "💎"},
	}},
	{ID: "research", Label: "Research & Analytics", Roles: []Role{
		{ID: "Research Scientist", Label: "Research Scientist", Icon: "🔬"},
		{ID: "Market Researcher", Label: "Market Researcher", Icon: "📊"},
		{ID: "Data Analyst", Label: "Data Analyst", Icon: "📈"},
		{ID: "Research Associate", Label: "Research Associate", Icon: "🔍"},
		{ID: "Policy Analyst", Label: "Policy Analyst", Icon: "📋"},
	}},
	{ID: "customerService", Label: "Customer Service", Roles: []Role{
		{ID: "Customer Success Manager", Label: "Customer Success Manager", Icon: "🌟"},
		{ID: "Support Specialist", Label: "Support Specialist", Icon: "🎧"},
		{ID: "Client Relations", Label: "Client Relations", Icon: "🤝"},
		{ID: "Technical Support", Label: "Technical Support", Icon: "🔧"},
		{ID: "Call Center Manager", Label: "Call Center Manager", Icon: "📞"},
	}},
}
