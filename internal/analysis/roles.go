package analysis

import (
	"strings"

	"campaignlens/internal/model"
)

// roleRule maps keyword evidence to a semantic role. Rules are evaluated
// top-to-bottom against the question body first, then against option texts;
// the first hit wins. Term lists are plain data so a campaign team can swap
// them without touching control flow.
type roleRule struct {
	role  model.QuestionRole
	terms []string
}

var bodyRoleRules = []roleRule{
	{model.RoleTimeframe, []string{
		"when do you", "timeline", "timeframe", "how soon", "planned start", "start date", "도입 시기",
	}},
	{model.RoleFollowupIntent, []string{
		"follow up", "follow-up", "contact you", "next step", "hear more", "reach out", "후속",
	}},
	{model.RoleProjectType, []string{
		"project type", "kind of project", "type of project", "which area", "initiative", "프로젝트 유형",
	}},
}

var optionRoleRules = []roleRule{
	{model.RoleTimeframe, []string{
		"within 1 week", "within 1 month", "within 3 months", "within 6 months", "no plan",
	}},
	{model.RoleFollowupIntent, []string{
		"site visit", "online meeting", "phone call", "not interested", "send materials",
	}},
	{model.RoleProjectType, []string{
		"infrastructure", "security", "cloud migration", "data platform", "not applicable",
	}},
}

// inferRoles assigns a role to every question: an explicit
// analysis_role_override wins verbatim, otherwise keyword heuristics decide,
// defaulting to "other". Uniqueness per role is not enforced; consumers take
// the first match in question order and no-op when a role is absent.
func inferRoles(questions []*model.Question, overrides map[string]string) {
	for _, q := range questions {
		if ov := strings.TrimSpace(overrides[q.ID]); ov != "" {
			q.Role = model.QuestionRole(ov)
			q.RoleSource = model.RoleSourceOverride
			continue
		}
		q.Role = classifyRole(q)
		q.RoleSource = model.RoleSourceInferred
	}
}

func classifyRole(q *model.Question) model.QuestionRole {
	body := strings.ToLower(q.Body)
	for _, rule := range bodyRoleRules {
		for _, term := range rule.terms {
			if strings.Contains(body, term) {
				return rule.role
			}
		}
	}

	var optionTexts []string
	for _, opt := range q.Options {
		optionTexts = append(optionTexts, strings.ToLower(opt.Text))
	}
	for _, rule := range optionRoleRules {
		for _, term := range rule.terms {
			for _, text := range optionTexts {
				if strings.Contains(text, term) {
					return rule.role
				}
			}
		}
	}

	return model.RoleOther
}

// questionByRole returns the first question (in order) carrying the role, or
// nil when the role is absent from the campaign.
func questionByRole(questions []*model.Question, role model.QuestionRole) *model.Question {
	for _, q := range questions {
		if q.Role == role {
			return q
		}
	}
	return nil
}
